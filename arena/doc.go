// Package arena implements a demonstration cacheline allocator on top
// of the bitmap package.
//
// A Manager divides a caller-supplied buffer into fixed-size lines and
// tracks their occupancy with a Bitmap embedded at the start of the
// buffer itself, so the bookkeeping costs 1 bit per line. The leading
// lines holding the bitmap are reserved and never handed out.
//
//	buf := make([]byte, 4096)
//	mgr, _ := arena.New(buf) // 64-byte lines, 63 allocatable
//
//	line, _ := mgr.Alloc()
//	...
//	_ = mgr.Free(line)
//
// The Manager is not safe for concurrent use; callers that share one
// across goroutines must serialize access with a mutex.
package arena
