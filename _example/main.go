package main

import (
	"fmt"
	"log"

	"github.com/hupe1980/bitmap"
	"github.com/hupe1980/bitmap/arena"
)

func main() {
	// Basic bit manipulation.
	m := bitmap.NewBits(16)

	m.Set(10)
	fmt.Println("after set(10): ", m)

	m.Flip(10).Set(7)
	fmt.Println("test(7):", m.Test(7), "any:", m.Any(), "none:", m.None())

	if idx, ok := m.FindFirstOne(); ok {
		fmt.Println("first one at", idx)
	}

	// Single-bit references.
	r := m.AtMut(10)
	r.Set().Flip()
	r.Release()
	fmt.Println("bit 10 after set+flip:", m.At(10).Value())

	// Bitwise interop with integers.
	bitmap.OrAssignUint(m, uint16(0b_11000000_00000000))
	s, err := m.RangeString(0, 16)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("bits [0,16):", s)

	// A bitmap as occupancy header: the cacheline manager.
	page := make([]byte, 4096)
	mgr, err := arena.New(page)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("arena: %d lines of %d bytes\n", mgr.Lines(), mgr.LineSize())

	var lines [][]byte
	for i := 0; i < 8; i++ {
		line, err := mgr.Alloc()
		if err != nil {
			log.Fatal(err)
		}
		idx, _ := mgr.Index(line)
		line[0] = byte(idx)
		lines = append(lines, line)
	}
	fmt.Println("allocated:", mgr.Allocated())

	if err := mgr.Free(lines[6]); err != nil {
		log.Fatal(err)
	}
	line, err := mgr.Alloc()
	if err != nil {
		log.Fatal(err)
	}
	idx, _ := mgr.Index(line)
	fmt.Println("reallocated line index:", idx)

	fmt.Println("occupancy:", mgr.Occupancy())
}
