package bitmap

// BitRef is a read-only handle to one bit of a Bitmap. Its value is a
// snapshot taken at creation, not a live view: later mutation of the map
// does not update an existing BitRef. BitRef is a plain value and may be
// copied freely.
type BitRef struct {
	value bool
	index int

	// map association; read-only, never dereferenced for mutation.
	m *Bitmap
}

// At returns a read-only reference to the bit at index.
// It panics if index is out of range or the map is mutably borrowed.
func (m *Bitmap) At(index int) BitRef {
	m.ensureUnborrowed()
	if outOfRange(len(m.bits), index) {
		panicOutOfRange("at", len(m.bits), index)
	}
	return BitRef{value: m.getBit(index), index: index, m: m}
}

// Value returns the snapshotted bit value.
func (r BitRef) Value() bool { return r.value }

// Bool converts the reference to its boolean value.
func (r BitRef) Bool() bool { return r.value }

// Index returns the bit index the reference was taken at.
func (r BitRef) Index() int { return r.index }

// BitRefMut grants exclusive, mutating access to one bit of a Bitmap.
// It caches the current value and records the index, so chained
// mutations and read-backs skip re-deriving byte and bit offsets.
//
// While a BitRefMut is outstanding, every other access to the map
// (reads, mutators, other references) panics. Release ends the exclusive
// borrow; using a released reference panics.
type BitRefMut struct {
	m        *Bitmap
	index    int
	value    bool
	released bool
}

// AtMut returns an exclusive, mutable reference to the bit at index.
// It panics if index is out of range or the map is already mutably
// borrowed. The caller must call Release (or the consuming Bool) to give
// the map back.
func (m *Bitmap) AtMut(index int) *BitRefMut {
	m.ensureUnborrowed()
	if outOfRange(len(m.bits), index) {
		panicOutOfRange("at", len(m.bits), index)
	}
	r := &BitRefMut{m: m, index: index, value: m.getBit(index)}
	m.mut = r
	return r
}

// Set sets the referenced bit to 1 and returns the receiver for
// chaining. It panics if the reference has been released.
func (r *BitRefMut) Set() *BitRefMut {
	r.ensureLive()
	by, bit := splitIndex(r.index)
	r.m.bits[by] |= 1 << bit
	r.value = true
	return r
}

// Reset sets the referenced bit to 0 and returns the receiver for
// chaining. It panics if the reference has been released.
func (r *BitRefMut) Reset() *BitRefMut {
	r.ensureLive()
	by, bit := splitIndex(r.index)
	r.m.bits[by] &^= 1 << bit
	r.value = false
	return r
}

// Flip toggles the referenced bit and returns the receiver for
// chaining. It panics if the reference has been released.
func (r *BitRefMut) Flip() *BitRefMut {
	r.ensureLive()
	by, bit := splitIndex(r.index)
	r.m.bits[by] ^= 1 << bit
	r.value = !r.value
	return r
}

// Value returns the cached bit value without ending the borrow.
// It panics if the reference has been released.
func (r *BitRefMut) Value() bool {
	r.ensureLive()
	return r.value
}

// Bool returns the cached bit value and releases the reference. It is a
// one-shot consuming conversion: any use after Bool panics.
func (r *BitRefMut) Bool() bool {
	r.ensureLive()
	v := r.value
	r.Release()
	return v
}

// Index returns the bit index the reference was taken at.
func (r *BitRefMut) Index() int { return r.index }

// Release ends the exclusive borrow, making the map accessible again.
// Releasing twice is a no-op.
func (r *BitRefMut) Release() {
	if r.released {
		return
	}
	r.released = true
	if r.m.mut == r {
		r.m.mut = nil
	}
}

func (r *BitRefMut) ensureLive() {
	if r.released {
		panic("bitmap: use of released BitRefMut")
	}
}
