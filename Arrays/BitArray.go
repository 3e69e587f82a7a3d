package Arrays

import (
	"math/bits"
)

// BitArray is a fixed length bit vector. Its length is rounded up to
// a whole number of machine words.
type BitArray struct {
	bits []uint
}

func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

func (u BitArray) Flip(i int) {
	u.bits[i/bits.UintSize] ^= 1 << (i % bits.UintSize)
}

// Count of set bits.
func (u BitArray) Count() int {
	c := 0
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return c
}
