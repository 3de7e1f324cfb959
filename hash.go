package lshamp

import (
	"math/bits"

	"github.com/zeebo/xxh3"
)

// keyData reduces arbitrary bytes to a key in [0, universeSize) using xxh3.
func keyData(data []byte, universeSize uint64) uint64 {
	return xxh3.Hash(data) % universeSize
}

// keyString reduces a string to a key in [0, universeSize) without
// converting it to a byte slice.
func keyString(s string, universeSize uint64) uint64 {
	return xxh3.HashString(s) % universeSize
}

// mulAddMod returns (a*k + b) mod p using a 128-bit intermediate, so any
// 64-bit modulus is safe.
func mulAddMod(a, k, b, p uint64) uint64 {
	hi, lo := bits.Mul64(a, k)
	var carry uint64
	lo, carry = bits.Add64(lo, b, 0)
	hi += carry
	return bits.Rem64(hi, lo, p)
}
