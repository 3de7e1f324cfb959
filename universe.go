package lshamp

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Universe is a factory for a universal family of hash functions over the
// keys [0, Size()). It holds the smallest odd prime larger than the universe
// and draws fresh affine functions modulo that prime on each MakeHash call.
//
// A Universe is safe for concurrent use. Its random source is private and
// serialized by a mutex.
type Universe struct {
	size    uint64
	modulus uint64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniverse returns a Universe for n keys, seeded from crypto/rand.
func NewUniverse(n uint64) (*Universe, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("lshamp: seeding universe: %w", err)
	}
	return NewUniverseWithSource(n, rand.NewChaCha8(seed))
}

// NewUniverseWithSource returns a Universe for n keys that draws hash
// coefficients from src. Use it for reproducible hash functions.
func NewUniverseWithSource(n uint64, src rand.Source) (*Universe, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: universe size must be at least 1", ErrInvalidArgument)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}

	p, err := nextPrimeAbove(n)
	if err != nil {
		return nil, err
	}

	return &Universe{
		size:    n,
		modulus: p,
		rng:     rand.New(src),
	}, nil
}

// Size returns the number of keys in the universe.
func (u *Universe) Size() uint64 {
	return u.size
}

// Modulus returns the prime the hash functions are computed over.
func (u *Universe) Modulus() uint64 {
	return u.modulus
}

// MakeHash draws a random function from the family that maps keys into
// [0, tableSize). For any two distinct keys below Size(), the probability
// over the draw that they collide is at most 1/tableSize.
func (u *Universe) MakeHash(tableSize uint64) (HashFunc, error) {
	if tableSize == 0 {
		return HashFunc{}, fmt.Errorf("%w: table size must be at least 1", ErrInvalidArgument)
	}

	u.mu.Lock()
	a := u.rng.Uint64N(u.modulus-1) + 1
	b := u.rng.Uint64N(u.modulus)
	u.mu.Unlock()

	return HashFunc{
		a:         a,
		b:         b,
		modulus:   u.modulus,
		tableSize: tableSize,
		universe:  u.size,
	}, nil
}

// HashFunc is one member of a universal family:
//
//	h(k) = ((a*k + b) mod p) mod tableSize
//
// The zero value is not usable; obtain one from Universe.MakeHash.
type HashFunc struct {
	a, b      uint64
	modulus   uint64
	tableSize uint64
	universe  uint64
}

// Apply maps key k to a slot in [0, TableSize()).
func (h HashFunc) Apply(k uint64) uint64 {
	return mulAddMod(h.a, k, h.b, h.modulus) % h.tableSize
}

// ApplyBytes reduces data into the universe with xxh3 and then applies h.
func (h HashFunc) ApplyBytes(data []byte) uint64 {
	return h.Apply(keyData(data, h.universe))
}

// ApplyString is like ApplyBytes but avoids allocating for string keys.
func (h HashFunc) ApplyString(s string) uint64 {
	return h.Apply(keyString(s, h.universe))
}

// Coefficients returns the drawn slope a and offset b.
func (h HashFunc) Coefficients() (a, b uint64) {
	return h.a, h.b
}

// Modulus returns the prime h is computed over.
func (h HashFunc) Modulus() uint64 {
	return h.modulus
}

// TableSize returns the number of slots h maps into.
func (h HashFunc) TableSize() uint64 {
	return h.tableSize
}
