package lshamp

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math/bits"
	"strconv"
	"unicode/utf8"
)

const (
	// DefaultStringModulus is the Mersenne prime 2^61 - 1.
	DefaultStringModulus = uint64(1)<<61 - 1

	// StringHashBase is the polynomial base, a prime larger than any byte.
	StringHashBase = 521

	// saltBytes is the number of random bytes in a salt (hex encoded to 24 chars).
	saltBytes = 12
)

// StringHash is a salted polynomial rolling hash over the UTF-8 bytes of a
// string. Every instance draws its own salt, so outputs of different
// instances are independent while a single instance is deterministic.
type StringHash struct {
	salt    string
	modulus uint64
}

// NewStringHash returns a StringHash modulo DefaultStringModulus.
func NewStringHash() (*StringHash, error) {
	return NewStringHashWithModulus(DefaultStringModulus)
}

// NewStringHashWithModulus returns a StringHash modulo m with a fresh salt.
func NewStringHashWithModulus(m uint64) (*StringHash, error) {
	if m == 0 {
		return nil, fmt.Errorf("%w: string hash modulus must be at least 1", ErrInvalidArgument)
	}

	var raw [saltBytes]byte
	if _, err := crand.Read(raw[:]); err != nil {
		return nil, fmt.Errorf("lshamp: generating salt: %w", err)
	}

	return &StringHash{
		salt:    hex.EncodeToString(raw[:]),
		modulus: m,
	}, nil
}

// Sum64 returns the hash of x+salt as an integer in [0, Modulus()).
func (h *StringHash) Sum64(x string) (uint64, error) {
	if !utf8.ValidString(x) {
		return 0, fmt.Errorf("%w: %q", ErrEncoding, x)
	}

	var result uint64
	result = h.fold(result, x)
	result = h.fold(result, h.salt)
	return result, nil
}

// Apply returns the hash of x as lowercase hex with a 0x prefix.
func (h *StringHash) Apply(x string) (string, error) {
	sum, err := h.Sum64(x)
	if err != nil {
		return "", err
	}
	return "0x" + strconv.FormatUint(sum, 16), nil
}

// fold continues the rolling hash over the bytes of s.
func (h *StringHash) fold(result uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		hi, lo := bits.Mul64(StringHashBase, result)
		lo, carry := bits.Add64(lo, uint64(s[i]), 0)
		result = bits.Rem64(hi+carry, lo, h.modulus)
	}
	return result
}

// Salt returns the instance's hex-encoded salt.
func (h *StringHash) Salt() string {
	return h.salt
}

// Base returns the polynomial base.
func (h *StringHash) Base() uint64 {
	return StringHashBase
}

// Modulus returns the modulus the hash is reduced by.
func (h *StringHash) Modulus() uint64 {
	return h.modulus
}
