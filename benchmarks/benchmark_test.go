package benchmarks

import (
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/jcalabro/lshamp"
	"github.com/zeebo/xxh3"
)

const (
	benchKeys      = 1 << 16
	benchUniverse  = 1 << 32
	benchTableSize = 1 << 12
)

// Pre-generate test data to avoid measuring string generation
var testKeys [][]byte
var testKeysStr []string

func init() {
	testKeys = make([][]byte, benchKeys)
	testKeysStr = make([]string, benchKeys)
	for i := range benchKeys {
		s := fmt.Sprintf("key-%d", i)
		testKeys[i] = []byte(s)
		testKeysStr[i] = s
	}
}

func newHash(b *testing.B) lshamp.HashFunc {
	b.Helper()
	u, err := lshamp.NewUniverse(benchUniverse)
	if err != nil {
		b.Fatal(err)
	}
	h, err := u.MakeHash(benchTableSize)
	if err != nil {
		b.Fatal(err)
	}
	return h
}

// ============================================================================
// Integer Keys
// ============================================================================

func BenchmarkIntKey_Universal(b *testing.B) {
	h := newHash(b)
	var sink uint64
	b.ResetTimer()
	for i := range b.N {
		sink += h.Apply(uint64(i))
	}
	_ = sink
}

func BenchmarkIntKey_Xxh3(b *testing.B) {
	var buf [8]byte
	var sink uint64
	b.ResetTimer()
	for i := range b.N {
		buf[0], buf[1], buf[2], buf[3] = byte(i), byte(i>>8), byte(i>>16), byte(i>>24)
		sink += xxh3.Hash(buf[:]) % benchTableSize
	}
	_ = sink
}

// ============================================================================
// String Keys
// ============================================================================

func BenchmarkStringKey_Universal(b *testing.B) {
	h := newHash(b)
	var sink uint64
	b.ResetTimer()
	for i := range b.N {
		sink += h.ApplyString(testKeysStr[i%benchKeys])
	}
	_ = sink
}

func BenchmarkStringKey_Polynomial(b *testing.B) {
	h, err := lshamp.NewStringHash()
	if err != nil {
		b.Fatal(err)
	}
	var sink uint64
	b.ResetTimer()
	for i := range b.N {
		v, _ := h.Sum64(testKeysStr[i%benchKeys])
		sink += v
	}
	_ = sink
}

func BenchmarkStringKey_Xxhash(b *testing.B) {
	var sink uint64
	b.ResetTimer()
	for i := range b.N {
		sink += xxhash.Sum64String(testKeysStr[i%benchKeys])
	}
	_ = sink
}

func BenchmarkBytesKey_Universal(b *testing.B) {
	h := newHash(b)
	var sink uint64
	b.ResetTimer()
	for i := range b.N {
		sink += h.ApplyBytes(testKeys[i%benchKeys])
	}
	_ = sink
}

func BenchmarkBytesKey_Xxhash(b *testing.B) {
	var sink uint64
	b.ResetTimer()
	for i := range b.N {
		sink += xxhash.Sum64(testKeys[i%benchKeys])
	}
	_ = sink
}

// ============================================================================
// Parameter Search
// ============================================================================

func BenchmarkFindParams_OrAnd(b *testing.B) {
	cfg := lshamp.DefaultSearchConfig()
	cfg.MaxFPR = lshamp.Below(0.05)
	cfg.MaxFNR = lshamp.Below(0.05)
	b.ResetTimer()
	for range b.N {
		if _, err := lshamp.FindParams(cfg, lshamp.OrAnd); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindParams_AndOr(b *testing.B) {
	cfg := lshamp.DefaultSearchConfig()
	cfg.MaxFPR = lshamp.Below(0.05)
	cfg.MaxFNR = lshamp.Below(0.05)
	b.ResetTimer()
	for range b.N {
		if _, err := lshamp.FindParams(cfg, lshamp.AndOr); err != nil {
			b.Fatal(err)
		}
	}
}
