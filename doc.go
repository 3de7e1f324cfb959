// Package lshamp provides the hashing and parameter-search primitives behind
// locality-sensitive hashing pipelines.
//
// # Universal Hashing
//
// A [Universe] describes the keys [0, n) and holds the smallest odd prime p
// greater than n. Each call to [Universe.MakeHash] draws a fresh [HashFunc]
//
//	h(k) = ((a*k + b) mod p) mod m
//
// with a uniform in [1, p-1] and b uniform in [0, p-1]. For any two distinct
// keys the probability over the draw that they collide is at most 1/m.
// Arithmetic uses a 128-bit intermediate, so any 64-bit universe is safe.
// Byte and string keys are first reduced into the universe with xxh3 via
// [HashFunc.ApplyBytes] and [HashFunc.ApplyString].
//
// # String Hashing
//
// [StringHash] is a polynomial rolling hash with base 521 modulo 2^61 - 1 (or
// a caller-chosen modulus). Every instance draws a random salt from
// crypto/rand and appends it to each input, so a single instance is
// deterministic while separate instances disagree.
//
// # Amplification
//
// Given a base family that collides with probability PNear on similar pairs
// and PFar on dissimilar pairs, r rows and b bands can be combined two ways:
//
//	OR-AND: 1 - (1 - p^r)^b
//	AND-OR: (1 - (1-p)^r)^b
//
// [FindParams] searches a bounded (r, b) grid for the cheapest pair that
// meets optional strict bounds on the amplified false positive and false
// negative rates:
//
//	cfg := lshamp.DefaultSearchConfig()
//	cfg.MaxFPR = lshamp.Below(0.05)
//	cfg.MaxFNR = lshamp.Below(0.05)
//	res, err := lshamp.FindParams(cfg, lshamp.OrAnd)
//
// Cost is r*b, with ties broken by fewer bands and then fewer rows. A nil
// result with a nil error means the grid holds no qualifying pair.
//
// # Thread Safety
//
// A [Universe] may be shared across goroutines; its random source is
// serialized internally. [HashFunc] and [StringHash] are immutable once
// created. [FindParams] is a pure function.
package lshamp
