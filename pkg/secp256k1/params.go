// Package secp256k1 implements affine point arithmetic over the prime
// field of the secp256k1 curve (y² = x³ + 7 mod p), the curve used by
// Bitcoin and Ethereum signatures.
//
// All operations are pure functions over *big.Int values and are safe
// for concurrent use. The point at infinity is encoded as the pair
// (0, 0); for this curve x = 0 never satisfies the curve equation, so
// the encoding cannot collide with a real point. Every exported
// operation has a checked variant that validates its operands and an
// Unchecked variant that skips validation for callers that have
// already done it.
package secp256k1

import "math/big"

// Curve parameters, see https://www.secg.org/sec2-v2.pdf section 2.4.1.
// These are package-wide constants; callers must not mutate them.
var (
	// P is the order of the underlying prime field: 2^256 - 2^32 - 977.
	P, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)

	// N is the order of the base point G. Scalars are not reduced mod N
	// by this package; collaborators that need canonical scalars reduce
	// them before calling ScalarMult.
	N, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

	// A and B are the coefficients of the curve equation y² = x³ + Ax + B.
	A = big.NewInt(0)
	B = big.NewInt(7)

	// Gx, Gy are the affine coordinates of the base point G.
	Gx, _ = new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	Gy, _ = new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)
)
