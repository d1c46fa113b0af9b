package secp256k1

import "math/big"

// pMinusTwo is the Fermat inversion exponent p-2.
var pMinusTwo = new(big.Int).Sub(P, big.NewInt(2))

// ModPow computes base^exponent mod P by binary square-and-multiply,
// scanning the exponent from its least-significant bit. An exponent of
// zero yields 1. The base need not be reduced beforehand; the result
// is always in [0, P).
func ModPow(base, exponent *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, P)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, P)
		}
		b.Mul(b, b)
		b.Mod(b, P)
		e.Rsh(e, 1)
	}
	return result
}

// ModInverse returns the multiplicative inverse of value mod P using
// Fermat's little theorem: value^(p-2). Every nonzero field element has
// an inverse since P is prime. Zero has none; callers must not pass it
// (the result would be 0, not an error). The point-addition code above
// this layer intercepts every zero-denominator case before it can
// reach this function.
func ModInverse(value *big.Int) *big.Int {
	return ModPow(value, pMinusTwo)
}
