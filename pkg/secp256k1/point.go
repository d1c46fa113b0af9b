package secp256k1

import "math/big"

var three = big.NewInt(3)

// IsInfinity reports whether (x, y) is the point at infinity, the
// group identity, encoded as the pair (0, 0).
func IsInfinity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}

// IsOnCurve reports whether (x, y) satisfies y² = x³ + 7 mod P. Both
// coordinates must be in [0, P); an out-of-range coordinate is rejected
// with an InvalidCoordinateError before the algebraic test runs, x
// checked first. The point at infinity (0, 0) reports false: infinity
// is a separately tracked variant, not a curve solution.
func IsOnCurve(x, y *big.Int) (bool, error) {
	if x.Sign() < 0 || x.Cmp(P) >= 0 {
		return false, &InvalidCoordinateError{Value: x}
	}
	if y.Sign() < 0 || y.Cmp(P) >= 0 {
		return false, &InvalidCoordinateError{Value: y}
	}

	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, P)

	// x³ + 7
	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, B)
	rhs.Mod(rhs, P)

	return y2.Cmp(rhs) == 0, nil
}

// checkPoint is the guard run by every checked entry point before any
// arithmetic: a point is valid iff it is infinity or on the curve.
// Range violations surface before membership violations.
func checkPoint(x, y *big.Int) error {
	if IsInfinity(x, y) {
		return nil
	}
	ok, err := IsOnCurve(x, y)
	if err != nil {
		return err
	}
	if !ok {
		return &InvalidPointError{X: x, Y: y}
	}
	return nil
}

// Negate returns the additive inverse of a validated point. Infinity
// negates to itself; any other point maps to (x, p-y).
func Negate(x, y *big.Int) (*big.Int, *big.Int, error) {
	if err := checkPoint(x, y); err != nil {
		return nil, nil, err
	}
	nx, ny := NegateUnchecked(x, y)
	return nx, ny, nil
}

// NegateUnchecked is Negate without the validity guard. The caller must
// pass infinity or an on-curve point with reduced coordinates; anything
// else wraps modulo P instead of failing.
func NegateUnchecked(x, y *big.Int) (*big.Int, *big.Int) {
	if IsInfinity(x, y) {
		return new(big.Int), new(big.Int)
	}
	ny := new(big.Int).Sub(P, y)
	ny.Mod(ny, P)
	return new(big.Int).Set(x), ny
}

// Add returns the group sum of two points after validating both
// operands. The first invalid operand determines the error.
func Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error) {
	if err := checkPoint(x1, y1); err != nil {
		return nil, nil, err
	}
	if err := checkPoint(x2, y2); err != nil {
		return nil, nil, err
	}
	x3, y3 := AddUnchecked(x1, y1, x2, y2)
	return x3, y3, nil
}

// AddUnchecked applies the secp256k1 group law without validating its
// operands. Infinity is the identity; a point plus its inverse (equal
// x, opposite y) is infinity; a point plus itself falls through to the
// tangent rule. The inverse test runs before the doubling test so that
// equal points with y = 0 resolve to infinity rather than reaching a
// zero denominator; no real curve point has y = 0, so for valid input
// the two orders agree.
func AddUnchecked(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	if IsInfinity(x1, y1) {
		return new(big.Int).Set(x2), new(big.Int).Set(y2)
	}
	if IsInfinity(x2, y2) {
		return new(big.Int).Set(x1), new(big.Int).Set(y1)
	}

	if x1.Cmp(x2) == 0 {
		ySum := new(big.Int).Add(y1, y2)
		ySum.Mod(ySum, P)
		if ySum.Sign() == 0 {
			return new(big.Int), new(big.Int)
		}
		if y1.Cmp(y2) == 0 {
			return DoubleUnchecked(x1, y1)
		}
	}

	// Chord slope m = (y2 - y1) / (x2 - x1).
	num := new(big.Int).Sub(y2, y1)
	num.Mod(num, P)
	den := new(big.Int).Sub(x2, x1)
	den.Mod(den, P)
	m := num.Mul(num, ModInverse(den))
	m.Mod(m, P)

	// x3 = m² - x1 - x2, y3 = m(x1 - x3) - y1.
	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(m, y3)
	y3.Sub(y3, y1)
	y3.Mod(y3, P)

	return x3, y3
}

// Double returns 2P for a validated point P. Infinity doubles to
// infinity.
func Double(x, y *big.Int) (*big.Int, *big.Int, error) {
	if err := checkPoint(x, y); err != nil {
		return nil, nil, err
	}
	x3, y3 := DoubleUnchecked(x, y)
	return x3, y3, nil
}

// DoubleUnchecked computes the tangent rule without validating its
// operand. The slope is m = 3x² / 2y, the a = 0 form of the doubling
// numerator. Curve membership guarantees y != 0 (no secp256k1 point
// has y = 0), so the denominator never vanishes for genuine input;
// infinity maps to itself.
func DoubleUnchecked(x, y *big.Int) (*big.Int, *big.Int) {
	if IsInfinity(x, y) {
		return new(big.Int), new(big.Int)
	}

	num := new(big.Int).Mul(x, x)
	num.Mul(num, three)
	num.Mod(num, P)
	den := new(big.Int).Lsh(y, 1)
	den.Mod(den, P)
	m := num.Mul(num, ModInverse(den))
	m.Mod(m, P)

	// x3 = m² - 2x, y3 = m(x - x3) - y.
	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, x)
	x3.Sub(x3, x)
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(x, x3)
	y3.Mul(m, y3)
	y3.Sub(y3, y)
	y3.Mod(y3, P)

	return x3, y3
}

// ScalarMult computes k*P by double-and-add over a validated base
// point, scanning the scalar from its least-significant bit. An
// infinity base or a zero scalar yields infinity. The scalar is used
// as-is, without reduction mod N; callers that need canonical results
// for k >= N reduce first. Negative scalars are treated as zero.
func ScalarMult(x, y, k *big.Int) (*big.Int, *big.Int, error) {
	if err := checkPoint(x, y); err != nil {
		return nil, nil, err
	}
	if IsInfinity(x, y) || k.Sign() <= 0 {
		return new(big.Int), new(big.Int), nil
	}

	// The accumulator and running point stay valid by construction, so
	// the unchecked operations are safe here.
	accX, accY := new(big.Int), new(big.Int)
	runX, runY := new(big.Int).Set(x), new(big.Int).Set(y)
	rem := new(big.Int).Set(k)

	for rem.Sign() > 0 {
		if rem.Bit(0) == 1 {
			accX, accY = AddUnchecked(accX, accY, runX, runY)
		}
		runX, runY = DoubleUnchecked(runX, runY)
		rem.Rsh(rem, 1)
	}
	return accX, accY, nil
}
