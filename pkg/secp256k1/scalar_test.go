package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarMult(t *testing.T) {
	t.Run("zero scalar yields infinity", func(t *testing.T) {
		x, y, err := ScalarMult(Gx, Gy, big.NewInt(0))
		require.NoError(t, err)
		assert.True(t, IsInfinity(x, y))
	})

	t.Run("one is the identity scalar", func(t *testing.T) {
		x, y, err := ScalarMult(Gx, Gy, big.NewInt(1))
		require.NoError(t, err)
		assert.Equal(t, Gx, x)
		assert.Equal(t, Gy, y)
	})

	t.Run("two matches addition", func(t *testing.T) {
		ax, ay, err := Add(Gx, Gy, Gx, Gy)
		require.NoError(t, err)

		x, y, err := ScalarMult(Gx, Gy, big.NewInt(2))
		require.NoError(t, err)
		assert.Equal(t, ax, x)
		assert.Equal(t, ay, y)
	})

	t.Run("infinity base stays infinity", func(t *testing.T) {
		x, y, err := ScalarMult(big.NewInt(0), big.NewInt(0), big.NewInt(42))
		require.NoError(t, err)
		assert.True(t, IsInfinity(x, y))
	})

	t.Run("rejects invalid base", func(t *testing.T) {
		_, _, err := ScalarMult(big.NewInt(1), big.NewInt(1), big.NewInt(2))
		assert.ErrorIs(t, err, ErrInvalidPoint)
	})

	t.Run("rejects out-of-range base", func(t *testing.T) {
		_, _, err := ScalarMult(P, Gy, big.NewInt(2))
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}

// TestScalarMultMatchesRepeatedAddition walks k from 1 upward and
// keeps a running sum G + G + ... alongside.
func TestScalarMultMatchesRepeatedAddition(t *testing.T) {
	sumX, sumY := new(big.Int), new(big.Int) // infinity

	for k := int64(1); k <= 32; k++ {
		sumX, sumY = AddUnchecked(sumX, sumY, Gx, Gy)

		x, y, err := ScalarMult(Gx, Gy, big.NewInt(k))
		require.NoError(t, err)
		assert.Equal(t, sumX, x, "x mismatch at k = %d", k)
		assert.Equal(t, sumY, y, "y mismatch at k = %d", k)

		if !IsInfinity(x, y) {
			ok, err := IsOnCurve(x, y)
			require.NoError(t, err)
			assert.True(t, ok, "k*G off curve at k = %d", k)
		}
	}
}

// TestScalarMultGroupOrder exercises k at and around the group order N.
// The scalar is deliberately not reduced mod N, so N*G must come out
// as the identity and (N+1)*G as G itself.
func TestScalarMultGroupOrder(t *testing.T) {
	x, y, err := ScalarMult(Gx, Gy, N)
	require.NoError(t, err)
	assert.True(t, IsInfinity(x, y), "N*G must be the identity")

	nPlusOne := new(big.Int).Add(N, big.NewInt(1))
	x, y, err = ScalarMult(Gx, Gy, nPlusOne)
	require.NoError(t, err)
	assert.Equal(t, Gx, x)
	assert.Equal(t, Gy, y)

	nMinusOne := new(big.Int).Sub(N, big.NewInt(1))
	x, y, err = ScalarMult(Gx, Gy, nMinusOne)
	require.NoError(t, err)
	negX, negY, err := Negate(Gx, Gy)
	require.NoError(t, err)
	assert.Equal(t, negX, x, "(N-1)*G must equal -G")
	assert.Equal(t, negY, y)
}

// TestScalarMultDistributes checks (a+b)*G == a*G + b*G for a few
// scalar pairs, including ones straddling a byte boundary.
func TestScalarMultDistributes(t *testing.T) {
	pairs := [][2]int64{{1, 1}, {2, 3}, {100, 155}, {254, 2}, {1000, 24}}

	for _, pair := range pairs {
		a, b := big.NewInt(pair[0]), big.NewInt(pair[1])

		ax, ay, err := ScalarMult(Gx, Gy, a)
		require.NoError(t, err)
		bx, by, err := ScalarMult(Gx, Gy, b)
		require.NoError(t, err)
		sumX, sumY, err := Add(ax, ay, bx, by)
		require.NoError(t, err)

		abX, abY, err := ScalarMult(Gx, Gy, new(big.Int).Add(a, b))
		require.NoError(t, err)
		assert.Equal(t, abX, sumX, "mismatch for %d + %d", pair[0], pair[1])
		assert.Equal(t, abY, sumY, "mismatch for %d + %d", pair[0], pair[1])
	}
}
