package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXArithmetic(t *testing.T) {
	a := XFromInt64(7)
	b := XFromInt64(-3)
	assert.Equal(t, "4", a.Add(b).String())
	assert.Equal(t, "10", a.Sub(b).String())
	assert.Equal(t, "-21", a.Mul(b).String())
	assert.True(t, b.Less(a))
	assert.False(t, a.Less(b))
	assert.Equal(t, "-3", b.String())
	assert.Equal(t, "14", a.Shl1().String())
}

func TestXQuoRemTruncates(t *testing.T) {
	// -7 / 2 truncates toward zero: q=-3, rem=-1 (rem takes the sign of x).
	q, r := XFromInt64(-7).QuoRem(XFromInt64(2))
	assert.Equal(t, "-3", q.String())
	assert.Equal(t, "-1", r.String())
}

func TestXDivModIsEuclidean(t *testing.T) {
	// -7 divMod 2 keeps a non-negative remainder: q=-4, mod=1.
	q, mod := XFromInt64(-7).DivMod(XFromInt64(2))
	assert.Equal(t, "-4", q.String())
	assert.Equal(t, "1", mod.String())
	assert.True(t, mod.Sign() >= 0)
}

func TestXFromFloatRoundTiesAwayFromZero(t *testing.T) {
	assert.Equal(t, "3", XFromFloatRound(2.5).String())
	assert.Equal(t, "-3", XFromFloatRound(-2.5).String())
	assert.Equal(t, "2", XFromFloatRound(2.4).String())
}
