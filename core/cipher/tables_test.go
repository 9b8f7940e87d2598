package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardTablesValid(t *testing.T) {
	tb := Standard()
	require.NoError(t, tb.Validate())
	require.Len(t, tb.Rotors, 3)
	for i := range tb.Rotors {
		assert.True(t, tb.Rotors[i].IsBijection(), "rotor %d", i)
	}
	assert.Equal(t, RotorI, tb.Rotors[0].String())
	assert.Equal(t, RotorIII, tb.Rotors[2].String())
}

func TestReflectorInvolutionNoFixedPoint(t *testing.T) {
	r := Standard().Reflector
	for i := 0; i < Size; i++ {
		require.Equal(t, i, r.At(r.At(i)), "reflector twice must return %q", Symbol(i))
		require.NotEqual(t, i, r.At(i), "reflector maps %q to itself", Symbol(i))
	}
}

func TestPlugboardInvolution(t *testing.T) {
	pb := Standard().Plugboard
	require.NotNil(t, pb)
	for i := 0; i < Size; i++ {
		require.Equal(t, i, pb.At(pb.At(i)))
	}
	assert.Len(t, pb.FixedPoints(), Size-20, "ten pairs swap twenty symbols")
}

// Standard hands out copies; editing one must not leak into the next.
func TestStandardReturnsCopies(t *testing.T) {
	a := Standard()
	a.Rotors[0][0], a.Rotors[0][1] = a.Rotors[0][1], a.Rotors[0][0]
	a.Plugboard[0] = 5
	b := Standard()
	assert.Equal(t, RotorI, b.Rotors[0].String())
	require.NoError(t, b.Validate())
}

func TestValidateCatchesBrokenTables(t *testing.T) {
	tb := Standard()
	tb.Rotors[1][0] = tb.Rotors[1][1]
	assert.ErrorIs(t, tb.Validate(), ErrNotPermutation)

	tb = Standard()
	tb.Reflector = Identity()
	assert.ErrorIs(t, tb.Validate(), ErrFixedPoint)

	tb = Standard()
	rot, err := NewWiring(RotorI)
	require.NoError(t, err)
	tb.Reflector = rot
	assert.ErrorIs(t, tb.Validate(), ErrNotInvolution)

	tb = Standard()
	tb.Plugboard = &tb.Rotors[0]
	assert.ErrorIs(t, tb.Validate(), ErrNotInvolution)

	assert.ErrorIs(t, Tables{}.Validate(), ErrNoRotors)
}
