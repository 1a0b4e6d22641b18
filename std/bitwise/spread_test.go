package bitwise

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/consensys/plonkish/constraint"
)

func TestSpreadAt(t *testing.T) {
	assert.Equal(t, uint64(0b0), spreadAt(0))
	assert.Equal(t, uint64(0b1), spreadAt(1))
	assert.Equal(t, uint64(0b100), spreadAt(2))
	assert.Equal(t, uint64(0b101), spreadAt(3))
}

func TestSpreadTableOrder(t *testing.T) {
	assert := assert.New(t)

	var s constraint.System
	tbl := NewSpreadTable(&s)
	assert.Len(tbl.values, 1<<(WordBits/2))

	// strictly increasing, hence injective
	for i := 1; i < len(tbl.values); i++ {
		prev, cur := tbl.values[i-1], tbl.values[i]
		assert.Equal(-1, prev.Cmp(&cur), "table must be strictly increasing at row %d", i)
	}
}

func TestSpreadProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("spread values have zero odd-position bits", prop.ForAll(
		func(i uint32) bool {
			return spreadAt(uint64(i))&0xaaaaaaaaaaaaaaaa == 0
		},
		gen.UInt32(),
	))

	properties.Property("spread is strictly monotone", prop.ForAll(
		func(i uint32) bool {
			return spreadAt(uint64(i)) < spreadAt(uint64(i)+1)
		},
		gen.UInt32Range(0, 1<<31),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
