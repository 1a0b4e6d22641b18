package bitwise

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/plonkish/backend/mock"
	"github.com/consensys/plonkish/constraint"
	"github.com/consensys/plonkish/frontend"
)

const testK = 5

func runAnd(t *testing.T, a, b, claimed uint64) error {
	t.Helper()
	circuit := &AndCircuit{
		A: frontend.KnownUint64(a),
		B: frontend.KnownUint64(b),
	}
	p, err := mock.Run(testK, circuit, [][]fr.Element{{fr.NewElement(claimed)}})
	require.NoError(t, err)
	return p.Verify()
}

func TestAndCircuit(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{3, 4},
		{7, 6},
		{2, 3},
		{0, 0},
		{0xff, 0xff},
		{0xaa, 0x55},
	}
	for _, tc := range cases {
		assert.NoError(t, runAnd(t, tc.a, tc.b, tc.a&tc.b), "a=%d b=%d", tc.a, tc.b)
	}
}

func TestAndCircuitRejectsWrongPublicInput(t *testing.T) {
	assert.Error(t, runAnd(t, 7, 6, 5))
	assert.Error(t, runAnd(t, 3, 4, 1))
	assert.Error(t, runAnd(t, 0xff, 0xff, 0))
}

func TestAndCircuitAllWords(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("a & b accepted, a & b + 1 rejected", prop.ForAll(
		func(a, b uint64) bool {
			if err := runAnd(t, a, b, a&b); err != nil {
				return false
			}
			wrong := ((a & b) + 1) % (1 << WordBits)
			return runAnd(t, a, b, wrong) != nil
		},
		gen.UInt64Range(0, 1<<WordBits-1),
		gen.UInt64Range(0, 1<<WordBits-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAndCircuitMissingWitness(t *testing.T) {
	circuit := &AndCircuit{A: frontend.Unknown(), B: frontend.KnownUint64(6)}
	_, err := mock.Run(testK, circuit, [][]fr.Element{{fr.NewElement(6)}})
	assert.ErrorIs(t, err, frontend.ErrMissingWitness)
}

func TestStructuralPassIdentity(t *testing.T) {
	require := require.New(t)

	compiled, err := mock.Compile(testK, &AndCircuit{A: frontend.Unknown(), B: frontend.Unknown()})
	require.NoError(err)
	proved, err := mock.Run(testK, &AndCircuit{
		A: frontend.KnownUint64(7),
		B: frontend.KnownUint64(6),
	}, [][]fr.Element{{fr.NewElement(6)}})
	require.NoError(err)

	fp1, err := compiled.Fingerprint()
	require.NoError(err)
	fp2, err := proved.Fingerprint()
	require.NoError(err)
	require.True(bytes.Equal(fp1, fp2), "key generation and proving passes must produce identical structure")
}

func TestAndCircuitRegionCount(t *testing.T) {
	p, err := mock.Compile(testK, &AndCircuit{A: frontend.Unknown(), B: frontend.Unknown()})
	require.NoError(t, err)

	// load x2, decompose x4, add x2, compose x1
	assert.Len(t, p.Regions(), 9)
}

// badDecomposeCircuit satisfies the decompose gate's linear relation with a
// witness whose "even" half has a digit slot holding 3; only the lookup can
// reject it.
type badDecomposeCircuit struct {
	even, odd, word uint64

	config AndConfig
}

func (c *badDecomposeCircuit) Configure(cs *constraint.System) {
	advice := [2]constraint.Column{cs.AdviceColumn(), cs.AdviceColumn()}
	c.config = Configure(cs, advice, cs.InstanceColumn(), cs.FixedColumn())
}

func (c *badDecomposeCircuit) Synthesize(l frontend.Layouter) error {
	chip := NewAndChip(c.config)
	if err := chip.AllocTable(l); err != nil {
		return err
	}
	return l.AssignRegion("decompose", func(r frontend.Region) error {
		if err := r.EnableSelector(c.config.SDecompose, 0); err != nil {
			return err
		}
		if _, err := r.AssignAdvice("even bits", c.config.Advice[0], 0, frontend.KnownUint64(c.even)); err != nil {
			return err
		}
		if _, err := r.AssignAdvice("odd bits", c.config.Advice[1], 0, frontend.KnownUint64(c.odd)); err != nil {
			return err
		}
		_, err := r.AssignAdvice("word", c.config.Advice[0], 1, frontend.KnownUint64(c.word))
		return err
	})
}

func TestLookupRejectsUnspreadWitness(t *testing.T) {
	require := require.New(t)

	// honest split of 3 is (1, 1); both pass the lookup
	p, err := mock.Run(testK, &badDecomposeCircuit{even: 1, odd: 1, word: 3}, [][]fr.Element{{}})
	require.NoError(err)
	require.NoError(p.Verify())

	// 3 = 3 + 2*0 satisfies the linear relation, but 3 has a digit slot
	// holding 3 and is not a spread value
	p, err = mock.Run(testK, &badDecomposeCircuit{even: 3, odd: 0, word: 3}, [][]fr.Element{{}})
	require.NoError(err)
	err = p.Verify()
	require.Error(err)
	require.Contains(err.Error(), "lookup")

	// a digit slot holding 2 must be rejected the same way
	p, err = mock.Run(testK, &badDecomposeCircuit{even: 2, odd: 0, word: 2}, [][]fr.Element{{}})
	require.NoError(err)
	require.Error(p.Verify())
}
