// Package mock implements an arithmetization backend that synthesizes a
// circuit into in-memory assignment matrices and checks satisfiability of
// every gate, lookup and copy constraint over all 2^k rows.
//
// It is used for fast verification of a circuit/witness pair in tests,
// without going through a polynomial commitment scheme.
package mock

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/plonkish/constraint"
	"github.com/consensys/plonkish/frontend"
	"github.com/consensys/plonkish/logger"
)

// ErrTooManyRows is returned (wrapped) when synthesis assigns past row
// 2^k - 1; the circuit needs a larger k.
var ErrTooManyRows = errors.New("mock: circuit does not fit in 2^k rows")

type slot struct {
	value    fr.Element
	assigned bool
}

type copyPair struct {
	A, B frontend.Cell
}

type instanceBinding struct {
	Cell frontend.Cell
	Col  constraint.Column
	Row  int
}

// RegionLayout records where the floor planner placed one region.
type RegionLayout struct {
	Name  string
	Start int
	Rows  int
}

// Prover holds the result of one synthesis pass: the declared structure and
// the assignment matrices. A witness-free pass (Compile) carries the same
// structure as a witness-bearing pass (Run) but no values.
type Prover struct {
	k       int
	n       int
	cs      *constraint.System
	witness bool

	advice    [][]slot
	fixed     [][]slot
	instance  [][]fr.Element
	tables    [][]fr.Element
	selectors []*bitset.BitSet

	copies   []copyPair
	bindings []instanceBinding
	regions  []RegionLayout
	cursor   int
}

// Run synthesizes the circuit with witnesses and returns the filled prover.
// instance supplies the public inputs, one slice per instance column. Any
// assignment of an unknown value fails with frontend.ErrMissingWitness.
func Run(k int, c frontend.Circuit, instance [][]fr.Element) (*Prover, error) {
	return synthesize(k, c, instance, true)
}

// Compile runs the witness-free structural pass: same region placement,
// selectors and copy constraints as Run, but no witness values and no
// satisfiability check.
func Compile(k int, c frontend.Circuit) (*Prover, error) {
	return synthesize(k, c, nil, false)
}

func synthesize(k int, c frontend.Circuit, instance [][]fr.Element, witness bool) (*Prover, error) {
	if k < 1 || k > 28 {
		return nil, fmt.Errorf("mock: k=%d out of range", k)
	}
	cs := &constraint.System{}
	c.Configure(cs)

	if witness && len(instance) != cs.NbInstance {
		return nil, fmt.Errorf("mock: got %d instance columns, circuit declares %d", len(instance), cs.NbInstance)
	}

	n := 1 << k
	p := &Prover{
		k:         k,
		n:         n,
		cs:        cs,
		witness:   witness,
		advice:    make([][]slot, cs.NbAdvice),
		fixed:     make([][]slot, cs.NbFixed),
		instance:  instance,
		tables:    make([][]fr.Element, cs.NbTable),
		selectors: make([]*bitset.BitSet, cs.NbSelectors),
	}
	for i := range p.advice {
		p.advice[i] = make([]slot, n)
	}
	for i := range p.fixed {
		p.fixed[i] = make([]slot, n)
	}
	for i := range p.selectors {
		p.selectors[i] = bitset.New(uint(n))
	}

	log := logger.Logger()
	log.Debug().Int("k", k).
		Int("nbAdvice", cs.NbAdvice).
		Int("nbGates", len(cs.Gates)).
		Int("nbLookups", len(cs.Lookups)).
		Bool("witness", witness).
		Msg("synthesizing circuit")

	if err := c.Synthesize(&layouter{p: p}); err != nil {
		return nil, err
	}

	log.Debug().Int("nbRegions", len(p.regions)).Int("rowsUsed", p.cursor).Msg("synthesis done")
	return p, nil
}

// K returns the circuit size parameter.
func (p *Prover) K() int { return p.k }

// NbRows returns 2^k.
func (p *Prover) NbRows() int { return p.n }

// System returns the declared structure.
func (p *Prover) System() *constraint.System { return p.cs }

// Regions returns the floor plan, in allocation order.
func (p *Prover) Regions() []RegionLayout { return p.regions }

// IsAssigned reports whether an advice or fixed cell was written to during
// synthesis.
func (p *Prover) IsAssigned(c constraint.Column, row int) bool {
	if row < 0 || row >= p.n {
		return false
	}
	switch c.Kind {
	case constraint.ColumnAdvice:
		return p.advice[c.Index][row].assigned
	case constraint.ColumnFixed:
		return p.fixed[c.Index][row].assigned
	}
	return false
}
