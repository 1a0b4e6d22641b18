package bitwise

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/plonkish/constraint"
	"github.com/consensys/plonkish/frontend"
)

// Word is a handle to one constrained cell and its witness value. Words are
// produced only by chip operations; feeding a Word back into another
// operation copy-constrains the new region's input cell to it.
type Word struct {
	cell frontend.AssignedCell
}

// AndConfig is the declared structure the chip operates on. It is produced
// by Configure and is identical across synthesis passes.
type AndConfig struct {
	// the two advice columns all chip operations assign into
	Advice [2]constraint.Column

	// the public input column
	Instance constraint.Column

	// fixed column reserved for constants
	Constant constraint.Column

	Spread *SpreadTable

	SAdd       constraint.Selector
	SDecompose constraint.Selector
	SCompose   constraint.Selector
}

// AndChip implements the word operations the AND circuit is wired from:
// load, add, decompose, compose and public exposure. Every operation runs
// in its own region.
type AndChip struct {
	config AndConfig
}

// NewAndChip wraps a configuration produced by Configure.
func NewAndChip(config AndConfig) *AndChip {
	return &AndChip{config: config}
}

// Configure declares the chip's gates and lookup into the system:
//
//	add:        s_add       * (advice0 + advice1   - advice0@next) == 0
//	decompose:  s_decompose * (advice0 + 2*advice1 - advice0@next) == 0
//	compose:    s_compose   * (advice0 + 2*advice1 - advice0@next) == 0
//
// and one lookup, gated by the decompose selector, requiring both advice
// cells of a decompose row to be members of the spread table.
func Configure(cs *constraint.System, advice [2]constraint.Column, instance, fixed constraint.Column) AndConfig {
	cs.EnableEquality(instance)
	cs.EnableConstant(fixed)
	for _, col := range advice {
		cs.EnableEquality(col)
	}

	sAdd := cs.Selector()
	sDecompose := cs.Selector()
	sCompose := cs.Selector()
	spread := NewSpreadTable(cs)

	lhs := constraint.Query(advice[0], constraint.CurRow)
	rhs := constraint.Query(advice[1], constraint.CurRow)
	out := constraint.Query(advice[0], constraint.NextRow)
	two := fr.NewElement(2)

	cs.CreateGate("add",
		constraint.QuerySelector(sAdd).Mul(lhs.Add(rhs).Sub(out)))

	cs.CreateGate("decompose",
		constraint.QuerySelector(sDecompose).Mul(lhs.Add(rhs.Scale(two)).Sub(out)))

	cs.CreateGate("compose",
		constraint.QuerySelector(sCompose).Mul(lhs.Add(rhs.Scale(two)).Sub(out)))

	look := constraint.QuerySelector(sDecompose)
	cs.AddLookup("spread", spread.Column(), look.Mul(lhs), look.Mul(rhs))

	return AndConfig{
		Advice:     advice,
		Instance:   instance,
		Constant:   fixed,
		Spread:     spread,
		SAdd:       sAdd,
		SDecompose: sDecompose,
		SCompose:   sCompose,
	}
}

// AllocTable assigns the spread table; it must run once per synthesis pass
// before any decompose region.
func (c *AndChip) AllocTable(l frontend.Layouter) error {
	return c.config.Spread.Assign(l)
}

// LoadPrivate assigns a private input into a fresh cell. No gate constrains
// it; the value's range is established by the decompositions downstream.
func (c *AndChip) LoadPrivate(l frontend.Layouter, v frontend.Value) (Word, error) {
	var w Word
	err := l.AssignRegion("load private", func(r frontend.Region) error {
		cell, err := r.AssignAdvice("private input", c.config.Advice[0], 0, v)
		if err != nil {
			return err
		}
		w = Word{cell: cell}
		return nil
	})
	return w, err
}

// Add returns a Word constrained to equal a + b.
func (c *AndChip) Add(l frontend.Layouter, a, b Word) (Word, error) {
	var w Word
	err := l.AssignRegion("add", func(r frontend.Region) error {
		// one addition gate in this region, enabled at offset 0; it
		// constrains cells at offsets 0 and 1
		if err := r.EnableSelector(c.config.SAdd, 0); err != nil {
			return err
		}

		// the inputs could be located anywhere in the circuit; copy them
		// into this region so the gate sees provably equal values
		if _, err := r.CopyAdvice(a.cell, c.config.Advice[0], 0); err != nil {
			return err
		}
		if _, err := r.CopyAdvice(b.cell, c.config.Advice[1], 0); err != nil {
			return err
		}

		out, err := r.AssignAdvice("lhs + rhs", c.config.Advice[0], 1, a.cell.Value.Add(b.cell.Value))
		if err != nil {
			return err
		}
		w = Word{cell: out}
		return nil
	})
	return w, err
}

// Decompose splits a Word into its even-position bits (kept in place) and
// its odd-position bits (shifted down by one), returned in that order. The
// region enforces w = even + 2*odd AND that both halves are members of the
// spread table; the lookup is what makes the additive split a genuine
// per-bit split.
func (c *AndChip) Decompose(l frontend.Layouter, w Word) (Word, Word, error) {
	// witnesses are precomputed from the input handle's value, before the
	// region runs
	evenVal, oddVal := splitValue(w.cell.Value)

	var even, odd Word
	err := l.AssignRegion("decompose", func(r frontend.Region) error {
		if err := r.EnableSelector(c.config.SDecompose, 0); err != nil {
			return err
		}

		e, err := r.AssignAdvice("even bits", c.config.Advice[0], 0, evenVal)
		if err != nil {
			return err
		}
		o, err := r.AssignAdvice("odd bits", c.config.Advice[1], 0, oddVal)
		if err != nil {
			return err
		}

		// the decomposed word sits in the gate's output position
		if _, err := r.CopyAdvice(w.cell, c.config.Advice[0], 1); err != nil {
			return err
		}

		even, odd = Word{cell: e}, Word{cell: o}
		return nil
	})
	return even, odd, err
}

// Compose returns a Word constrained to equal a + 2*b, reassembling two
// decomposition halves into their original bit positions. Unlike
// Decompose, no lookup is involved.
func (c *AndChip) Compose(l frontend.Layouter, a, b Word) (Word, error) {
	var w Word
	err := l.AssignRegion("compose", func(r frontend.Region) error {
		if err := r.EnableSelector(c.config.SCompose, 0); err != nil {
			return err
		}
		if _, err := r.CopyAdvice(a.cell, c.config.Advice[0], 0); err != nil {
			return err
		}
		if _, err := r.CopyAdvice(b.cell, c.config.Advice[1], 0); err != nil {
			return err
		}

		v := frontend.Combine(a.cell.Value, b.cell.Value, func(x, y fr.Element) fr.Element {
			var res fr.Element
			res.Double(&y).Add(&res, &x)
			return res
		})
		out, err := r.AssignAdvice("lhs + 2*rhs", c.config.Advice[0], 1, v)
		if err != nil {
			return err
		}
		w = Word{cell: out}
		return nil
	})
	return w, err
}

// ExposePublic binds a Word to the public input at the given instance row.
func (c *AndChip) ExposePublic(l frontend.Layouter, w Word, row int) error {
	return l.ConstrainInstance(w.cell.Cell, c.config.Instance, row)
}
