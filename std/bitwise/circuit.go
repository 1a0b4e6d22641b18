package bitwise

import (
	"github.com/consensys/plonkish/constraint"
	"github.com/consensys/plonkish/frontend"
)

// AndCircuit proves that the public input at instance row 0 equals the
// bitwise AND of the two private words A and B. The private inputs are
// unknown during the structural pass and must be known during proving.
type AndCircuit struct {
	A frontend.Value
	B frontend.Value

	config AndConfig
}

// Configure declares the circuit's columns and delegates the gate and
// lookup declarations to the chip.
func (c *AndCircuit) Configure(cs *constraint.System) {
	advice := [2]constraint.Column{cs.AdviceColumn(), cs.AdviceColumn()}
	instance := cs.InstanceColumn()
	fixed := cs.FixedColumn()
	c.config = Configure(cs, advice, instance, fixed)
}

// Synthesize runs the fixed 9-region pipeline.
//
// Each input is decomposed into spread halves, the halves are added
// positionwise, and decomposing the sums again isolates the carry bit of
// each 2-bit digit slot: it is 1 exactly where both input bits were 1.
// Composing the two carry vectors rebuilds the AND result at the original
// bit positions.
func (c *AndCircuit) Synthesize(l frontend.Layouter) error {
	chip := NewAndChip(c.config)

	if err := chip.AllocTable(l); err != nil {
		return err
	}

	a, err := chip.LoadPrivate(l, c.A)
	if err != nil {
		return err
	}
	b, err := chip.LoadPrivate(l, c.B)
	if err != nil {
		return err
	}

	ae, ao, err := chip.Decompose(l, a)
	if err != nil {
		return err
	}
	be, bo, err := chip.Decompose(l, b)
	if err != nil {
		return err
	}

	// digit slots of e (resp. o) hold the sums of corresponding bits of a
	// and b; each sum is in {0,1,2} and cannot spill into the next slot
	e, err := chip.Add(l, ae, be)
	if err != nil {
		return err
	}
	o, err := chip.Add(l, ao, bo)
	if err != nil {
		return err
	}

	// the odd-position half of a sum's decomposition is 1 exactly where
	// the digit was 2; the even-position half (the sums' parities) is
	// discarded
	_, eo, err := chip.Decompose(l, e)
	if err != nil {
		return err
	}
	_, oo, err := chip.Decompose(l, o)
	if err != nil {
		return err
	}

	result, err := chip.Compose(l, eo, oo)
	if err != nil {
		return err
	}

	return chip.ExposePublic(l, result, 0)
}
