// Package bitwise implements a gadget proving that a public value equals
// the bitwise AND of two private fixed-width words, using only addition
// gates and one table-membership argument; the constraint system has no
// native bitwise operator.
//
// The encoding rests on "spread" values: integers whose binary digits only
// occupy even bit positions. Adding two spread values sums corresponding
// bits into 2-bit digit slots without carries between slots; a digit equals
// 2 exactly where both input bits were 1, which is the AND of that
// position.
package bitwise

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/plonkish/constraint"
	"github.com/consensys/plonkish/frontend"
)

// WordBits is the bit width of the words the AND circuit operates on. It
// must be even; the spread table has 2^(WordBits/2) rows.
const WordBits = 8

// spreadAt returns the value obtained by moving bit c of i to bit position
// 2c, for every c; all odd bit positions of the result are zero.
func spreadAt(i uint64) uint64 {
	var r uint64
	var c uint
	for i != 0 {
		r += (i & 1) << (2 * c)
		i >>= 1
		c++
	}
	return r
}

// SpreadTable is the lookup table of every legally spread half-word:
// row i holds spreadAt(i). Membership proves that a value has a 0 or 1 in
// each of its 2-bit digit slots. The table is immutable once built.
type SpreadTable struct {
	col    constraint.Column
	values []fr.Element
}

// NewSpreadTable allocates a table column and enumerates the
// 2^(WordBits/2) spread values in row order.
func NewSpreadTable(cs *constraint.System) *SpreadTable {
	values := make([]fr.Element, 1<<(WordBits/2))
	for i := range values {
		values[i] = fr.NewElement(spreadAt(uint64(i)))
	}
	return &SpreadTable{col: cs.LookupTableColumn(), values: values}
}

// Column returns the table column the lookup argument targets.
func (t *SpreadTable) Column() constraint.Column {
	return t.col
}

// Assign loads the table values into the backend; it must run once per
// synthesis pass, before satisfiability is checked.
func (t *SpreadTable) Assign(l frontend.Layouter) error {
	return l.AssignTable("spread table", t.col, t.values)
}
