// Package frontend defines the contract between circuits and an
// arithmetization backend: the Layouter and Region capability interfaces a
// backend implements, the cell handles gadget operations exchange, and the
// Circuit interface a backend synthesizes.
package frontend

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/plonkish/constraint"
)

// ErrMissingWitness is returned (wrapped) by an assignment that requires a
// concrete value during a witness-bearing pass but received an unknown
// Value. It aborts synthesis immediately; it is never a constraint
// violation, which only the backend's satisfiability check can surface.
var ErrMissingWitness = errors.New("witness value missing")

// Cell is one slot of the constraint table.
type Cell struct {
	Column constraint.Column
	Row    int
}

// AssignedCell is a cell handle together with its witness value. Gadget
// operations only ever exchange AssignedCells; copying one into another
// region's input position is what enforces equality of the underlying
// values.
type AssignedCell struct {
	Cell  Cell
	Value Value
}

// Region assigns cells at offsets relative to a position chosen by the
// backend's floor planner. A region is only valid inside the
// Layouter.AssignRegion callback that produced it.
type Region interface {
	// EnableSelector turns a selector on at the given offset.
	EnableSelector(s constraint.Selector, offset int) error

	// AssignAdvice writes a witness value into an advice cell. During a
	// witness-bearing pass an unknown value fails with ErrMissingWitness.
	AssignAdvice(name string, col constraint.Column, offset int, v Value) (AssignedCell, error)

	// AssignFixed writes a constant into a fixed cell.
	AssignFixed(name string, col constraint.Column, offset int, v fr.Element) (Cell, error)

	// CopyAdvice assigns the value of an existing cell into this region and
	// records an equality constraint between the two cells.
	CopyAdvice(src AssignedCell, col constraint.Column, offset int) (AssignedCell, error)
}

// Layouter is the synthesis-time capability surface of the backend.
type Layouter interface {
	// AssignRegion allocates a fresh region and runs fn inside it. The
	// region's rows are disjoint from every other region's.
	AssignRegion(name string, fn func(Region) error) error

	// AssignTable fills a lookup table column with a fixed set of values,
	// starting at row 0. A table column may be assigned only once.
	AssignTable(name string, col constraint.Column, values []fr.Element) error

	// ConstrainInstance binds a cell to the public input at (col, row): the
	// proof only verifies if the two are equal.
	ConstrainInstance(c Cell, col constraint.Column, row int) error
}

// Circuit is implemented by a complete circuit definition. Configure
// declares structure into the system and must not depend on witness
// presence; Synthesize performs the assignment pass through the layouter.
type Circuit interface {
	Configure(cs *constraint.System)
	Synthesize(l Layouter) error
}
