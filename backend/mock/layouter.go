package mock

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/plonkish/constraint"
	"github.com/consensys/plonkish/frontend"
)

// layouter is a single-pass floor planner: regions are stacked vertically in
// allocation order, each starting at the first row past the previous one.
type layouter struct {
	p *Prover
}

func (l *layouter) AssignRegion(name string, fn func(frontend.Region) error) error {
	r := &region{p: l.p, name: name, start: l.p.cursor}
	if err := fn(r); err != nil {
		return err
	}
	l.p.regions = append(l.p.regions, RegionLayout{Name: name, Start: r.start, Rows: r.rows})
	l.p.cursor += r.rows
	return nil
}

func (l *layouter) AssignTable(name string, col constraint.Column, values []fr.Element) error {
	if col.Kind != constraint.ColumnTable {
		return fmt.Errorf("mock: AssignTable %q on a %s column", name, col.Kind)
	}
	if l.p.tables[col.Index] != nil {
		return fmt.Errorf("mock: table %q assigned twice", name)
	}
	if len(values) > l.p.n {
		return fmt.Errorf("%w: table %q has %d rows", ErrTooManyRows, name, len(values))
	}
	tbl := make([]fr.Element, len(values))
	copy(tbl, values)
	l.p.tables[col.Index] = tbl
	return nil
}

func (l *layouter) ConstrainInstance(c frontend.Cell, col constraint.Column, row int) error {
	if col.Kind != constraint.ColumnInstance {
		return fmt.Errorf("mock: ConstrainInstance on a %s column", col.Kind)
	}
	if row < 0 || row >= l.p.n {
		return fmt.Errorf("%w: instance row %d", ErrTooManyRows, row)
	}
	l.p.bindings = append(l.p.bindings, instanceBinding{Cell: c, Col: col, Row: row})
	return nil
}

type region struct {
	p     *Prover
	name  string
	start int
	rows  int
}

// row translates a region offset into an absolute row, growing the region.
func (r *region) row(offset int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("mock: negative offset in region %q", r.name)
	}
	abs := r.start + offset
	if abs >= r.p.n {
		return 0, fmt.Errorf("%w: region %q row %d", ErrTooManyRows, r.name, abs)
	}
	if offset+1 > r.rows {
		r.rows = offset + 1
	}
	return abs, nil
}

func (r *region) EnableSelector(s constraint.Selector, offset int) error {
	if s.Index < 0 || s.Index >= r.p.cs.NbSelectors {
		return fmt.Errorf("mock: unknown selector %d", s.Index)
	}
	abs, err := r.row(offset)
	if err != nil {
		return err
	}
	r.p.selectors[s.Index].Set(uint(abs))
	return nil
}

func (r *region) AssignAdvice(name string, col constraint.Column, offset int, v frontend.Value) (frontend.AssignedCell, error) {
	if col.Kind != constraint.ColumnAdvice {
		return frontend.AssignedCell{}, fmt.Errorf("mock: AssignAdvice %q on a %s column", name, col.Kind)
	}
	abs, err := r.row(offset)
	if err != nil {
		return frontend.AssignedCell{}, err
	}
	s := &r.p.advice[col.Index][abs]
	if s.assigned {
		return frontend.AssignedCell{}, fmt.Errorf("mock: cell (%s%d, %d) assigned twice", col.Kind, col.Index, abs)
	}
	val, known := v.Get()
	if r.p.witness && !known {
		return frontend.AssignedCell{}, fmt.Errorf("%q: %w", name, frontend.ErrMissingWitness)
	}
	s.value = val
	s.assigned = true
	return frontend.AssignedCell{
		Cell:  frontend.Cell{Column: col, Row: abs},
		Value: v,
	}, nil
}

func (r *region) AssignFixed(name string, col constraint.Column, offset int, v fr.Element) (frontend.Cell, error) {
	if col.Kind != constraint.ColumnFixed {
		return frontend.Cell{}, fmt.Errorf("mock: AssignFixed %q on a %s column", name, col.Kind)
	}
	abs, err := r.row(offset)
	if err != nil {
		return frontend.Cell{}, err
	}
	s := &r.p.fixed[col.Index][abs]
	s.value = v
	s.assigned = true
	return frontend.Cell{Column: col, Row: abs}, nil
}

func (r *region) CopyAdvice(src frontend.AssignedCell, col constraint.Column, offset int) (frontend.AssignedCell, error) {
	if !r.p.cs.CanCopy(src.Cell.Column) || !r.p.cs.CanCopy(col) {
		return frontend.AssignedCell{}, fmt.Errorf("mock: copy between columns without equality enabled")
	}
	dst, err := r.AssignAdvice("copy", col, offset, src.Value)
	if err != nil {
		return frontend.AssignedCell{}, err
	}
	r.p.copies = append(r.p.copies, copyPair{A: src.Cell, B: dst.Cell})
	return dst, nil
}
