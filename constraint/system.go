// Package constraint declares the structure of a PLONKish circuit;
// columns, selectors, gate polynomials and lookup arguments.
//
// A System carries no witness data; it is the output of a circuit's
// Configure step and must be identical across the structural (key
// generation) and proving passes.
package constraint

// ColumnKind partitions the columns of the constraint table.
type ColumnKind uint8

const (
	// ColumnAdvice columns hold private witness values assigned during synthesis.
	ColumnAdvice ColumnKind = iota + 1
	// ColumnInstance columns hold public inputs supplied by the verifier.
	ColumnInstance
	// ColumnFixed columns hold constants baked into the circuit.
	ColumnFixed
	// ColumnTable columns hold precomputed lookup tables.
	ColumnTable
)

func (k ColumnKind) String() string {
	switch k {
	case ColumnAdvice:
		return "advice"
	case ColumnInstance:
		return "instance"
	case ColumnFixed:
		return "fixed"
	case ColumnTable:
		return "table"
	}
	return "unknown"
}

// Column identifies one column of the constraint table.
type Column struct {
	Kind  ColumnKind
	Index int
}

// Selector is a virtual boolean column; a gate polynomial multiplied by a
// selector query vanishes on every row where the selector is not enabled.
type Selector struct {
	Index int
}

// Gate is a named set of polynomial constraints; each polynomial must
// evaluate to zero on every row of the table.
type Gate struct {
	Name  string
	Polys []*Expression
}

// Lookup requires each input expression, evaluated on every row, to be a
// member of the table column. The inputs are independent memberships in the
// same table; they are grouped under one declaration so that a single
// selector gates them together.
type Lookup struct {
	Name   string
	Inputs []*Expression
	Table  Column
}

// System is the full declared structure of a circuit.
type System struct {
	NbAdvice    int
	NbInstance  int
	NbFixed     int
	NbTable     int
	NbSelectors int

	// Equality lists the columns participating in the permutation argument;
	// only cells of these columns may be copy-constrained.
	Equality []Column

	// Constants lists the fixed columns available for constant assignment.
	Constants []Column

	Gates   []Gate
	Lookups []Lookup
}

// AdviceColumn allocates a new advice column.
func (s *System) AdviceColumn() Column {
	c := Column{Kind: ColumnAdvice, Index: s.NbAdvice}
	s.NbAdvice++
	return c
}

// InstanceColumn allocates a new public input column.
func (s *System) InstanceColumn() Column {
	c := Column{Kind: ColumnInstance, Index: s.NbInstance}
	s.NbInstance++
	return c
}

// FixedColumn allocates a new fixed column.
func (s *System) FixedColumn() Column {
	c := Column{Kind: ColumnFixed, Index: s.NbFixed}
	s.NbFixed++
	return c
}

// LookupTableColumn allocates a new lookup table column.
func (s *System) LookupTableColumn() Column {
	c := Column{Kind: ColumnTable, Index: s.NbTable}
	s.NbTable++
	return c
}

// Selector allocates a new selector.
func (s *System) Selector() Selector {
	sel := Selector{Index: s.NbSelectors}
	s.NbSelectors++
	return sel
}

// EnableEquality marks a column as participating in the permutation
// argument. Enabling the same column twice is a no-op.
func (s *System) EnableEquality(c Column) {
	if c.Kind == ColumnTable {
		panic("constraint: equality on a lookup table column")
	}
	for _, e := range s.Equality {
		if e == c {
			return
		}
	}
	s.Equality = append(s.Equality, c)
}

// EnableConstant marks a fixed column as usable for constant assignment.
func (s *System) EnableConstant(c Column) {
	if c.Kind != ColumnFixed {
		panic("constraint: constants must live in a fixed column")
	}
	for _, e := range s.Constants {
		if e == c {
			return
		}
	}
	s.Constants = append(s.Constants, c)
}

// CanCopy reports whether a column is equality enabled.
func (s *System) CanCopy(c Column) bool {
	for _, e := range s.Equality {
		if e == c {
			return true
		}
	}
	return false
}

// CreateGate declares a named gate.
func (s *System) CreateGate(name string, polys ...*Expression) {
	if len(polys) == 0 {
		panic("constraint: gate with no polynomial")
	}
	s.Gates = append(s.Gates, Gate{Name: name, Polys: polys})
}

// AddLookup declares a lookup argument against a table column.
func (s *System) AddLookup(name string, table Column, inputs ...*Expression) {
	if table.Kind != ColumnTable {
		panic("constraint: lookup against a non-table column")
	}
	if len(inputs) == 0 {
		panic("constraint: lookup with no input")
	}
	s.Lookups = append(s.Lookups, Lookup{Name: name, Inputs: inputs, Table: table})
}
