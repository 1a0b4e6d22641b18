package constraint

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Rotation is a row offset applied to a column query, relative to the row
// a gate is evaluated on. Offsets wrap around the table.
type Rotation int

const (
	// CurRow queries the row the gate is evaluated on.
	CurRow Rotation = 0
	// NextRow queries the row below.
	NextRow Rotation = 1
)

// ExprOp tags the node kind of an Expression tree.
type ExprOp uint8

const (
	OpConstant ExprOp = iota + 1
	OpQuery
	OpSelector
	OpSum
	OpProduct
	OpScaled
)

// Expression is a multivariate polynomial over column queries and
// selectors. Expressions are immutable once built; the combinators below
// return new nodes and never mutate their receiver.
type Expression struct {
	Op       ExprOp
	Constant fr.Element
	Col      Column
	Rotation Rotation
	Sel      Selector
	Operands []*Expression
}

// NewConstant returns a constant expression.
func NewConstant(v fr.Element) *Expression {
	return &Expression{Op: OpConstant, Constant: v}
}

// Query returns a cell query expression on an advice, fixed or instance
// column at the given rotation.
func Query(c Column, rot Rotation) *Expression {
	if c.Kind == ColumnTable {
		panic("constraint: cannot query a lookup table column in a gate")
	}
	return &Expression{Op: OpQuery, Col: c, Rotation: rot}
}

// QuerySelector returns a selector query expression; it evaluates to one on
// rows where the selector is enabled and zero elsewhere.
func QuerySelector(s Selector) *Expression {
	return &Expression{Op: OpSelector, Sel: s}
}

// Add returns e + o.
func (e *Expression) Add(o *Expression) *Expression {
	return &Expression{Op: OpSum, Operands: []*Expression{e, o}}
}

// Sub returns e - o.
func (e *Expression) Sub(o *Expression) *Expression {
	var minusOne fr.Element
	minusOne.SetOne().Neg(&minusOne)
	return e.Add(o.Scale(minusOne))
}

// Mul returns e * o.
func (e *Expression) Mul(o *Expression) *Expression {
	return &Expression{Op: OpProduct, Operands: []*Expression{e, o}}
}

// Scale returns c * e for a constant c.
func (e *Expression) Scale(c fr.Element) *Expression {
	return &Expression{Op: OpScaled, Constant: c, Operands: []*Expression{e}}
}

// Evaluator resolves column and selector queries at one row of the table.
type Evaluator interface {
	QueryCell(c Column, rot Rotation) fr.Element
	QuerySelector(s Selector) fr.Element
}

// Evaluate computes the value of the expression at the evaluator's row.
func (e *Expression) Evaluate(ev Evaluator) fr.Element {
	var res fr.Element
	switch e.Op {
	case OpConstant:
		res = e.Constant
	case OpQuery:
		res = ev.QueryCell(e.Col, e.Rotation)
	case OpSelector:
		res = ev.QuerySelector(e.Sel)
	case OpSum:
		for _, op := range e.Operands {
			t := op.Evaluate(ev)
			res.Add(&res, &t)
		}
	case OpProduct:
		res.SetOne()
		for _, op := range e.Operands {
			t := op.Evaluate(ev)
			res.Mul(&res, &t)
		}
	case OpScaled:
		res = e.Operands[0].Evaluate(ev)
		res.Mul(&res, &e.Constant)
	default:
		panic("constraint: malformed expression")
	}
	return res
}
