package constraint

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnAllocation(t *testing.T) {
	assert := assert.New(t)
	var s System

	a0 := s.AdviceColumn()
	a1 := s.AdviceColumn()
	i0 := s.InstanceColumn()
	f0 := s.FixedColumn()
	t0 := s.LookupTableColumn()

	assert.Equal(Column{Kind: ColumnAdvice, Index: 0}, a0)
	assert.Equal(Column{Kind: ColumnAdvice, Index: 1}, a1)
	assert.Equal(Column{Kind: ColumnInstance, Index: 0}, i0)
	assert.Equal(Column{Kind: ColumnFixed, Index: 0}, f0)
	assert.Equal(Column{Kind: ColumnTable, Index: 0}, t0)
	assert.Equal(2, s.NbAdvice)

	s0 := s.Selector()
	s1 := s.Selector()
	assert.Equal(0, s0.Index)
	assert.Equal(1, s1.Index)
}

func TestEnableEquality(t *testing.T) {
	assert := assert.New(t)
	var s System

	a := s.AdviceColumn()
	b := s.AdviceColumn()
	s.EnableEquality(a)
	s.EnableEquality(a) // no-op
	assert.Len(s.Equality, 1)
	assert.True(s.CanCopy(a))
	assert.False(s.CanCopy(b))

	tbl := s.LookupTableColumn()
	assert.Panics(func() { s.EnableEquality(tbl) })
}

func TestEnableConstant(t *testing.T) {
	var s System
	f := s.FixedColumn()
	s.EnableConstant(f)
	s.EnableConstant(f)
	assert.Len(t, s.Constants, 1)

	a := s.AdviceColumn()
	assert.Panics(t, func() { s.EnableConstant(a) })
}

func TestDeclarationMisuse(t *testing.T) {
	var s System
	a := s.AdviceColumn()
	tbl := s.LookupTableColumn()

	assert.Panics(t, func() { s.CreateGate("empty") })
	assert.Panics(t, func() { s.AddLookup("bad", a, Query(a, CurRow)) })
	assert.Panics(t, func() { s.AddLookup("empty", tbl) })
	assert.Panics(t, func() { Query(tbl, CurRow) })
}

// stubEvaluator maps advice column i at rotation r to fixed test values.
type stubEvaluator struct {
	cells     map[Column]map[Rotation]fr.Element
	selectors map[Selector]bool
}

func (e stubEvaluator) QueryCell(c Column, rot Rotation) fr.Element {
	return e.cells[c][rot]
}

func (e stubEvaluator) QuerySelector(s Selector) fr.Element {
	if e.selectors[s] {
		return fr.One()
	}
	var zero fr.Element
	return zero
}

func TestExpressionEvaluate(t *testing.T) {
	assert := assert.New(t)
	var s System
	a := s.AdviceColumn()
	b := s.AdviceColumn()
	sel := s.Selector()

	ev := stubEvaluator{
		cells: map[Column]map[Rotation]fr.Element{
			a: {CurRow: fr.NewElement(3), NextRow: fr.NewElement(13)},
			b: {CurRow: fr.NewElement(5)},
		},
		selectors: map[Selector]bool{sel: true},
	}

	lhs := Query(a, CurRow)
	rhs := Query(b, CurRow)
	out := Query(a, NextRow)

	// 3 + 5*2 - 13 == 0
	poly := QuerySelector(sel).Mul(lhs.Add(rhs.Scale(fr.NewElement(2))).Sub(out))
	v := poly.Evaluate(ev)
	assert.True(v.IsZero())

	// 3 + 5 - 13 == -5
	var want fr.Element
	want.SetInt64(-5)
	v = lhs.Add(rhs).Sub(out).Evaluate(ev)
	assert.True(v.Equal(&want))

	// selector off zeroes the whole gate
	ev.selectors[sel] = false
	v = QuerySelector(sel).Mul(lhs.Add(rhs)).Evaluate(ev)
	assert.True(v.IsZero())

	// product and constant
	v = lhs.Mul(rhs).Evaluate(ev)
	want = fr.NewElement(15)
	assert.True(v.Equal(&want))
	v = NewConstant(fr.NewElement(42)).Evaluate(ev)
	want = fr.NewElement(42)
	assert.True(v.Equal(&want))
}

func buildTestSystem() *System {
	var s System
	a := s.AdviceColumn()
	b := s.AdviceColumn()
	s.EnableEquality(a)
	s.EnableEquality(b)
	sel := s.Selector()
	tbl := s.LookupTableColumn()

	lhs := Query(a, CurRow)
	rhs := Query(b, CurRow)
	out := Query(a, NextRow)
	s.CreateGate("add", QuerySelector(sel).Mul(lhs.Add(rhs).Sub(out)))
	s.AddLookup("membership", tbl, QuerySelector(sel).Mul(lhs))
	return &s
}

func TestMarshalRoundTrip(t *testing.T) {
	require := require.New(t)

	s := buildTestSystem()
	data, err := s.ToBytes()
	require.NoError(err)

	var back System
	require.NoError(back.FromBytes(data))
	data2, err := back.ToBytes()
	require.NoError(err)
	require.Equal(data, data2)
}

func TestMarshalDeterministic(t *testing.T) {
	require := require.New(t)

	d1, err := buildTestSystem().ToBytes()
	require.NoError(err)
	d2, err := buildTestSystem().ToBytes()
	require.NoError(err)
	require.Equal(d1, d2)
}
