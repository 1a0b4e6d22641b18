package frontend

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Value is a witness value that may be absent. A circuit is synthesized
// twice per proof lifecycle: once without witnesses to fix the structure,
// and once with witnesses to produce assignments. Gadget code threads
// Values through both passes without branching on the pass kind.
type Value struct {
	v     fr.Element
	known bool
}

// Known wraps a concrete witness value.
func Known(v fr.Element) Value {
	return Value{v: v, known: true}
}

// KnownUint64 wraps a small integer witness value.
func KnownUint64(v uint64) Value {
	return Value{v: fr.NewElement(v), known: true}
}

// Unknown returns an absent witness, as used during the structural pass.
func Unknown() Value {
	return Value{}
}

// IsKnown reports whether the value is present.
func (v Value) IsKnown() bool {
	return v.known
}

// Get returns the inner field element and whether it is present.
func (v Value) Get() (fr.Element, bool) {
	return v.v, v.known
}

// Add returns the sum of two values; the result is unknown if either
// operand is.
func (v Value) Add(o Value) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	var r fr.Element
	r.Add(&v.v, &o.v)
	return Known(r)
}

// Map applies f to the inner value; unknown maps to unknown.
func (v Value) Map(f func(fr.Element) fr.Element) Value {
	if !v.known {
		return Unknown()
	}
	return Known(f(v.v))
}

// Combine applies f to two values; the result is unknown if either
// operand is.
func Combine(a, b Value, f func(x, y fr.Element) fr.Element) Value {
	if !a.known || !b.known {
		return Unknown()
	}
	return Known(f(a.v, b.v))
}
