// Package plonkish provides a small PLONKish arithmetization layer — typed
// columns, selector-gated gate polynomials, lookup arguments and a
// region-based synthesis contract — together with a mock backend that
// checks satisfiability, and a gadget proving bitwise AND of fixed-width
// words through a spread-value lookup table.
//
// The circuit-facing API lives in frontend; structure declarations in
// constraint; the satisfiability-checking backend in backend/mock; the AND
// gadget in std/bitwise.
package plonkish
