package bitwise

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/plonkish/frontend"
)

// alternating bit masks over the full field element width
var evenBitsMask, oddBitsMask big.Int

func init() {
	b := make([]byte, fr.Bytes)
	for i := range b {
		b[i] = 0x55
	}
	evenBitsMask.SetBytes(b)
	for i := range b {
		b[i] = 0xaa
	}
	oddBitsMask.SetBytes(b)
}

// splitElement splits v into its even-position bits, kept in place, and its
// odd-position bits, shifted down by one.
func splitElement(v fr.Element) (even, odd fr.Element) {
	var x, e, o big.Int
	v.BigInt(&x)
	e.And(&x, &evenBitsMask)
	o.And(&x, &oddBitsMask)
	o.Rsh(&o, 1)
	even.SetBigInt(&e)
	odd.SetBigInt(&o)
	return even, odd
}

// splitValue lifts splitElement to possibly-absent witness values.
func splitValue(v frontend.Value) (frontend.Value, frontend.Value) {
	x, ok := v.Get()
	if !ok {
		return frontend.Unknown(), frontend.Unknown()
	}
	e, o := splitElement(x)
	return frontend.Known(e), frontend.Known(o)
}
