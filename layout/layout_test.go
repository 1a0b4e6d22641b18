package layout_test

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/consensys/plonkish/backend/mock"
	"github.com/consensys/plonkish/frontend"
	"github.com/consensys/plonkish/layout"
	"github.com/consensys/plonkish/std/bitwise"
)

func TestRender(t *testing.T) {
	require := require.New(t)

	circuit := &bitwise.AndCircuit{
		A: frontend.KnownUint64(7),
		B: frontend.KnownUint64(6),
	}
	p, err := mock.Run(5, circuit, [][]fr.Element{{fr.NewElement(6)}})
	require.NoError(err)

	var buf bytes.Buffer
	require.NoError(layout.Render(&buf, p))
	require.Contains(buf.String(), "circuit layout")
	require.Contains(buf.String(), "advice0")
}
