// bitand checks the bitwise AND circuit on the mock backend: it proves
// that a AND b equals the claimed public value, and can render the circuit
// floor plan to an HTML file.
package main

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"

	"github.com/consensys/plonkish/backend/mock"
	"github.com/consensys/plonkish/frontend"
	"github.com/consensys/plonkish/layout"
	"github.com/consensys/plonkish/logger"
	"github.com/consensys/plonkish/std/bitwise"
)

var (
	wordA      uint64
	wordB      uint64
	sizeK      int
	layoutFile string
)

func init() {
	bitandCmd.Flags().Uint64Var(&wordA, "a", 0, "first private word")
	bitandCmd.Flags().Uint64Var(&wordB, "b", 0, "second private word")
	bitandCmd.Flags().IntVar(&sizeK, "k", 5, "circuit size parameter; the table has 2^k rows")
	bitandCmd.Flags().StringVar(&layoutFile, "layout", "", "write the circuit floor plan to this HTML file")
}

var bitandCmd = &cobra.Command{
	Use:   "bitand",
	Short: "Check a zero-knowledge bitwise AND circuit on the mock backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Logger()

		max := uint64(1) << bitwise.WordBits
		if wordA >= max || wordB >= max {
			return fmt.Errorf("inputs must be %d-bit words", bitwise.WordBits)
		}

		circuit := &bitwise.AndCircuit{
			A: frontend.KnownUint64(wordA),
			B: frontend.KnownUint64(wordB),
		}
		public := []fr.Element{fr.NewElement(wordA & wordB)}

		prover, err := mock.Run(sizeK, circuit, [][]fr.Element{public})
		if err != nil {
			return err
		}
		if err := prover.Verify(); err != nil {
			return err
		}
		log.Info().Uint64("and", wordA&wordB).Int("k", sizeK).Msg("constraints satisfied")

		if layoutFile != "" {
			if err := layout.WriteFile(layoutFile, prover); err != nil {
				return err
			}
			log.Info().Str("path", layoutFile).Msg("layout written")
		}
		return nil
	},
}

func main() {
	if err := bitandCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
