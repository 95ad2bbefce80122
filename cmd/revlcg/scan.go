package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sp301415/revlcg/num"
	"github.com/sp301415/revlcg/rlcg"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the state orbit of a small-modulus parameter set",
	Long: `Walk a small-modulus parameter set until a state repeats, reporting the
orbit length. Full-period parameters close their orbit after exactly
<modulus> steps, For example:
  revlcg scan --modulus=65536 --mult=5 --incr=3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !num.IsPowerOfTwo(modulus) {
			return fmt.Errorf("modulus %d is not a power of two", modulus)
		}
		if modulus == 0 || modulus > 1<<32 {
			return fmt.Errorf("modulus %d too large to scan (max 2^32)", modulus)
		}
		if discard < 0 || discard > 63 {
			return fmt.Errorf("discard bits %d out of range [0, 63]", discard)
		}

		params := rlcg.ParametersLiteral{M: modulus, A: mult, C: incr, D: discard}.Compile()

		steps, closed := rlcg.OrbitLength(params, seed, scanLimit)
		if !closed {
			fmt.Printf("no repeat within %d steps\n", steps)
			return nil
		}

		fmt.Printf("orbit closed after %d steps (modulus %d)\n", steps, modulus)
		if steps == modulus {
			fmt.Println("full period")
		}
		return nil
	},
}

var scanLimit uint64

func init() {
	rootCmd.AddCommand(scanCmd)

	flags := scanCmd.Flags()
	flags.Uint64VarP(&scanLimit, "limit", "l", 1<<32, "maximum steps to scan")
}
