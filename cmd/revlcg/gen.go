package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sp301415/revlcg/num"
	"github.com/sp301415/revlcg/rlcg"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a run of outputs",
	Long: `Generate a run of pseudo-random outputs, For example:
  revlcg gen --seed=42 --count=5
  revlcg gen --seed=42 --count=5 --direction=backward`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var dir rlcg.Direction
		switch direction {
		case "forward":
			dir = rlcg.Forward
		case "backward":
			dir = rlcg.Backward
		default:
			return fmt.Errorf("direction must be \"forward\" or \"backward\", got %q", direction)
		}
		if !num.IsPowerOfTwo(modulus) {
			return fmt.Errorf("modulus %d is not a power of two", modulus)
		}
		if discard < 0 || discard > 63 {
			return fmt.Errorf("discard bits %d out of range [0, 63]", discard)
		}
		if count < 0 {
			return fmt.Errorf("count must not be negative")
		}

		params := rlcg.ParametersLiteral{M: modulus, A: mult, C: incr, D: discard}.Compile()
		g := rlcg.NewGenerator(params, seed)

		out := make([]uint64, count)
		g.SampleDirectionSliceAssign(dir, out)
		for _, v := range out {
			fmt.Println(v)
		}
		return nil
	},
}

var (
	count     int
	direction string
)

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.IntVarP(&count, "count", "n", 10, "number of outputs")
	flags.StringVarP(&direction, "direction", "D", "forward", "walk direction (forward or backward)")
}
