package main

import (
	"bufio"
	"fmt"

	"procrand/pkg/weighted"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSampleCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw columns from a weighted table",
		Long: `Draw columns from an alias table built from --weights, feeding it the
selected generator. For example:
  procrand sample --weights=1,2,1 --count=5
  procrand sample --weights=70,25,5 --count=100000 --histogram`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := weighted.ParseWeights(v.GetString("sample.weights"))
			if err != nil {
				return err
			}
			table, err := weighted.New(weights)
			if err != nil {
				return err
			}
			g, err := generator(v)
			if err != nil {
				return err
			}
			count := v.GetInt("sample.count")
			if count < 0 {
				return errNegativeCount
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			if !v.GetBool("sample.histogram") {
				for i := 0; i < count; i++ {
					fmt.Fprintln(w, table.SampleFrom(g))
				}
				return w.Flush()
			}

			counts := make([]int, table.Size())
			for i := 0; i < count; i++ {
				counts[table.SampleFrom(g)]++
			}
			for i, c := range counts {
				freq := 0.0
				if count > 0 {
					freq = float64(c) / float64(count)
				}
				fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\n", i, c, freq, table.Probability(i))
			}
			return w.Flush()
		},
	}

	f := cmd.Flags()
	f.StringP("weights", "w", "1,1", "comma separated weights")
	f.IntP("count", "n", 10, "number of draws")
	f.Bool("histogram", false, "print column, count, frequency and expected probability instead of draws")
	bindFlags(v, cmd)
	return cmd
}
