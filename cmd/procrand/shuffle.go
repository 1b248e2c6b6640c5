package main

import (
	"bufio"
	"fmt"

	pcore "procrand/pkg/core"
	"procrand/pkg/shuffle"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newShuffleCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Print a seeded permutation of [0, bound)",
		Long: `Print a seeded permutation of [0, bound), one index per line. With --count
larger than the bound the permutation is followed by fresh ones. For example:
  procrand shuffle --bound=10 --seed=12345
  procrand shuffle --kind=swapornot --bound=1000000 --count=5
  procrand shuffle --bound=52 --count=104 --reverse`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := shuffle.Kind(v.GetString("shuffle.kind"))
			bound := v.GetInt("shuffle.bound")
			ix, err := shuffle.New(kind, bound, pcore.ParseSeed(v.GetString("seed")))
			if err != nil {
				return err
			}
			count := v.GetInt("shuffle.count")
			if count < 0 {
				count = ix.Bound()
			}

			reverse := v.GetBool("shuffle.reverse")
			if reverse {
				ix.ToEnd()
			}
			walk := shuffle.NewInfinite(ix)
			step := walk.Next
			if reverse {
				step = walk.Previous
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < count; i++ {
				fmt.Fprintln(w, step())
			}
			return w.Flush()
		},
	}

	f := cmd.Flags()
	f.String("kind", string(shuffle.KindLowStorage), "shuffler kind: lowstorage or swapornot")
	f.IntP("bound", "b", 10, "exclusive upper bound of the indices")
	f.IntP("count", "n", -1, "number of indices to print (default one full permutation)")
	f.Bool("reverse", false, "walk the permutation from its end")
	bindFlags(v, cmd)
	return cmd
}
