package main

import (
	"fmt"

	"procrand/internal/logger"
	"procrand/internal/quality"
	pcore "procrand/pkg/core"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSweepCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run bucket and bit balance checks over generators",
		Long: `Run a chi-square bucket test and a monobit test over every registered
generator (or those named with --gens) in parallel. Exits non-zero when any
generator fails. For example:
  procrand sweep --samples=1000000 --workers=4
  procrand sweep --gens=gear,trim --seed=99`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := v.GetStringSlice("sweep.gens")
			if len(names) == 0 {
				names = pcore.Names()
			}
			reports, err := quality.Sweep(cmd.Context(), quality.SweepConfig{
				Names:   names,
				Seed:    pcore.ParseSeed(v.GetString("seed")),
				Samples: v.GetInt("sweep.samples"),
				Buckets: v.GetInt("sweep.buckets"),
				Workers: v.GetInt("sweep.workers"),
			})
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range reports {
				fmt.Fprintln(cmd.OutOrStdout(), r)
				if !r.Pass() {
					failed++
					logger.Log().Warn().Str("gen", r.Name).Float64("chi_z", r.ChiZ()).Float64("monobit", r.Monobit).Msg("check failed")
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w (%d of %d)", errFailedChecks, failed, len(reports))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSlice("gens", nil, "generators to check (default all)")
	f.Int("samples", 200000, "outputs drawn per generator")
	f.Int("buckets", 256, "chi-square buckets")
	f.Int("workers", 0, "parallel workers (default number of CPUs)")
	bindFlags(v, cmd)
	return cmd
}
