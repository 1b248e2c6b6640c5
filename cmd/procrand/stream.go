package main

import (
	"bufio"
	"fmt"

	pcore "procrand/pkg/core"
	"procrand/pkg/snapshot"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newStreamCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Print generator output",
		Long: `Print generator output, one value per line. For example:
  procrand stream --gen=gear --seed=7 --count=3
  procrand stream --format=bits --bits=6 --count=20
  procrand stream --state=moonwalk:2a --count=3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				g   pcore.Stateful
				err error
			)
			if state := v.GetString("stream.state"); state != "" {
				snap, perr := snapshot.ParseText(state)
				if perr != nil {
					return perr
				}
				g, err = snap.Restore()
			} else {
				g, err = generator(v)
			}
			if err != nil {
				return err
			}

			count := v.GetInt("stream.count")
			if count < 0 {
				return errNegativeCount
			}
			emit, err := formatter(v.GetString("stream.format"), g, v.GetInt("stream.bits"))
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < count; i++ {
				fmt.Fprintln(w, emit())
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if v.GetBool("stream.print-state") {
				fmt.Fprintln(cmd.ErrOrStderr(), snapshot.Text(snapshot.Capture(g)))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntP("count", "n", 10, "number of values to print")
	f.String("format", "hex", "output format: hex, dec, bits or float")
	f.Int("bits", 32, "bits per value for --format=bits (1-32)")
	f.String("state", "", "resume from a generator state such as gear:1f,2b (overrides --gen and --seed)")
	f.Bool("print-state", false, "print the final generator state to stderr")
	bindFlags(v, cmd)
	return cmd
}

func formatter(format string, g pcore.Stateful, bits int) (func() string, error) {
	switch format {
	case "hex":
		return func() string { return fmt.Sprintf("%016x", g.Uint64()) }, nil
	case "dec":
		return func() string { return fmt.Sprint(g.Uint64()) }, nil
	case "bits":
		return func() string { return fmt.Sprint(g.Bits(bits)) }, nil
	case "float":
		rng := pcore.NewRNG(g)
		return func() string { return fmt.Sprintf("%.17g", rng.Float64()) }, nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownFormat, format)
}
