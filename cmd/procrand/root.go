package main

import (
	"os"
	"strings"

	"procrand/internal/logger"
	pcore "procrand/pkg/core"
	_ "procrand/pkg/gens"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		logger.Log().Error().Err(err).Msg("procrand")
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Settings resolve through v in the
// order flag, PROCRAND_* environment variable, config file, default.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "procrand",
		Short: "Seeded generators, weighted tables and index shufflers.",
		Long: `Seeded generators, weighted tables and index shufflers for procedural content.
For example:
  procrand stream --gen=gear --seed=dungeon --count=5
  procrand shuffle --bound=52 --seed=42
  procrand sample --weights=1,2,1 --count=10000 --histogram
  procrand sweep --samples=1000000`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			return logger.SetLevel(v.GetString("log-level"))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.procrand.yaml)")
	pf.StringP("gen", "g", "fourwheel", "generator name, see `procrand list`")
	pf.StringP("seed", "s", "0", "seed, as a number or any string to hash")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = v.BindPFlags(pf)

	root.AddCommand(
		newListCmd(),
		newStreamCmd(v),
		newShuffleCmd(v),
		newSampleCmd(v),
		newSnapshotCmd(v),
		newSweepCmd(v),
	)
	return root
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("procrand")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigName(".procrand")
	}

	if err := v.ReadInConfig(); err == nil {
		logger.Log().Debug().Str("file", v.ConfigFileUsed()).Msg("using config file")
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
		return err
	}
	return nil
}

// bindFlags binds the local flags of cmd under "<command>.<flag>", so that
// for example stream --count can also come from PROCRAND_STREAM_COUNT.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(cmd.Name()+"."+f.Name, f)
	})
}

// generator builds the generator selected by the gen and seed settings.
func generator(v *viper.Viper) (pcore.Stateful, error) {
	return pcore.New(v.GetString("gen"), pcore.ParseSeed(v.GetString("seed")))
}
