package main

import (
	"errors"
	"fmt"
	"os"

	"procrand/internal/app"
	"procrand/internal/logger"
	_ "procrand/internal/views/bitstream"
	_ "procrand/internal/views/life"
	_ "procrand/internal/views/shuffle"
	_ "procrand/internal/views/weighted"
	_ "procrand/pkg/gens"

	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	if err := app.Run(cfg); err != nil {
		if errors.Is(err, app.ErrHeadless) {
			fmt.Fprintln(os.Stderr, "The procrand viewer requires the ebiten build tag.")
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/viz` or build with `-tags ebiten`.")
			os.Exit(2)
		}
		logger.Log().Fatal().Err(err).Msg("viewer failed")
	}
}
