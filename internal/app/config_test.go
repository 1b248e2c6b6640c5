package app

import (
	"testing"

	_ "procrand/internal/views/life"
	pcore "procrand/pkg/core"
	_ "procrand/pkg/gens"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("viz", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--view=life", "--seed=meadow", "--scale=0", "--set", "w=20,h=10,gen=trim"}))

	require.NoError(t, cfg.Validate())
	require.Equal(t, 1, cfg.Scale)
	require.Equal(t, pcore.SeedFromString("meadow"), cfg.SeedValue())
	require.Equal(t, map[string]string{"w": "20", "h": "10", "gen": "trim"}, cfg.Set)

	v, err := cfg.NewView()
	require.NoError(t, err)
	require.Equal(t, "life", v.Name())
	require.Equal(t, 20, v.Size().W)
	require.Equal(t, 10, v.Size().H)
}

func TestValidateUnknownView(t *testing.T) {
	cfg := NewConfig()
	cfg.View = "volcano"
	require.Error(t, cfg.Validate())
	_, err := cfg.NewView()
	require.Error(t, err)
}
