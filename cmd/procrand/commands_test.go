package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(viper.New())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Fields(s)
}

func ints(t *testing.T, s string) []int {
	t.Helper()
	var out []int
	for _, f := range lines(s) {
		n, err := strconv.Atoi(f)
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"fourwheel", "gear", "trim", "stranger", "diver", "moonwalk", "lowstorage", "swapornot"} {
		require.Contains(t, out, name)
	}
}

func TestStreamKnownValues(t *testing.T) {
	out, _, err := run(t, "stream", "--gen=fourwheel", "--seed=42", "--count=3")
	require.NoError(t, err)
	require.Equal(t, []string{"d831507ae6b4e901", "6c2e61d4603c2bb0", "d6028b7e6b9239c9"}, lines(out))
}

func TestStreamBits(t *testing.T) {
	out, _, err := run(t, "stream", "-g", "gear", "--format=bits", "--bits=4", "-n", "200")
	require.NoError(t, err)
	vals := ints(t, out)
	require.Len(t, vals, 200)
	for _, v := range vals {
		require.True(t, v >= 0 && v < 16, "value %d", v)
	}
}

func TestStreamErrors(t *testing.T) {
	_, _, err := run(t, "stream", "--format=octal")
	require.ErrorIs(t, err, errUnknownFormat)

	_, _, err = run(t, "stream", "--count=-1")
	require.ErrorIs(t, err, errNegativeCount)

	_, _, err = run(t, "stream", "--gen=nope")
	require.Error(t, err)
}

func TestStreamResume(t *testing.T) {
	full, _, err := run(t, "stream", "--gen=stranger", "--seed=dungeon", "--count=5")
	require.NoError(t, err)

	head, state, err := run(t, "stream", "--gen=stranger", "--seed=dungeon", "--count=2", "--print-state")
	require.NoError(t, err)
	require.Equal(t, lines(full)[:2], lines(head))
	require.True(t, strings.HasPrefix(state, "stranger:"), state)

	tail, _, err := run(t, "stream", "--state="+strings.TrimSpace(state), "--count=3")
	require.NoError(t, err)
	require.Equal(t, lines(full)[2:], lines(tail))
}

func TestShufflePermutation(t *testing.T) {
	for _, kind := range []string{"lowstorage", "swapornot"} {
		out, _, err := run(t, "shuffle", "--kind="+kind, "--bound=10", "--seed=12345")
		require.NoError(t, err)
		got := ints(t, out)
		require.Len(t, got, 10)

		back, _, err := run(t, "shuffle", "--kind="+kind, "--bound=10", "--seed=12345", "--reverse")
		require.NoError(t, err)
		rev := ints(t, back)
		for i := range got {
			require.Equal(t, got[i], rev[len(rev)-1-i])
		}

		sort.Ints(got)
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	}
}

func TestShuffleBeyondBound(t *testing.T) {
	out, _, err := run(t, "shuffle", "--bound=6", "--count=18")
	require.NoError(t, err)
	got := ints(t, out)
	require.Len(t, got, 18)
	for b := 0; b < 3; b++ {
		block := append([]int(nil), got[b*6:(b+1)*6]...)
		sort.Ints(block)
		require.Equal(t, []int{0, 1, 2, 3, 4, 5}, block)
	}

	_, _, err = run(t, "shuffle", "--kind=riffle")
	require.Error(t, err)
}

func TestSample(t *testing.T) {
	out, _, err := run(t, "sample", "--weights=1,0,1", "--count=1000", "--seed=7")
	require.NoError(t, err)
	vals := ints(t, out)
	require.Len(t, vals, 1000)
	for _, v := range vals {
		require.NotEqual(t, 1, v)
		require.True(t, v == 0 || v == 2)
	}

	out, _, err = run(t, "sample", "--weights=1,2,1", "--count=10000", "--histogram")
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, rows, 3)
	require.True(t, strings.HasPrefix(rows[1], "1\t"))
	require.True(t, strings.HasSuffix(rows[1], "\t0.5000"))

	_, _, err = run(t, "sample", "--weights=")
	require.Error(t, err)
	_, _, err = run(t, "sample", "--weights=0,0")
	require.Error(t, err)
}

func TestSnapshotSaveAndShow(t *testing.T) {
	text, _, err := run(t, "snapshot", "save", "--gen=trim", "--seed=3", "--skip=4")
	require.NoError(t, err)
	_, state, err := run(t, "stream", "--gen=trim", "--seed=3", "--count=4", "--print-state")
	require.NoError(t, err)
	require.Equal(t, strings.TrimSpace(state), strings.TrimSpace(text))

	file := filepath.Join(t.TempDir(), "session.cbor")
	_, _, err = run(t, "snapshot", "save", "--gen=trim", "--seed=3", "--skip=4", "--bound=52", file)
	require.NoError(t, err)

	shown, _, err := run(t, "snapshot", "show", file)
	require.NoError(t, err)
	require.Contains(t, shown, strings.TrimSpace(text))
	require.Contains(t, shown, "lowstorage bound=52")
	require.Contains(t, shown, "position=4")

	_, _, err = run(t, "snapshot", "show", filepath.Join(t.TempDir(), "missing.cbor"))
	require.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, _, err := run(t, "sweep", "--gens=gear,trim", "--samples=20000", "--buckets=64", "--workers=2")
	require.NoError(t, err)
	require.Contains(t, out, "gear")
	require.Contains(t, out, "trim")
	require.NotContains(t, out, "moonwalk")

	_, _, err = run(t, "sweep", "--gens=nope", "--samples=10")
	require.Error(t, err)
}

func TestEnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("PROCRAND_STREAM_COUNT", "2")
	out, _, err := run(t, "stream")
	require.NoError(t, err)
	require.Len(t, lines(out), 2)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "procrand.yaml")
	require.NoError(t, os.WriteFile(file, []byte("gen: moonwalk\nseed: \"42\"\n"), 0o644))

	out, _, err := run(t, "stream", "--config="+file, "--count=1")
	require.NoError(t, err)
	require.Equal(t, []string{"bdd732262feb6e95"}, lines(out))

	_, _, err = run(t, "stream", "--config="+filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
