package snapshot

import (
	"errors"
	"testing"

	"procrand/internal/gentest"
	"procrand/pkg/core"
	_ "procrand/pkg/gens"
	"procrand/pkg/gens/fourwheel"
	"procrand/pkg/gens/stranger"
	"procrand/pkg/shuffle"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGeneratorRoundTrip(t *testing.T) {
	for _, name := range core.Names() {
		g, err := core.New(name, 2718)
		require.NoError(t, err)
		gentest.Take(g, 41)

		data, err := Marshal(Capture(g))
		require.NoError(t, err)

		var s Generator
		require.NoError(t, Unmarshal(data, &s))
		r, err := s.Restore()
		require.NoError(t, err)
		require.Equal(t, gentest.Take(g, 500), gentest.Take(r, 500), name)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	sess := Session{
		Generators: []Generator{Capture(fourwheel.New(1)), Capture(stranger.New(2))},
		Shufflers:  []shuffle.State{shuffle.NewLowStorage(40, 3).State()},
	}
	a, err := Marshal(sess)
	require.NoError(t, err)
	b, err := Marshal(sess)
	require.NoError(t, err)
	require.Equal(t, a, b)

	var back Session
	require.NoError(t, Unmarshal(a, &back))
	if diff := cmp.Diff(sess, back); diff != "" {
		t.Fatalf("session changed in round trip (-want +got):\n%s", diff)
	}
}

func TestShufflerRoundTrip(t *testing.T) {
	for _, kind := range shuffle.Kinds() {
		s, err := shuffle.New(kind, 500, 8)
		require.NoError(t, err)
		for i := 0; i < 77; i++ {
			s.Next()
		}
		data, err := Marshal(s.State())
		require.NoError(t, err)

		var st shuffle.State
		require.NoError(t, Unmarshal(data, &st))
		r, err := RestoreShuffler(st)
		require.NoError(t, err)
		for i := 0; i < 500; i++ {
			a, aok := s.Next()
			b, bok := r.Next()
			require.Equal(t, aok, bok)
			require.Equal(t, a, b)
		}
	}
}

func TestUnknownKinds(t *testing.T) {
	_, err := RestoreShuffler(shuffle.State{Kind: "riffle", Bound: 3})
	require.True(t, errors.Is(err, ErrUnknownKind))

	_, err = Generator{Name: "nope"}.Restore()
	require.True(t, errors.Is(err, core.ErrUnknownSource))
}

func TestCorrupt(t *testing.T) {
	var s Generator
	err := Unmarshal([]byte{0xFF, 0x00, 0x13}, &s)
	require.True(t, errors.Is(err, ErrCorrupt))

	// Unknown fields are rejected rather than silently dropped.
	data, err := Marshal(map[int]any{1: "gear", 2: []uint64{1, 2}, 9: true})
	require.NoError(t, err)
	err = Unmarshal(data, &s)
	require.True(t, errors.Is(err, ErrCorrupt))
}

func TestText(t *testing.T) {
	g := fourwheel.NewWithState(1, 0xABCDEF, 0, 0xFFFFFFFFFFFFFFFF)
	text := Text(Capture(g))
	require.Equal(t, "fourwheel:1,abcdef,0,ffffffffffffffff", text)

	s, err := ParseText(text)
	require.NoError(t, err)
	r, err := s.Restore()
	require.NoError(t, err)
	require.Equal(t, g.State(), r.State())

	s, err = ParseText("  diver:  FF ")
	require.NoError(t, err)
	require.Equal(t, Generator{Name: "diver", State: []uint64{0xFF}}, s)

	s, err = ParseText("moonwalk:")
	require.NoError(t, err)
	require.Empty(t, s.State)
}

func TestParseTextErrors(t *testing.T) {
	for _, text := range []string{"", "fourwheel", ":1,2", "gear:zz", "gear:1,,2", "gear:10000000000000000"} {
		_, err := ParseText(text)
		require.True(t, errors.Is(err, ErrCorrupt), "input %q", text)
	}
}
