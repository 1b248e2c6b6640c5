// Package snapshot saves and restores generator and shuffler state so a
// generation session can be resumed. Binary snapshots are deterministic CBOR;
// generators also have a short text form, "name:hex,hex,...".
package snapshot

import (
	"fmt"
	"strconv"
	"strings"

	"procrand/pkg/core"
	"procrand/pkg/shuffle"

	"github.com/fxamacker/cbor/v2"
)

// Generator is the persisted form of a generator: its registry name and its
// registers.
type Generator struct {
	Name  string   `cbor:"1,keyasint" json:"name"`
	State []uint64 `cbor:"2,keyasint" json:"state"`
}

// Session bundles the generators and shufflers of one generation run.
type Session struct {
	Generators []Generator     `cbor:"1,keyasint,omitempty" json:"generators,omitempty"`
	Shufflers  []shuffle.State `cbor:"2,keyasint,omitempty" json:"shufflers,omitempty"`
}

// Capture records g.
func Capture(g core.Stateful) Generator {
	return Generator{Name: g.Name(), State: g.State()}
}

// Restore rebuilds the generator through the registry. The generator's
// package must have been imported.
func (s Generator) Restore() (core.Stateful, error) {
	g, err := core.Restore(s.Name, s.State)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return g, nil
}

// RestoreShuffler rebuilds a shuffler from st.
func RestoreShuffler(st shuffle.State) (shuffle.Indexer, error) {
	ix, err := shuffle.FromState(st)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return ix, nil
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		// Static options; this cannot fail.
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Marshal encodes v as deterministic CBOR: equal values always give equal
// bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR produced by Marshal into v. Decode failures wrap
// ErrCorrupt.
func Unmarshal(data []byte, v any) error {
	if err := decMode.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

// Text formats s as "name:hex,hex,...".
func Text(s Generator) string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte(':')
	for i, w := range s.State {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(w, 16))
	}
	return b.String()
}

// ParseText parses the form produced by Text.
func ParseText(text string) (Generator, error) {
	name, words, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok || name == "" {
		return Generator{}, fmt.Errorf("%w: missing generator name in %q", ErrCorrupt, text)
	}
	s := Generator{Name: name}
	if words == "" {
		return s, nil
	}
	for _, w := range strings.Split(words, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(w), 16, 64)
		if err != nil {
			return Generator{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		s.State = append(s.State, v)
	}
	return s, nil
}
