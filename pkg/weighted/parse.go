package weighted

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWeights parses a comma separated list such as "1, 2, 0.5".
func ParseWeights(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrNoWeights
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for i, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("weighted: weight %d: %w", i, err)
		}
		out = append(out, w)
	}
	return out, nil
}
