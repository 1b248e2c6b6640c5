//go:build !ebiten

package app

import (
	"errors"
	"testing"
)

func TestRunHeadless(t *testing.T) {
	if err := Run(NewConfig()); !errors.Is(err, ErrHeadless) {
		t.Fatalf("Run() = %v, want ErrHeadless", err)
	}
}
