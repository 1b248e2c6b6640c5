//go:build !ebiten

package app

// Run always fails with ErrHeadless: this build has no window system.
func Run(*Config) error {
	return ErrHeadless
}
