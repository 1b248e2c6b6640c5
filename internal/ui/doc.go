// Package ui draws the viewer's parameter panel. It is only built with the
// ebiten tag.
package ui
