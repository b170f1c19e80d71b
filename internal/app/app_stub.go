//go:build !ebiten

package app

import (
	"errors"

	"crabs/internal/sims/crabs"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("app: window host requires building with the 'ebiten' tag (go run -tags ebiten ./cmd/crabs window)")

// Run reports that the window host is unavailable in headless builds.
func Run(*crabs.World, Options) error {
	return ErrNoWindow
}
