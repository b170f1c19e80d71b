package core

import (
	"errors"
	"fmt"
)

// Contract violations raised by the grid and the simulators built on it.
var (
	// ErrEmptyGrid indicates a grid requested with a zero or negative dimension.
	ErrEmptyGrid = errors.New("core: grid dimensions must be positive")

	// ErrOutOfBounds indicates a coordinate outside [0,w) x [0,h).
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")

	// ErrFrameSize indicates a frame buffer that does not hold one RGBA
	// quadruple per cell.
	ErrFrameSize = errors.New("core: frame buffer size mismatch")
)

// BoundsError carries the offending coordinate of a bounds violation.
type BoundsError struct {
	X, Y int
	Size Size
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) not in %dx%d", ErrOutOfBounds, e.X, e.Y, e.Size.W, e.Size.H)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// FrameSizeError reports the expected and actual frame buffer lengths.
type FrameSizeError struct {
	Want, Got int
}

func (e *FrameSizeError) Error() string {
	return fmt.Sprintf("%v: want %d bytes, got %d", ErrFrameSize, e.Want, e.Got)
}

func (e *FrameSizeError) Unwrap() error { return ErrFrameSize }

// CheckFrame panics with a *FrameSizeError unless frame holds exactly four
// bytes per cell of a grid with the given size.
func CheckFrame(s Size, frame []byte) {
	if want := s.W * s.H * 4; len(frame) != want {
		panic(&FrameSizeError{Want: want, Got: len(frame)})
	}
}
