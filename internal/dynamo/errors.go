package dynamo

import (
	"errors"
	"fmt"
)

var (
	// ErrAudioUnavailable indicates the output device could not be opened.
	ErrAudioUnavailable = errors.New("dynamo: audio device unavailable")

	// ErrUnknownScenario indicates a scenario name outside the script.
	ErrUnknownScenario = errors.New("dynamo: unknown scenario")

	// ErrInvalidFrames indicates a non-positive frame count.
	ErrInvalidFrames = errors.New("dynamo: frame count must be positive")

	// ErrCanceled indicates a headless run was interrupted.
	ErrCanceled = errors.New("dynamo: run canceled")
)

// FrameError wraps an error with the frame it happened on.
type FrameError struct {
	Frame   int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
