package gui

import "context"

// runFrames calls frame until shouldClose reports true or ctx is canceled,
// and returns the number of frames run. Both are checked before each frame.
func runFrames(ctx context.Context, shouldClose func() bool, frame func()) int {
	n := 0
	for !shouldClose() && ctx.Err() == nil {
		frame()
		n++
	}
	return n
}
