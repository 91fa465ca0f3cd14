// Package viz draws the four-panel airbag demonstration in a terminal.
//
// [Terminal] implements scene.Renderer on braille [Canvas] grids, one per
// panel, and [Model] is the Bubble Tea program that steps the simulation
// once per tick.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	Q/Esc - Quit
package viz
