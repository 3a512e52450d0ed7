// Package viz renders the seesaw in the terminal.
//
// The plank, pivot and objects are drawn on a braille [Canvas] where every
// terminal cell holds 2x4 sub-pixels. Mouse cells are mapped back into that
// sub-pixel space and projected onto the tilted plank, so hovering and
// clicking behave like they do in the window front end.
//
// # Key Bindings
//
//	Mouse   - Preview and drop
//	←/→     - Aim the keyboard cursor
//	Space   - Drop at the cursor
//	R       - Reset the plank
//	T       - Cycle color themes
//	?       - Show help
//	Q       - Quit
package viz
