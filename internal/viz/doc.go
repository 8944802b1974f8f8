// Package viz provides the terminal front end for merge sort playback.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: reads the controller's current snapshot each frame
//   - [BarChart]: block-character bars with sub-cell height
//   - Five built-in colour themes
//
// # Key Bindings
//
//	Space   - Play/Pause
//	R       - Reset to the first step
//	Up/K    - Faster
//	Down/J  - Slower
//	N       - New random array of the same size
//	Esc/Q   - Exit
//
// # Colours
//
// Bars in the left half of a merge are drawn in the theme's Left colour,
// the right half in Right, and finalized ranges in Sorted. Sorted wins
// over Left, which wins over Right.
package viz
