// Package playback replays a recorded [trace.Trace] under user control.
//
// A [Controller] owns a cursor into the trace, a play/pause flag and a
// per-step speed. Wall-clock time reaches it through [Controller.Tick];
// user intent reaches it as one of six [Command] values:
//
//	CmdTogglePlay  - Paused <-> Playing
//	CmdReset       - re-record the same input, rewind, pause
//	CmdSpeedUp     - shorten the step interval (tier bounded)
//	CmdSpeedDown   - lengthen the step interval (tier bounded)
//	CmdRegenerate  - draw a new input of the same size, then reset
//	CmdQuit        - reported back to the caller, no state change
//
// Running past the last snapshot clamps the cursor and pauses, so the
// cursor is always a valid index into the loaded trace.
//
// # Thread Safety
//
// Controller is NOT thread-safe. It is meant to be driven from a single
// polling loop such as a Bubble Tea Update function.
package playback
