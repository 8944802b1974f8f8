package playback

import "errors"

var (
	// ErrNoGenerator indicates CmdRegenerate on a controller built without
	// an input generator.
	ErrNoGenerator = errors.New("playback: no input generator configured")

	// ErrUnknownCommand indicates a command name ParseCommand does not know.
	ErrUnknownCommand = errors.New("playback: unknown command")
)
