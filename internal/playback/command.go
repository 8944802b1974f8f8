package playback

import (
	"fmt"
	"strings"
)

// Command is one of the six user intents a controller understands.
type Command int

const (
	CmdTogglePlay Command = iota + 1
	CmdReset
	CmdSpeedUp
	CmdSpeedDown
	CmdRegenerate
	CmdQuit
)

var commandNames = map[Command]string{
	CmdTogglePlay: "toggle",
	CmdReset:      "reset",
	CmdSpeedUp:    "faster",
	CmdSpeedDown:  "slower",
	CmdRegenerate: "new",
	CmdQuit:       "quit",
}

var commandAliases = map[string]Command{
	"toggle":     CmdTogglePlay,
	"play":       CmdTogglePlay,
	"pause":      CmdTogglePlay,
	"reset":      CmdReset,
	"faster":     CmdSpeedUp,
	"up":         CmdSpeedUp,
	"slower":     CmdSpeedDown,
	"down":       CmdSpeedDown,
	"new":        CmdRegenerate,
	"regenerate": CmdRegenerate,
	"quit":       CmdQuit,
	"exit":       CmdQuit,
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand maps a command name such as "toggle" or "new" to a Command.
func ParseCommand(s string) (Command, error) {
	if c, ok := commandAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}
