package viz

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/playback"
)

type keyMap struct {
	Toggle  key.Binding
	Reset   key.Binding
	Faster  key.Binding
	Slower  key.Binding
	NewData key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "play/pause")),
	Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Faster:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "faster")),
	Slower:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "slower")),
	NewData: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new array")),
	Quit:    key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "exit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Faster, k.Slower, k.NewData, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// commandFor translates a key press into a controller command.
func (k keyMap) commandFor(msg tea.KeyMsg) (playback.Command, bool) {
	switch {
	case key.Matches(msg, k.Toggle):
		return playback.CmdTogglePlay, true
	case key.Matches(msg, k.Reset):
		return playback.CmdReset, true
	case key.Matches(msg, k.Faster):
		return playback.CmdSpeedUp, true
	case key.Matches(msg, k.Slower):
		return playback.CmdSpeedDown, true
	case key.Matches(msg, k.NewData):
		return playback.CmdRegenerate, true
	case key.Matches(msg, k.Quit):
		return playback.CmdQuit, true
	}
	return 0, false
}
