package tui

import (
	"github.com/charmbracelet/bubbles/key"

	citationview "github.com/colonyops/citereader/internal/tui/views/citation"
)

// keyMap holds the app-level bindings and the tooltip's for help rendering.
type keyMap struct {
	tooltip     citationview.KeyMap
	CloseDrawer key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap(tooltip citationview.KeyMap) keyMap {
	return keyMap{
		tooltip: tooltip,
		CloseDrawer: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "close drawer"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.tooltip.ShortHelp(), k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.tooltip.FullHelp(), []key.Binding{k.CloseDrawer, k.Help, k.Quit})
}
