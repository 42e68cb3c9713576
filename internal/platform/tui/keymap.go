package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the key bindings for a game session.
// Every logical game key has its own binding so priorities between the
// letter and arrow keys are resolved by the game, not here.
type KeyMap struct {
	A          key.Binding
	D          key.Binding
	W          key.Binding
	S          key.Binding
	ArrowLeft  key.Binding
	ArrowRight key.Binding
	ArrowUp    key.Binding
	ArrowDown  key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		A:          key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "left")),
		D:          key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "right")),
		W:          key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w/a/s/d", "move")),
		S:          key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "down")),
		ArrowLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		ArrowRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		ArrowUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "move")),
		ArrowDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.W, k.ArrowUp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.W, k.A, k.S, k.D},
		{k.ArrowUp, k.ArrowLeft, k.ArrowDown, k.ArrowRight},
		{k.Screenshot, k.Quit},
	}
}

// Logical translates a key message to the game key it presses.
// Returns core.KeyNone for keys the game does not use.
func (k KeyMap) Logical(msg tea.KeyMsg) core.Key {
	pairs := []struct {
		binding key.Binding
		key     core.Key
	}{
		{k.A, core.KeyA},
		{k.D, core.KeyD},
		{k.W, core.KeyW},
		{k.S, core.KeyS},
		{k.ArrowLeft, core.KeyArrowLeft},
		{k.ArrowRight, core.KeyArrowRight},
		{k.ArrowUp, core.KeyArrowUp},
		{k.ArrowDown, core.KeyArrowDown},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.binding) {
			return p.key
		}
	}
	return core.KeyNone
}
