package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the editor bindings.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	Channel     key.Binding
	Inc         key.Binding
	Dec         key.Binding
	IncLarge    key.Binding
	DecLarge    key.Binding
	NewColor    key.Binding
	DeleteColor key.Binding
	NewScale    key.Binding
	Curve       key.Binding
	Easing      key.Binding
	NewPalette  key.Binding
	NextPalette key.Binding
	Undo        key.Binding
	Redo        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev color")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next color")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev scale")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next scale")),
		Channel:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "channel")),
		Inc:         key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increase")),
		Dec:         key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "decrease")),
		IncLarge:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "increase ×10")),
		DecLarge:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "decrease ×10")),
		NewColor:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new color")),
		DeleteColor: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete color")),
		NewScale:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "new scale")),
		Curve:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "curve from scale")),
		Easing:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "cycle easing")),
		NewPalette:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "new palette")),
		NextPalette: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "next palette")),
		Undo:        key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:        key.NewBinding(key.WithKeys("r", "ctrl+y"), key.WithHelp("r", "redo")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Channel, k.Inc, k.Dec, k.Undo, k.Redo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Channel, k.Inc, k.Dec, k.IncLarge, k.DecLarge},
		{k.NewColor, k.DeleteColor, k.NewScale, k.Curve, k.Easing},
		{k.NewPalette, k.NextPalette, k.Undo, k.Redo, k.Quit},
	}
}
