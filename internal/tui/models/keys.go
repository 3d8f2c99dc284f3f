package models

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the preview key bindings. It implements help.KeyMap.
type keyMap struct {
	Next          key.Binding
	Prev          key.Binding
	NextFraction  key.Binding
	PrevFraction  key.Binding
	Activate      key.Binding
	Orientation   key.Binding
	IgnoreCurrent key.Binding
	Flavor        key.Binding
	Auto          key.Binding
	Reset         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		),
		NextFraction: key.NewBinding(
			key.WithKeys("]", "."),
			key.WithHelp("]", "+¼"),
		),
		PrevFraction: key.NewBinding(
			key.WithKeys("[", ","),
			key.WithHelp("[", "-¼"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "orientation"),
		),
		IgnoreCurrent: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "ignore current"),
		),
		Flavor: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "flavor"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
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

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Auto, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped into columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.NextFraction, k.PrevFraction},
		{k.Activate, k.Auto, k.Reset},
		{k.Orientation, k.IgnoreCurrent, k.Flavor},
		{k.Help, k.Quit},
	}
}
