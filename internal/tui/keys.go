package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Answer      key.Binding
	Flag        key.Binding
	Translation key.Binding
	Auto        key.Binding
	FlaggedF    key.Binding
	WrongF      key.Binding
	CorrectF    key.Binding
	ClearF      key.Binding
	JumpLeft    key.Binding
	JumpRight   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous"),
		),
		Answer: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "answer"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flag"),
		),
		Translation: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "translation"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-advance"),
		),
		FlaggedF: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "filter flagged"),
		),
		WrongF: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "filter wrong"),
		),
		CorrectF: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "filter correct"),
		),
		ClearF: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		JumpLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "jump back"),
		),
		JumpRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "jump ahead"),
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
	return []key.Binding{k.Answer, k.Next, k.Prev, k.Flag, k.Translation, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Answer, k.Next, k.Prev, k.JumpLeft, k.JumpRight},
		{k.Flag, k.Translation, k.Auto},
		{k.FlaggedF, k.WrongF, k.CorrectF, k.ClearF},
		{k.Help, k.Quit},
	}
}
