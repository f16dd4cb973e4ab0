package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Generate key.Binding
	Newline  key.Binding
	Download key.Binding
	Example  key.Binding
	Random   key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
		Newline:  key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "new line")),
		Download: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "download")),
		Example: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1…9", "use example"),
		),
		Random: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "random example")),
		Theme:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle theme")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Download, k.Example, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Newline, k.Download},
		{k.Example, k.Random, k.Theme},
		{k.Help, k.Quit},
	}
}

// exampleIndex turns alt+N into a zero-based example index.
func exampleIndex(msg tea.KeyMsg) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(msg.String(), "alt+"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
