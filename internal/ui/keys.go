package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared by the listing and detail views.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Open      key.Binding
	Back      key.Binding
	Search    key.Binding
	NextCat   key.Binding
	PrevCat   key.Binding
	AllTypes  key.Binding
	TypeKeys  key.Binding
	Clear     key.Binding
	Ask       key.Binding
	Related   key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Debug     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "nav")),
	Down:      key.NewBinding(key.WithKeys("j", "down")),
	Top:       key.NewBinding(key.WithKeys("g", "home")),
	Bottom:    key.NewBinding(key.WithKeys("G", "end")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "open")),
	Back:      key.NewBinding(key.WithKeys("esc", "backspace", "h"), key.WithHelp("Esc", "back")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	NextCat:   key.NewBinding(key.WithKeys("]", "tab"), key.WithHelp("[ ]", "category")),
	PrevCat:   key.NewBinding(key.WithKeys("[", "shift+tab")),
	AllTypes:  key.NewBinding(key.WithKeys("0")),
	TypeKeys:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("0-4", "type")),
	Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
	Ask:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ask AI")),
	Related:   key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "related")),
	PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " ")),
	Debug:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "debug")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// hint renders a binding's help as "key:desc" for the status bar.
func hint(b key.Binding) string {
	h := b.Help()
	return StatusBarKey.Render(h.Key) + StatusBarText.Render(":"+h.Desc)
}
