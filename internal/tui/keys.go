package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	next      key.Binding
	prev      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	add       key.Binding
	delete    key.Binding
	filter    key.Binding
	mine      key.Binding
	export    key.Binding
	exportAll key.Binding
	copy      key.Binding
	toggle    key.Binding
	compose   key.Binding
	sync      key.Binding
	refresh   key.Binding
	join      key.Binding
	report    key.Binding
	cancel    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	next:      key.NewBinding(key.WithKeys("n", "right", "l")),
	prev:      key.NewBinding(key.WithKeys("p", "left", "h")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	add:       key.NewBinding(key.WithKeys("a")),
	delete:    key.NewBinding(key.WithKeys("d", "ctrl+d")),
	filter:    key.NewBinding(key.WithKeys("f")),
	mine:      key.NewBinding(key.WithKeys("m")),
	export:    key.NewBinding(key.WithKeys("x")),
	exportAll: key.NewBinding(key.WithKeys("e")),
	copy:      key.NewBinding(key.WithKeys("c")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	compose:   key.NewBinding(key.WithKeys("c")),
	sync:      key.NewBinding(key.WithKeys("s")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	join:      key.NewBinding(key.WithKeys("j")),
	report:    key.NewBinding(key.WithKeys("g")),
	cancel:    key.NewBinding(key.WithKeys("ctrl+x")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
