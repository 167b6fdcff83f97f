package toolkit

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Widget is anything that can be drawn.
type Widget interface {
	View() string
}

// Container is a widget holding child widgets.
type Container interface {
	Widget
	Add(child Widget)
	Remove(child Widget) bool
	Children() []Widget
}

// Focusable is a widget that accepts keyboard input when focused.
type Focusable interface {
	Widget
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
}

// Contains reports whether w is parent or one of its descendants.
func Contains(parent Widget, w Widget) bool {
	if parent == w {
		return true
	}
	c, ok := parent.(Container)
	if !ok {
		return false
	}
	for _, child := range c.Children() {
		if Contains(child, w) {
			return true
		}
	}
	return false
}

// Walk calls fn for w and every descendant in depth-first order.
func Walk(w Widget, fn func(Widget)) {
	fn(w)
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			Walk(child, fn)
		}
	}
}

// focusables returns the focusable widgets under w in traversal order.
func focusables(w Widget) []Focusable {
	var out []Focusable
	Walk(w, func(child Widget) {
		if f, ok := child.(Focusable); ok {
			out = append(out, f)
		}
	})
	return out
}
