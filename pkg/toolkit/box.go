package toolkit

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Orientation selects how a Box lays out its children.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Box lays out children in a row or a column.
type Box struct {
	mu          sync.RWMutex
	orientation Orientation
	spacing     int
	framed      bool
	title       string
	children    []Widget
}

// NewBox creates an empty box.
func NewBox(orientation Orientation, spacing int) *Box {
	return &Box{orientation: orientation, spacing: spacing}
}

// NewFrame creates a vertical box drawn inside a titled border.
func NewFrame(title string) *Box {
	return &Box{orientation: Vertical, framed: true, title: title}
}

// Add appends child.
func (b *Box) Add(child Widget) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.children = append(b.children, child)
}

// Remove detaches child. It reports whether child was present.
func (b *Box) Remove(child Widget) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every child.
func (b *Box) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.children = nil
}

// Children returns a snapshot of the children.
func (b *Box) Children() []Widget {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Widget, len(b.children))
	copy(out, b.children)
	return out
}

// View implements Widget.
func (b *Box) View() string {
	b.mu.RLock()
	orientation, spacing, framed, title := b.orientation, b.spacing, b.framed, b.title
	b.mu.RUnlock()

	var views []string
	for i, child := range b.Children() {
		if i > 0 && spacing > 0 {
			if orientation == Vertical {
				views = append(views, strings.Repeat("\n", spacing-1))
			} else {
				views = append(views, strings.Repeat(" ", spacing))
			}
		}
		views = append(views, child.View())
	}

	var content string
	if orientation == Horizontal {
		content = lipgloss.JoinHorizontal(lipgloss.Center, views...)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	if !framed {
		return content
	}
	if title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, theme.Title.Render(title), content)
	}
	return theme.Frame.Render(content)
}
