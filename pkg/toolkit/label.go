package toolkit

import "sync"

// Label displays a line of text.
type Label struct {
	mu   sync.RWMutex
	text string
}

// NewLabel creates a label showing text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = text
}

// Text returns the label text.
func (l *Label) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text
}

// View implements Widget.
func (l *Label) View() string {
	return theme.Label.Render(l.Text())
}
