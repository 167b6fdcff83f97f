package toolkit

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Button is a focusable widget emitting a clicked signal when activated.
type Button struct {
	mu      sync.RWMutex
	label   string
	focused bool

	clicked signal[struct{}]
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// SetLabel replaces the button label.
func (b *Button) SetLabel(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = label
}

// Label returns the button label.
func (b *Button) Label() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.label
}

// ConnectClicked registers fn to run whenever the button is clicked.
func (b *Button) ConnectClicked(fn func()) SignalHandlerID {
	return b.clicked.connect(func(struct{}) { fn() })
}

// Disconnect removes a handler registered with ConnectClicked.
func (b *Button) Disconnect(id SignalHandlerID) bool {
	return b.clicked.disconnect(id)
}

// Click emits the clicked signal.
func (b *Button) Click() {
	b.clicked.emit(struct{}{})
}

// Focus implements Focusable.
func (b *Button) Focus() tea.Cmd {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.focused = true
	return nil
}

// Blur implements Focusable.
func (b *Button) Blur() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.focused = false
}

// Focused implements Focusable.
func (b *Button) Focused() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.focused
}

// Update clicks the button on the activate keys.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Activate) {
		b.Click()
	}
	return nil
}

// View implements Widget.
func (b *Button) View() string {
	b.mu.RLock()
	label, focused := b.label, b.focused
	b.mu.RUnlock()

	if focused {
		return theme.ButtonFocused.Render(label)
	}
	return theme.Button.Render(label)
}
