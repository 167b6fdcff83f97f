package toolkit

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Entry is a single-line text input. It emits changed whenever its text
// changes through typing and activate when enter is pressed.
type Entry struct {
	mu    sync.Mutex
	input textinput.Model

	changed  signal[string]
	activate signal[string]
}

// NewEntry creates an entry showing placeholder while empty.
func NewEntry(placeholder string) *Entry {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Width = 40
	ti.Prompt = "> "

	return &Entry{input: ti}
}

// SetWidth sets the visible width of the input.
func (e *Entry) SetWidth(width int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input.Width = width
}

// SetText replaces the text without emitting changed.
func (e *Entry) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input.SetValue(text)
}

// Text returns the current text.
func (e *Entry) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input.Value()
}

// ConnectChanged registers fn to receive the text after every edit.
func (e *Entry) ConnectChanged(fn func(text string)) SignalHandlerID {
	return e.changed.connect(fn)
}

// ConnectActivate registers fn to receive the text when enter is pressed.
func (e *Entry) ConnectActivate(fn func(text string)) SignalHandlerID {
	return e.activate.connect(fn)
}

// Disconnect removes a handler registered on either signal.
func (e *Entry) Disconnect(id SignalHandlerID) bool {
	return e.changed.disconnect(id) || e.activate.disconnect(id)
}

// Focus implements Focusable.
func (e *Entry) Focus() tea.Cmd {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input.Focus()
}

// Blur implements Focusable.
func (e *Entry) Blur() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input.Blur()
}

// Focused implements Focusable.
func (e *Entry) Focused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input.Focused()
}

// Update feeds msg to the text input and emits the matching signals.
func (e *Entry) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		e.activate.emit(e.Text())
		return nil
	}

	e.mu.Lock()
	before := e.input.Value()
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	after := e.input.Value()
	e.mu.Unlock()

	if after != before {
		e.changed.emit(after)
	}
	return cmd
}

// View implements Widget.
func (e *Entry) View() string {
	e.mu.Lock()
	view, focused := e.input.View(), e.input.Focused()
	e.mu.Unlock()

	if focused {
		return theme.EntryFocused.Render(view)
	}
	return theme.Entry.Render(view)
}
