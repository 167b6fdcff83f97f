package toolkit

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Window is the top-level container. It owns keyboard focus and the delete
// signal raised by the quit keys.
type Window struct {
	mu      sync.RWMutex
	title   string
	width   int
	height  int
	content *Box
	focused Focusable

	deleted signal[struct{}]
}

// NewWindow creates an empty window.
func NewWindow(title string) *Window {
	return &Window{
		title:   title,
		content: NewBox(Vertical, 1),
	}
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

// Title returns the window title.
func (w *Window) Title() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.title
}

// Add appends child to the window content.
func (w *Window) Add(child Widget) {
	w.content.Add(child)
}

// Remove detaches child from the window content.
func (w *Window) Remove(child Widget) bool {
	return w.content.Remove(child)
}

// Children returns the window's direct children.
func (w *Window) Children() []Widget {
	return w.content.Children()
}

// ConnectDelete registers fn to run when the user asks to close the window.
// While at least one handler is connected the window does not quit on its
// own; the handler is expected to end the application.
func (w *Window) ConnectDelete(fn func()) SignalHandlerID {
	return w.deleted.connect(func(struct{}) { fn() })
}

// Disconnect removes a handler registered with ConnectDelete.
func (w *Window) Disconnect(id SignalHandlerID) bool {
	return w.deleted.disconnect(id)
}

// SetSize records the terminal size.
func (w *Window) SetSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width = width
	w.height = height
}

// Focused returns the widget holding keyboard focus, if any.
func (w *Window) Focused() Focusable {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.focused
}

// SetFocus moves keyboard focus to f.
func (w *Window) SetFocus(f Focusable) tea.Cmd {
	w.mu.Lock()
	prev := w.focused
	w.focused = f
	w.mu.Unlock()

	if prev != nil && prev != f {
		prev.Blur()
	}
	if f == nil {
		return nil
	}
	return f.Focus()
}

// FocusNext moves focus forward through the focus chain, wrapping around.
func (w *Window) FocusNext() tea.Cmd {
	return w.moveFocus(1)
}

// FocusPrev moves focus backward through the focus chain, wrapping around.
func (w *Window) FocusPrev() tea.Cmd {
	return w.moveFocus(-1)
}

func (w *Window) moveFocus(delta int) tea.Cmd {
	chain := focusables(w.content)
	if len(chain) == 0 {
		return w.SetFocus(nil)
	}

	current := w.Focused()
	idx := -1
	for i, f := range chain {
		if f == current {
			idx = i
			break
		}
	}

	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(chain) - 1
	default:
		next = (idx + delta + len(chain)) % len(chain)
	}
	return w.SetFocus(chain[next])
}

// HandleMsg routes a toolkit message. Window-level keys are handled first;
// everything else goes to the focused widget. It returns tea.Quit when the
// window should close.
func (w *Window) HandleMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.SetSize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			if w.deleted.len() == 0 {
				return tea.Quit
			}
			w.deleted.emit(struct{}{})
			return nil
		case key.Matches(msg, keys.Next):
			return w.FocusNext()
		case key.Matches(msg, keys.Prev):
			return w.FocusPrev()
		}
	}

	f := w.Focused()
	if f == nil || !Contains(w.content, f) {
		return nil
	}
	return f.Update(msg)
}

// View implements Widget.
func (w *Window) View() string {
	w.mu.RLock()
	title, width := w.title, w.width
	w.mu.RUnlock()

	var helpParts []string
	for _, b := range keys.help() {
		h := b.Help()
		helpParts = append(helpParts, h.Key+": "+h.Desc)
	}

	body := w.content.View()
	if width > 0 {
		body = lipgloss.NewStyle().MaxWidth(width).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(title),
		body,
		theme.Help.Render(strings.Join(helpParts, " • ")),
	)
}
