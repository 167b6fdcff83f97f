package toolkit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestInit_RejectsNonTerminalInput(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, err = Init(WithInput(f))
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("Init() error = %v, want ErrNotTerminal", err)
	}
}

func TestInit_Headless(t *testing.T) {
	tk, err := Init(Headless())
	if err != nil {
		t.Fatalf("Init(Headless()) error = %v", err)
	}
	if tk == nil {
		t.Fatal("Init returned nil toolkit")
	}
}

func TestInit_CustomStreamsAccepted(t *testing.T) {
	if _, err := Init(WithInput(strings.NewReader("")), WithOutput(&strings.Builder{})); err != nil {
		t.Fatalf("Init() with non-file streams error = %v", err)
	}
}

func TestMain_StopsOnContextCancel(t *testing.T) {
	tk, err := Init(Headless())
	if err != nil {
		t.Fatal(err)
	}

	win := NewWindow("test")
	win.Add(NewLabel("hello"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tk.Main(ctx, win)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Main() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Main did not return after cancel")
	}
}

func TestMain_Quit(t *testing.T) {
	tk, err := Init(Headless())
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- tk.Main(context.Background(), NewWindow("test"))
	}()

	deadline := time.After(5 * time.Second)
	for {
		tk.Quit()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Main() error = %v", err)
			}
			return
		case <-deadline:
			t.Fatal("Main did not return after Quit")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestButton_ClickedSignal(t *testing.T) {
	b := NewButton("ok")

	var calls []string
	id := b.ConnectClicked(func() { calls = append(calls, "first") })
	b.ConnectClicked(func() { calls = append(calls, "second") })

	b.Click()
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("handlers ran %v, want [first second]", calls)
	}

	if !b.Disconnect(id) {
		t.Fatal("Disconnect() = false for connected handler")
	}
	if b.Disconnect(id) {
		t.Error("Disconnect() = true for already removed handler")
	}

	calls = nil
	b.Click()
	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("after disconnect handlers ran %v, want [second]", calls)
	}
}

func TestButton_ActivateKeys(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		click bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewButton("go")
			clicked := false
			b.ConnectClicked(func() { clicked = true })

			b.Update(tt.msg)
			if clicked != tt.click {
				t.Errorf("clicked = %t, want %t", clicked, tt.click)
			}
		})
	}
}

func TestLabel_SetText(t *testing.T) {
	l := NewLabel("before")
	l.SetText("after")

	if l.Text() != "after" {
		t.Errorf("Text() = %q, want %q", l.Text(), "after")
	}
	if !strings.Contains(l.View(), "after") {
		t.Errorf("View() = %q, want it to contain %q", l.View(), "after")
	}
}

func TestEntry_TypingEmitsChanged(t *testing.T) {
	e := NewEntry("type here")
	e.Focus()

	var changes []string
	e.ConnectChanged(func(text string) { changes = append(changes, text) })

	e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})

	if e.Text() != "hi" {
		t.Fatalf("Text() = %q, want %q", e.Text(), "hi")
	}
	if len(changes) != 2 || changes[1] != "hi" {
		t.Errorf("changed emitted %v, want [h hi]", changes)
	}
}

func TestEntry_EnterEmitsActivate(t *testing.T) {
	e := NewEntry("")
	e.Focus()
	e.SetText("submit me")

	var got string
	e.ConnectActivate(func(text string) { got = text })

	e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got != "submit me" {
		t.Errorf("activate received %q, want %q", got, "submit me")
	}
}

func TestEntry_SetTextDoesNotEmit(t *testing.T) {
	e := NewEntry("")
	emitted := false
	e.ConnectChanged(func(string) { emitted = true })

	e.SetText("quiet")
	if emitted {
		t.Error("SetText should not emit changed")
	}
}

func TestBox_AddRemove(t *testing.T) {
	box := NewBox(Horizontal, 1)
	a, b := NewLabel("a"), NewLabel("b")
	box.Add(a)
	box.Add(b)

	if len(box.Children()) != 2 {
		t.Fatalf("Children() len = %d, want 2", len(box.Children()))
	}
	if !box.Remove(a) {
		t.Fatal("Remove(a) = false")
	}
	if box.Remove(a) {
		t.Error("Remove(a) twice = true")
	}
	if children := box.Children(); len(children) != 1 || children[0] != b {
		t.Errorf("Children() = %v, want [b]", children)
	}
}

func TestBox_ViewRendersChildren(t *testing.T) {
	frame := NewFrame("Title")
	frame.Add(NewLabel("alpha"))
	frame.Add(NewLabel("beta"))

	view := frame.View()
	for _, want := range []string{"Title", "alpha", "beta"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestContains(t *testing.T) {
	outer := NewBox(Vertical, 0)
	inner := NewBox(Horizontal, 0)
	leaf := NewLabel("leaf")
	outer.Add(inner)
	inner.Add(leaf)

	if !Contains(outer, leaf) {
		t.Error("Contains(outer, leaf) = false")
	}
	if Contains(inner, outer) {
		t.Error("Contains(inner, outer) = true")
	}
	if Contains(outer, NewLabel("other")) {
		t.Error("Contains(outer, other) = true")
	}
}

func TestWindow_FocusChain(t *testing.T) {
	win := NewWindow("focus")
	b1, b2 := NewButton("one"), NewButton("two")
	row := NewBox(Horizontal, 1)
	row.Add(b1)
	row.Add(NewLabel("not focusable"))
	row.Add(b2)
	win.Add(row)

	win.HandleMsg(tea.KeyMsg{Type: tea.KeyTab})
	if win.Focused() != b1 || !b1.Focused() {
		t.Fatalf("first tab focused %v, want b1", win.Focused())
	}

	win.HandleMsg(tea.KeyMsg{Type: tea.KeyTab})
	if win.Focused() != b2 || b1.Focused() {
		t.Fatalf("second tab focused %v, want b2 with b1 blurred", win.Focused())
	}

	win.HandleMsg(tea.KeyMsg{Type: tea.KeyTab})
	if win.Focused() != b1 {
		t.Errorf("focus should wrap to b1, got %v", win.Focused())
	}

	win.HandleMsg(tea.KeyMsg{Type: tea.KeyShiftTab})
	if win.Focused() != b2 {
		t.Errorf("shift+tab should move back to b2, got %v", win.Focused())
	}
}

func TestWindow_RoutesKeysToFocused(t *testing.T) {
	win := NewWindow("route")
	b := NewButton("press")
	win.Add(b)

	clicked := 0
	b.ConnectClicked(func() { clicked++ })

	win.HandleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	if clicked != 0 {
		t.Fatal("unfocused button received a key")
	}

	win.FocusNext()
	win.HandleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
}

func TestWindow_QuitWithoutDeleteHandler(t *testing.T) {
	win := NewWindow("quit")

	cmd := win.HandleMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command did not produce tea.QuitMsg")
	}
}

func TestWindow_DeleteHandlerInhibitsQuit(t *testing.T) {
	win := NewWindow("quit")
	deleted := false
	win.ConnectDelete(func() { deleted = true })

	cmd := win.HandleMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd != nil {
		t.Error("window with delete handler should not quit by itself")
	}
	if !deleted {
		t.Error("delete handler did not run")
	}
}

func TestWindow_ViewIncludesTitleAndContent(t *testing.T) {
	win := NewWindow("My App")
	win.Add(NewLabel("content here"))
	win.SetSize(80, 24)

	view := win.View()
	if !strings.Contains(view, "My App") || !strings.Contains(view, "content here") {
		t.Errorf("View() missing title or content:\n%s", view)
	}
}
