// Package toolkit is the native widget set relm widgets are built from: a
// retained tree of terminal widgets rendered with lipgloss and driven by a
// bubbletea program.
//
// Widgets expose GTK-style signals. Handlers run on the toolkit goroutine, so
// they should do little more than emit a message:
//
//	button := toolkit.NewButton("+")
//	button.ConnectClicked(func() { r.Emit(Increment) })
//
// Widget state is guarded by per-widget locks because relm updates run on
// widget goroutines while rendering happens on the toolkit goroutine.
//
// Usage:
//
//	tk, err := toolkit.Init()
//	if err != nil {
//	    return err // not a terminal
//	}
//	win := toolkit.NewWindow("Demo")
//	win.Add(box)
//	err = tk.Main(ctx, win)
package toolkit
