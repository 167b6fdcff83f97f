// Package relm applies the Elm Architecture to toolkit widgets.
//
// A widget declares a message type M and implements Widget[M]. The
// orchestrator gives every widget instance its own message bus and a Relm
// context, wires toolkit signals and background sources into that bus, and
// runs a single consumption loop per widget that calls Update once per
// message, in bus order. Updates of one widget never overlap; updates of
// different widgets interleave freely.
//
// Usage:
//
//	type Msg int
//
//	const (
//		Increment Msg = iota
//		Quit
//	)
//
//	type Counter struct {
//		relm  *relm.Relm[Msg]
//		count int
//		label *toolkit.Label
//		plus  *toolkit.Button
//		box   *toolkit.Box
//	}
//
//	func NewCounter(r *relm.Relm[Msg]) *Counter { ... }
//
//	func (c *Counter) ConnectEvents() {
//		c.plus.ConnectClicked(func() { c.relm.Emit(Increment) })
//	}
//
//	func (c *Counter) Update(msg Msg) executor.Task {
//		if msg == Increment {
//			c.count++
//			c.label.SetText(strconv.Itoa(c.count))
//		}
//		return nil
//	}
//
//	err := relm.Run(NewCounter, relm.WithTitle("Counter"))
//
// Asynchronous sources are bound with Connect, which accepts anything
// implementing stream.Streamer: a one-shot stream.Future or a multi-value
// stream.
package relm
