package examples

import (
	"fmt"

	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/relm"
	"github.com/ShayCichocki/relm/pkg/toolkit"
)

// CounterMsg is a counter event.
type CounterMsg int

const (
	Increment CounterMsg = iota
	Decrement
	Reset
)

// Counter is a label with buttons to change its value.
type Counter struct {
	relm  *relm.Relm[CounterMsg]
	count int

	box   *toolkit.Box
	label *toolkit.Label
	plus  *toolkit.Button
	minus *toolkit.Button
	reset *toolkit.Button
}

// NewCounter builds a counter starting at zero.
func NewCounter(r *relm.Relm[CounterMsg]) *Counter {
	c := &Counter{
		relm:  r,
		box:   toolkit.NewFrame("Counter"),
		label: toolkit.NewLabel(counterText(0)),
		plus:  toolkit.NewButton("+"),
		minus: toolkit.NewButton("-"),
		reset: toolkit.NewButton("Reset"),
	}

	buttons := toolkit.NewBox(toolkit.Horizontal, 1)
	buttons.Add(c.plus)
	buttons.Add(c.minus)
	buttons.Add(c.reset)

	c.box.Add(c.label)
	c.box.Add(buttons)
	return c
}

func (c *Counter) ConnectEvents() {
	c.plus.ConnectClicked(func() { c.relm.Emit(Increment) })
	c.minus.ConnectClicked(func() { c.relm.Emit(Decrement) })
	c.reset.ConnectClicked(func() { c.relm.Emit(Reset) })
}

func (c *Counter) Subscriptions() []executor.Task {
	return nil
}

func (c *Counter) Update(msg CounterMsg) executor.Task {
	switch msg {
	case Increment:
		c.count++
	case Decrement:
		c.count--
	case Reset:
		c.count = 0
	}
	c.label.SetText(counterText(c.count))
	return nil
}

func (c *Counter) Container() toolkit.Widget {
	return c.box
}

func counterText(n int) string {
	return fmt.Sprintf("Count: %d", n)
}

// PairMsg is an event of the Pair widget.
type PairMsg int

const (
	PairQuit PairMsg = iota
)

// Pair hosts two independent counters as child widgets.
type Pair struct {
	relm  *relm.Relm[PairMsg]
	box   *toolkit.Box
	quit  *toolkit.Button
	left  *Counter
	right *Counter
}

// NewPair builds the pair and its children.
func NewPair(r *relm.Relm[PairMsg]) *Pair {
	p := &Pair{
		relm: r,
		box:  toolkit.NewBox(toolkit.Vertical, 1),
		quit: toolkit.NewButton("Quit"),
	}

	row := toolkit.NewBox(toolkit.Horizontal, 2)
	relm.AddWidget(row, r.Handle(), func(cr *relm.Relm[CounterMsg]) *Counter {
		p.left = NewCounter(cr)
		return p.left
	})
	relm.AddWidget(row, r.Handle(), func(cr *relm.Relm[CounterMsg]) *Counter {
		p.right = NewCounter(cr)
		return p.right
	})

	p.box.Add(row)
	p.box.Add(p.quit)
	return p
}

func (p *Pair) ConnectEvents() {
	p.quit.ConnectClicked(func() { p.relm.Emit(PairQuit) })
}

func (p *Pair) Subscriptions() []executor.Task {
	return nil
}

func (p *Pair) Update(msg PairMsg) executor.Task {
	if msg == PairQuit {
		p.relm.Quit()
	}
	return nil
}

func (p *Pair) Container() toolkit.Widget {
	return p.box
}
