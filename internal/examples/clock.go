package examples

import (
	"fmt"
	"time"

	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/relm"
	"github.com/ShayCichocki/relm/pkg/stream"
	"github.com/ShayCichocki/relm/pkg/toolkit"
)

// ClockMsg carries the time of a tick.
type ClockMsg time.Time

// Clock shows the current time, refreshed by an interval subscription.
type Clock struct {
	relm     *relm.Relm[ClockMsg]
	interval time.Duration
	layout   string
	ticks    int

	box   *toolkit.Box
	label *toolkit.Label
	count *toolkit.Label
}

// NewClock returns a constructor for a clock ticking every interval.
func NewClock(interval time.Duration) relm.Constructor[ClockMsg, *Clock] {
	return func(r *relm.Relm[ClockMsg]) *Clock {
		c := &Clock{
			relm:     r,
			interval: interval,
			layout:   "15:04:05",
			box:      toolkit.NewFrame("Clock"),
			label:    toolkit.NewLabel(time.Now().Format("15:04:05")),
			count:    toolkit.NewLabel("ticks: 0"),
		}
		c.box.Add(c.label)
		c.box.Add(c.count)
		return c
	}
}

func (c *Clock) ConnectEvents() {}

func (c *Clock) Subscriptions() []executor.Task {
	return []executor.Task{
		relm.Connect(c.relm, stream.Interval(c.interval), func(t time.Time) ClockMsg {
			return ClockMsg(t)
		}),
	}
}

func (c *Clock) Update(msg ClockMsg) executor.Task {
	c.ticks++
	c.label.SetText(time.Time(msg).Format(c.layout))
	c.count.SetText(ticksText(c.ticks))
	return nil
}

func (c *Clock) Container() toolkit.Widget {
	return c.box
}

func ticksText(n int) string {
	return fmt.Sprintf("ticks: %d", n)
}
