package examples

import (
	"github.com/ShayCichocki/relm/internal/assistant"
	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/relm"
	"github.com/ShayCichocki/relm/pkg/toolkit"
)

// AskMsg is an event of the ask widget.
type AskMsg interface {
	askMsg()
}

type questionAsked struct{ prompt string }
type answerReceived struct{ text string }
type askFailed struct{ err error }

func (questionAsked) askMsg()  {}
func (answerReceived) askMsg() {}
func (askFailed) askMsg()      {}

// Ask sends a prompt to the assistant and shows the answer.
type Ask struct {
	relm    *relm.Relm[AskMsg]
	asker   assistant.Asker
	pending bool

	box    *toolkit.Box
	prompt *toolkit.Entry
	answer *toolkit.Label
	status *toolkit.Label
}

// NewAsk returns a constructor for an ask widget using a.
func NewAsk(a assistant.Asker) relm.Constructor[AskMsg, *Ask] {
	return func(r *relm.Relm[AskMsg]) *Ask {
		w := &Ask{
			relm:   r,
			asker:  a,
			box:    toolkit.NewFrame("Ask"),
			prompt: toolkit.NewEntry("ask something and press enter"),
			answer: toolkit.NewLabel(""),
			status: toolkit.NewLabel(""),
		}
		w.prompt.SetWidth(60)
		w.box.Add(w.prompt)
		w.box.Add(w.status)
		w.box.Add(w.answer)
		return w
	}
}

func (w *Ask) ConnectEvents() {
	w.prompt.ConnectActivate(func(text string) { w.relm.Emit(questionAsked{prompt: text}) })
}

func (w *Ask) Subscriptions() []executor.Task {
	return nil
}

func (w *Ask) Update(msg AskMsg) executor.Task {
	switch msg := msg.(type) {
	case questionAsked:
		if w.pending {
			w.status.SetText("still waiting for the previous answer")
			return nil
		}
		w.pending = true
		w.status.SetText("thinking...")
		return relm.ConnectWithError(w.relm, assistant.Future(w.asker, msg.prompt),
			func(text string) AskMsg { return answerReceived{text: text} },
			func(err error) AskMsg { return askFailed{err: err} },
		)
	case answerReceived:
		w.pending = false
		w.status.SetText("")
		w.answer.SetText(msg.text)
	case askFailed:
		w.pending = false
		w.status.SetText("error: " + msg.err.Error())
	}
	return nil
}

func (w *Ask) Container() toolkit.Widget {
	return w.box
}
