package examples

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/ShayCichocki/relm/internal/store"
	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/relm"
	"github.com/ShayCichocki/relm/pkg/stream"
	"github.com/ShayCichocki/relm/pkg/toolkit"
)

// NoteStore is the storage used by the notes widget.
type NoteStore interface {
	Add(ctx context.Context, body string) (store.Note, error)
	List(ctx context.Context) ([]store.Note, error)
}

// NotesMsg is an event of the notes widget.
type NotesMsg interface {
	notesMsg()
}

type notesLoaded struct{ notes []store.Note }
type noteSubmitted struct{ body string }
type filterChanged struct{ query string }
type notesFailed struct{ err error }

func (notesLoaded) notesMsg()   {}
func (noteSubmitted) notesMsg() {}
func (filterChanged) notesMsg() {}
func (notesFailed) notesMsg()   {}

// Notes lists stored notes, adds new ones and filters them fuzzily.
type Notes struct {
	relm  *relm.Relm[NotesMsg]
	store NoteStore

	all   []store.Note
	query string

	box    *toolkit.Box
	input  *toolkit.Entry
	add    *toolkit.Button
	filter *toolkit.Entry
	list   *toolkit.Label
	status *toolkit.Label
}

// NewNotes returns a constructor for a notes widget over s.
func NewNotes(s NoteStore) relm.Constructor[NotesMsg, *Notes] {
	return func(r *relm.Relm[NotesMsg]) *Notes {
		n := &Notes{
			relm:   r,
			store:  s,
			box:    toolkit.NewFrame("Notes"),
			input:  toolkit.NewEntry("new note"),
			add:    toolkit.NewButton("Add"),
			filter: toolkit.NewEntry("filter"),
			list:   toolkit.NewLabel("loading..."),
			status: toolkit.NewLabel(""),
		}

		row := toolkit.NewBox(toolkit.Horizontal, 1)
		row.Add(n.input)
		row.Add(n.add)

		n.box.Add(row)
		n.box.Add(n.filter)
		n.box.Add(n.list)
		n.box.Add(n.status)
		return n
	}
}

func (n *Notes) ConnectEvents() {
	n.input.ConnectActivate(func(text string) { n.relm.Emit(noteSubmitted{body: text}) })
	n.add.ConnectClicked(func() { n.relm.Emit(noteSubmitted{body: n.input.Text()}) })
	n.filter.ConnectChanged(func(text string) { n.relm.Emit(filterChanged{query: text}) })
}

func (n *Notes) Subscriptions() []executor.Task {
	return []executor.Task{n.reload()}
}

// reload loads every note as a one-shot future.
func (n *Notes) reload() executor.Task {
	load := stream.Future[[]store.Note](n.store.List)
	return relm.ConnectWithError(n.relm, load,
		func(notes []store.Note) NotesMsg { return notesLoaded{notes: notes} },
		func(err error) NotesMsg { return notesFailed{err: err} },
	)
}

func (n *Notes) Update(msg NotesMsg) executor.Task {
	switch msg := msg.(type) {
	case notesLoaded:
		n.all = msg.notes
		n.status.SetText(fmt.Sprintf("%d note(s)", len(n.all)))
		n.render()
	case filterChanged:
		n.query = msg.query
		n.render()
	case notesFailed:
		n.status.SetText("error: " + msg.err.Error())
	case noteSubmitted:
		body := strings.TrimSpace(msg.body)
		if body == "" {
			return nil
		}
		n.input.SetText("")
		n.status.SetText("saving...")
		reload := n.reload()
		return func(ctx context.Context) {
			if _, err := n.store.Add(ctx, body); err != nil {
				n.relm.Emit(notesFailed{err: err})
				return
			}
			reload(ctx)
		}
	}
	return nil
}

func (n *Notes) Container() toolkit.Widget {
	return n.box
}

func (n *Notes) render() {
	shown := FilterNotes(n.all, n.query)
	if len(shown) == 0 {
		n.list.SetText("(no notes)")
		return
	}

	var b strings.Builder
	for i, note := range shown {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s", note.CreatedAt.Local().Format("Jan 02 15:04"), note.Body)
	}
	if len(shown) < len(n.all) {
		fmt.Fprintf(&b, "\n%d of %d shown", len(shown), len(n.all))
	}
	n.list.SetText(b.String())
}

// FilterNotes returns the notes matching query, keeping their order. A note
// matches when it contains the query or one of its words is within a small
// edit distance of it. An empty query matches everything.
func FilterNotes(notes []store.Note, query string) []store.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return notes
	}

	limit := maxDistance(query)
	var out []store.Note
	for _, note := range notes {
		if fuzzyMatch(strings.ToLower(note.Body), query, limit) {
			out = append(out, note)
		}
	}
	return out
}

func fuzzyMatch(body, query string, limit int) bool {
	if strings.Contains(body, query) {
		return true
	}
	for _, word := range strings.FieldsFunc(body, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if levenshtein.ComputeDistance(word, query) <= limit {
			return true
		}
	}
	return false
}

func maxDistance(query string) int {
	switch n := len([]rune(query)); {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	default:
		return 2
	}
}
