// Package view projects board state into a UI tree.
//
// Render is a pure function: it reads the state, allocates a fresh tree and
// never mutates anything. Controls in the tree carry the domain message they
// emit, so a front end only has to forward them to the reducer.
package view

import (
	"strconv"

	"github.com/runoshun/kanban/internal/domain"
)

// SubmitLabel is the caption of the add-task control.
const SubmitLabel = "追加"

// Control captions for card buttons.
const (
	RetreatLabel = "◀"
	AdvanceLabel = "▶"
)

// Tree is the full UI description of the board.
type Tree struct {
	Header  Header
	Columns []Column
}

// Header is the new-task form.
type Header struct {
	Name     TextInput
	Mandays  TextInput
	Assignee Select
	Submit   Button
}

// TextInput is a text field bound to a form buffer.
type TextInput struct {
	Emit  func(text string) domain.Msg
	Value string
}

// Select is a selection control bound to a form buffer.
type Select struct {
	Emit    func(ev domain.ChangeEvent) domain.Msg
	Value   string
	Options []string
}

// Button is an activatable control.
type Button struct {
	OnActivate domain.Msg
	Label      string
}

// Column lists the tasks in one status.
type Column struct {
	Label  string
	Cards  []Card
	Status domain.Status
	Count  int
}

// Card is a single task. Index is the position in the unfiltered task list.
type Card struct {
	Retreat  Button
	Advance  Button
	Name     string
	Assignee string
	Mandays  string
	Index    int
}

// Render builds the UI tree for s.
func Render(s *domain.State) Tree {
	return Tree{
		Header:  renderHeader(s),
		Columns: renderColumns(s.Tasks),
	}
}

func renderHeader(s *domain.State) Header {
	return Header{
		Name: TextInput{
			Value: s.NewTaskName,
			Emit: func(text string) domain.Msg {
				return domain.SetNewTaskName{Text: text}
			},
		},
		Assignee: Select{
			Value:   s.NewTaskAssignee,
			Options: domain.Assignees(),
			Emit: func(ev domain.ChangeEvent) domain.Msg {
				return domain.SetNewTaskAssignee{Event: ev}
			},
		},
		Mandays: TextInput{
			Value: strconv.Itoa(s.NewTaskMandays),
			Emit: func(text string) domain.Msg {
				return domain.SetNewTaskMandays{Text: text}
			},
		},
		Submit: Button{
			Label:      SubmitLabel,
			OnActivate: domain.SubmitNewTask{},
		},
	}
}

func renderColumns(tasks []domain.Task) []Column {
	statuses := domain.AllStatuses()
	cols := make([]Column, 0, len(statuses))
	for _, st := range statuses {
		cols = append(cols, renderColumn(st, tasks))
	}
	return cols
}

// renderColumn filters the full task list for one status, keeping list order.
func renderColumn(status domain.Status, tasks []domain.Task) Column {
	col := Column{
		Status: status,
		Label:  status.Label(),
	}
	for i, t := range tasks {
		if t.Status != status {
			continue
		}
		col.Cards = append(col.Cards, renderCard(i, t))
	}
	col.Count = len(col.Cards)
	return col
}

func renderCard(index int, t domain.Task) Card {
	return Card{
		Index:    index,
		Name:     t.Name,
		Assignee: t.Assignee,
		Mandays:  t.MandaysLabel(),
		Retreat: Button{
			Label:      RetreatLabel,
			OnActivate: domain.RetreatStatus{Index: index},
		},
		Advance: Button{
			Label:      AdvanceLabel,
			OnActivate: domain.AdvanceStatus{Index: index},
		},
	}
}

// Total returns the number of cards across all columns.
func (t Tree) Total() int {
	n := 0
	for _, c := range t.Columns {
		n += c.Count
	}
	return n
}

// Column returns the column for status. ok is false if there is none.
func (t Tree) Column(status domain.Status) (Column, bool) {
	for _, c := range t.Columns {
		if c.Status == status {
			return c, true
		}
	}
	return Column{}, false
}
