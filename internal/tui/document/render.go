package document

import (
	"strings"

	"github.com/hy4ri/simple-todo/internal/todo"
)

// Stable element identifiers.
const (
	IDCreateText     = "create-todo-text"
	IDCreatePriority = "create-todo-priority"
	IDCreateSubmit   = "create-todo"
	IDItem           = "todo-item"
	IDEdit           = "edit-todo"
	IDDelete         = "delete-todo"
	IDUpdateText     = "update-todo-text"
	IDUpdatePriority = "update-todo-priority"
	IDUpdateSubmit   = "update-todo"
)

// Section titles.
const (
	Title      = "Very Simple Todo App"
	CreateCard = "Add New Todo"
	ListCard   = "View Todos"
)

// Focus identifies the element that receives key input.
type Focus int

const (
	FocusCreateText Focus = iota
	FocusCreatePriority
	FocusCreateSubmit
	FocusList
	FocusUpdateText
	FocusUpdatePriority
	FocusUpdateSubmit
)

// Input is the state the document is projected from.
type Input struct {
	Tasks []todo.Task

	// Edit is the open edit session, nil when no row is being edited.
	Edit *todo.EditSession

	CreateText     string
	CreatePriority todo.Priority

	Focus  Focus
	Cursor int // highlighted row while the list is focused
}

// Render builds the document for in. It has no side effects.
func Render(in Input) *Node {
	return &Node{
		Tag: TagRoot,
		Children: []*Node{
			{Tag: TagHeading, Text: Title},
			renderCreateCard(in),
			renderListCard(in),
		},
	}
}

func renderCreateCard(in Input) *Node {
	blank := isBlank(in.CreateText)
	return &Node{
		Tag:  TagCard,
		Text: CreateCard,
		Children: []*Node{{
			Tag: TagForm,
			Children: []*Node{
				{Tag: TagLabel, Text: "I want to..."},
				{
					Tag:     TagTextarea,
					TestID:  IDCreateText,
					Classes: []string{"form-control"},
					Value:   in.CreateText,
					Focused: in.Focus == FocusCreateText,
				},
				{Tag: TagLabel, Text: "How Much of a Priority is this?"},
				prioritySelect(IDCreatePriority, in.CreatePriority, in.Focus == FocusCreatePriority),
				{
					Tag:      TagButton,
					TestID:   IDCreateSubmit,
					Classes:  []string{"btn", "btn-primary"},
					Text:     "Add",
					Disabled: blank,
					Focused:  in.Focus == FocusCreateSubmit,
				},
			},
		}},
	}
}

func renderListCard(in Input) *Node {
	list := &Node{Tag: TagList, Classes: []string{"list-group"}}
	for i, t := range in.Tasks {
		selected := in.Focus == FocusList && i == in.Cursor
		if in.Edit != nil && in.Edit.TaskID == t.ID {
			list.Children = append(list.Children, renderEditRow(t, *in.Edit, in.Focus))
			continue
		}
		list.Children = append(list.Children, renderDisplayRow(t, selected))
	}
	return &Node{
		Tag:      TagCard,
		Text:     ListCard,
		Children: []*Node{list},
	}
}

func renderDisplayRow(t todo.Task, selected bool) *Node {
	textClasses := []string{"todo-text"}
	if t.Completed {
		textClasses = append(textClasses, "completed")
	}
	return &Node{
		Tag:     TagItem,
		TestID:  IDItem,
		Classes: []string{"list-group-item", t.Priority.Class()},
		Value:   t.ID,
		Focused: selected,
		Children: []*Node{
			{Tag: TagCheckbox, Checked: t.Completed},
			{Tag: TagSpan, Classes: textClasses, Text: t.Text},
			{Tag: TagSpan, Classes: []string{"badge", t.Priority.BadgeClass()}, Text: t.Priority.Label()},
			{
				Tag: TagGroup,
				Children: []*Node{
					{Tag: TagButton, TestID: IDEdit, Classes: []string{"btn", "btn-link"}, Text: "Edit"},
					{Tag: TagButton, TestID: IDDelete, Classes: []string{"btn", "btn-link", "text-danger"}, Text: "Delete"},
				},
			},
		},
	}
}

// The row keeps the stored priority class until the edit is saved.
func renderEditRow(t todo.Task, s todo.EditSession, focus Focus) *Node {
	return &Node{
		Tag:     TagItem,
		TestID:  IDItem,
		Classes: []string{"list-group-item", t.Priority.Class(), "editing"},
		Value:   t.ID,
		Focused: true,
		Children: []*Node{{
			Tag: TagForm,
			Children: []*Node{
				{
					Tag:     TagTextarea,
					TestID:  IDUpdateText,
					Classes: []string{"form-control"},
					Value:   s.Text,
					Focused: focus == FocusUpdateText,
				},
				prioritySelect(IDUpdatePriority, s.Priority, focus == FocusUpdatePriority),
				{
					Tag:     TagButton,
					TestID:  IDUpdateSubmit,
					Classes: []string{"btn", "btn-success"},
					Text:    "Save",
					Focused: focus == FocusUpdateSubmit,
				},
			},
		}},
	}
}

func prioritySelect(id string, selected todo.Priority, focused bool) *Node {
	n := &Node{
		Tag:     TagSelect,
		TestID:  id,
		Classes: []string{"form-select"},
		Value:   selected.Value(),
		Focused: focused,
	}
	for _, p := range todo.Priorities {
		n.Children = append(n.Children, &Node{
			Tag:     TagOption,
			Value:   p.Value(),
			Text:    p.Label(),
			Checked: p == selected,
		})
	}
	return n
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
