package document

import (
	"strings"
	"testing"

	"github.com/hy4ri/simple-todo/internal/todo"
)

func sampleTasks() []todo.Task {
	return []todo.Task{
		{ID: "t1", Text: "NEW TODO HIGH", Priority: todo.PriorityHigh},
		{ID: "t2", Text: "NEW TODO MEDIUM", Priority: todo.PriorityMedium, Completed: true},
		{ID: "t3", Text: "NEW TODO LOW", Priority: todo.PriorityLow},
	}
}

func TestRender_CreateForm(t *testing.T) {
	doc := Render(Input{CreatePriority: todo.PriorityHigh})

	if h := doc.Children[0]; h.Tag != TagHeading || h.Text != "Very Simple Todo App" {
		t.Errorf("unexpected heading %+v", h)
	}
	if doc.ByTestID(IDCreateText) == nil {
		t.Fatal("missing create-todo-text")
	}

	sel := doc.ByTestID(IDCreatePriority)
	if sel == nil {
		t.Fatal("missing create-todo-priority")
	}
	opts := sel.Options()
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	for i, want := range []string{"1", "2", "3"} {
		if opts[i].Value != want {
			t.Errorf("option %d value = %q, want %q", i, opts[i].Value, want)
		}
	}
	if sel.Value != "1" {
		t.Errorf("selected value = %q, want 1", sel.Value)
	}

	btn := doc.ByTestID(IDCreateSubmit)
	if btn == nil {
		t.Fatal("missing create-todo")
	}
	if !btn.Disabled {
		t.Error("submit should be disabled while text is blank")
	}
	if len(doc.AllByTestID(IDItem)) != 0 {
		t.Error("expected no rows")
	}
}

func TestRender_SubmitEnabledOnlyForNonBlankText(t *testing.T) {
	tests := map[string]bool{
		"":          true,
		"   ":       true,
		"\n":        true,
		"NEW TODO":  false,
		" padded  ": false,
	}
	for text, wantDisabled := range tests {
		doc := Render(Input{CreateText: text, CreatePriority: todo.PriorityHigh})
		if got := doc.ByTestID(IDCreateSubmit).Disabled; got != wantDisabled {
			t.Errorf("text %q: disabled = %v, want %v", text, got, wantDisabled)
		}
	}
}

func TestRender_RowsCarryPriorityClasses(t *testing.T) {
	doc := Render(Input{Tasks: sampleTasks(), CreatePriority: todo.PriorityHigh})
	rows := doc.AllByTestID(IDItem)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	want := []struct {
		text  string
		class string
		badge string
		label string
	}{
		{"NEW TODO HIGH", "priority-high", "bg-danger", "High"},
		{"NEW TODO MEDIUM", "priority-medium", "bg-warning", "Medium"},
		{"NEW TODO LOW", "priority-low", "bg-secondary", "Low"},
	}
	for i, w := range want {
		row := rows[i]
		if !strings.Contains(row.TextContent(), w.text) {
			t.Errorf("row %d text %q missing %q", i, row.TextContent(), w.text)
		}
		if !row.HasClass(w.class) {
			t.Errorf("row %d classes %v missing %q", i, row.Classes, w.class)
		}
		badge := row.Children[2]
		if !badge.HasClass(w.badge) || badge.Text != w.label {
			t.Errorf("row %d badge = %+v", i, badge)
		}
		if row.ByTestID(IDEdit) == nil || row.ByTestID(IDDelete) == nil {
			t.Errorf("row %d missing edit/delete triggers", i)
		}
	}
}

func TestRender_CompletedTextIsMarked(t *testing.T) {
	doc := Render(Input{Tasks: sampleTasks()})
	rows := doc.AllByTestID(IDItem)

	if rows[0].Children[0].Checked || rows[0].Children[1].HasClass("completed") {
		t.Error("open task should not be marked completed")
	}
	if !rows[1].Children[0].Checked {
		t.Error("completed task should have a checked box")
	}
	if !rows[1].Children[1].HasClass("completed") {
		t.Error("completed task text should carry the completed class")
	}
}

func TestRender_EditRow(t *testing.T) {
	tasks := sampleTasks()
	session := &todo.EditSession{TaskID: "t2", Text: "draft", Priority: todo.PriorityLow}
	doc := Render(Input{Tasks: tasks, Edit: session, Focus: FocusUpdateText})

	rows := doc.AllByTestID(IDItem)
	if len(rows) != 3 {
		t.Fatalf("edit mode must not change row count, got %d", len(rows))
	}
	if got := doc.AllByTestID(IDUpdateText); len(got) != 1 {
		t.Fatalf("expected exactly one update-todo-text, got %d", len(got))
	}

	editRow := rows[1]
	if editRow.ByTestID(IDUpdateText).Value != "draft" {
		t.Errorf("edit text should show the draft, got %q", editRow.ByTestID(IDUpdateText).Value)
	}
	if !editRow.ByTestID(IDUpdateText).Focused {
		t.Error("edit text should be focused")
	}
	if editRow.ByTestID(IDUpdatePriority).Value != "3" {
		t.Errorf("edit priority = %q", editRow.ByTestID(IDUpdatePriority).Value)
	}
	if editRow.ByTestID(IDUpdateSubmit) == nil {
		t.Error("missing update-todo")
	}
	if !editRow.HasClass("priority-medium") {
		t.Error("edit row keeps the stored priority class until save")
	}
	if editRow.ByTestID(IDEdit) != nil || editRow.ByTestID(IDDelete) != nil {
		t.Error("edit row should not show display triggers")
	}
	if rows[0].ByTestID(IDUpdateText) != nil {
		t.Error("other rows must stay in display mode")
	}
}

func TestRender_CursorHighlightsOnlyWithListFocus(t *testing.T) {
	doc := Render(Input{Tasks: sampleTasks(), Focus: FocusList, Cursor: 2})
	rows := doc.AllByTestID(IDItem)
	for i, row := range rows {
		if row.Focused != (i == 2) {
			t.Errorf("row %d focused = %v", i, row.Focused)
		}
	}

	doc = Render(Input{Tasks: sampleTasks(), Focus: FocusCreateText, Cursor: 2})
	for i, row := range doc.AllByTestID(IDItem) {
		if row.Focused {
			t.Errorf("row %d should not be focused while the form has focus", i)
		}
	}
}

func TestNode_QueriesOnNil(t *testing.T) {
	var n *Node
	if n.ByTestID("x") != nil || len(n.AllByTestID("x")) != 0 || n.HasClass("x") || n.TextContent() != "" {
		t.Error("nil node queries should be empty")
	}
}
