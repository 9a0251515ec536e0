package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todowidget/internal/storage"
	"github.com/nibzard/todowidget/internal/view"
	"github.com/nibzard/todowidget/internal/widget"
)

func newTestModel(t *testing.T, opts ...widget.Option) (*Model, *widget.Widget, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	gate := &ConfirmGate{}
	opts = append([]widget.Option{widget.WithKey("todo"), widget.WithConfirm(gate.Confirm)}, opts...)
	w := widget.New(store, opts...)
	if err := w.Mount(context.Background(), view.NewElement("div")); err != nil {
		t.Fatal(err)
	}
	return NewModel(context.Background(), w, gate), w, store
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestTypeAndSubmit(t *testing.T) {
	m, w, store := newTestModel(t)

	send(m, runes("Buy milk"))
	if !w.CanSubmit() {
		t.Fatal("typing should enable the add button")
	}
	send(m, enter)

	tasks := w.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "Buy milk" {
		t.Fatalf("tasks = %+v", tasks)
	}
	if m.input.Value() != "" || w.CanSubmit() {
		t.Error("input should reset after submit")
	}
	got, _, _ := store.GetItem(context.Background(), "todo")
	if got != `[{"id":1,"name":"Buy milk","done":false}]` {
		t.Errorf("stored = %s", got)
	}
	if !strings.Contains(m.View(), "Buy milk") {
		t.Error("view should list the new task")
	}
}

func TestBlankSubmitDoesNothing(t *testing.T) {
	m, w, _ := newTestModel(t)
	send(m, runes("   "), enter)
	if len(w.Tasks()) != 0 {
		t.Errorf("blank input added %v", w.Tasks())
	}
}

func TestToggleFromList(t *testing.T) {
	m, w, _ := newTestModel(t)
	send(m, runes("A"), enter, runes("B"), enter)
	send(m, tab)
	if m.focus != focusList {
		t.Fatal("tab should move focus to the list")
	}

	// Typing in list focus must not reach the input.
	send(m, runes("j"))
	if m.input.Value() != "" {
		t.Errorf("input = %q", m.input.Value())
	}

	m.cursor = 0
	send(m, down, space)
	tasks := w.Tasks()
	if tasks[0].Done || !tasks[1].Done {
		t.Errorf("tasks = %+v, want only B done", tasks)
	}
	if !w.Rows()[1].Done() {
		t.Error("row B should carry the success class")
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, w, _ := newTestModel(t)
	send(m, runes("A"), enter, runes("B"), enter, tab)
	m.cursor = 0

	send(m, runes("d"))
	if !m.confirming {
		t.Fatal("d should open the confirmation")
	}
	if !strings.Contains(m.View(), "Are you sure?") {
		t.Error("view should show the confirmation prompt")
	}
	send(m, runes("n"))
	if m.confirming || len(w.Tasks()) != 2 {
		t.Fatalf("declined delete: confirming=%v tasks=%d", m.confirming, len(w.Tasks()))
	}

	send(m, runes("d"), runes("y"))
	tasks := w.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "B" {
		t.Fatalf("tasks after delete = %+v", tasks)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d", m.cursor)
	}

	// The gate is single use.
	if m.gate.Confirm("again?") {
		t.Error("gate stayed armed after the delete")
	}
}

func TestEscCancelsConfirmBeforeQuitting(t *testing.T) {
	m, w, _ := newTestModel(t)
	send(m, runes("A"), enter, tab, runes("x"))

	_, cmd := m.Update(esc)
	if cmd != nil {
		t.Error("esc in the confirmation should not quit")
	}
	if m.confirming || len(w.Tasks()) != 1 {
		t.Error("esc should cancel the delete")
	}

	_, cmd = m.Update(esc)
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should return tea.Quit")
	}
}

func TestViewUsesLabels(t *testing.T) {
	m, _, _ := newTestModel(t, widget.WithLabels(widget.RussianLabels()))
	view := m.View()
	for _, want := range []string{"Список дел", "Добавить дело"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestConfirmGate(t *testing.T) {
	var g ConfirmGate
	if g.Confirm("first") {
		t.Error("unarmed gate should decline")
	}
	g.Arm()
	if !g.Confirm("second") {
		t.Error("armed gate should accept")
	}
	if g.Confirm("third") {
		t.Error("gate should disarm after one answer")
	}
	if g.LastPrompt() != "third" {
		t.Errorf("LastPrompt = %q", g.LastPrompt())
	}
}
