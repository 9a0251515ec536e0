package widget

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nibzard/todowidget/internal/logging"
	"github.com/nibzard/todowidget/internal/todo"
)

func TestRenderRowIsPure(t *testing.T) {
	task := &todo.Task{ID: 7, Name: "Buy milk", Done: false}
	a := RenderRow(task, DefaultLabels())
	b := RenderRow(task, DefaultLabels())

	if a.Item == b.Item {
		t.Fatal("each call should build a fresh subtree")
	}
	if a.Item.TextContent() != b.Item.TextContent() {
		t.Errorf("renders differ: %q vs %q", a.Item.TextContent(), b.Item.TextContent())
	}
	if a.Done() {
		t.Error("open task rendered as done")
	}
	if a.Task != task {
		t.Error("row should reference the given record")
	}

	// No handlers are attached, so clicking changes nothing.
	a.DoneButton.Click(context.Background())
	if task.Done || a.Done() {
		t.Error("RenderRow should not wire handlers")
	}

	task.Done = true
	if !RenderRow(task, DefaultLabels()).Done() {
		t.Error("done task rendered without the success class")
	}
}

func TestDeleteRowWithoutRecord(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	store.MemoryStore.SetItem(ctx, "todo", `[{"id":1,"name":"a","done":false},{"id":2,"name":"b","done":false}]`)
	var buf bytes.Buffer
	w := mount(t, store, WithConfirm(Accept), WithLogger(logging.NewTest(&buf)))

	row := w.Rows()[0]
	w.list.Remove(1)

	removed, err := w.DeleteTask(ctx, 1)
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if removed {
		t.Error("removed = true with no record behind the row")
	}
	if store.sets != 0 {
		t.Errorf("sets = %d, want no write", store.sets)
	}
	if !strings.Contains(buf.String(), "deleted row has no stored record") {
		t.Errorf("no warning logged: %q", buf.String())
	}
	if w.ListNode().Contains(row.Item) || len(w.Rows()) != 1 {
		t.Error("row should leave the tree")
	}
	if got := stored(t, store, "todo"); got != `[{"id":1,"name":"a","done":false},{"id":2,"name":"b","done":false}]` {
		t.Errorf("stored = %s", got)
	}
}
