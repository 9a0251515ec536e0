package widget

import (
	"github.com/nibzard/todowidget/internal/todo"
	"github.com/nibzard/todowidget/internal/view"
)

// Class names used by the rendered tree.
const (
	ItemClass    = "list-group-item"
	SuccessClass = "list-group-item-success"
	ListClass    = "list-group"
)

// Row is the rendered form of one task.
type Row struct {
	Item         *view.Node
	DoneButton   *view.Node
	DeleteButton *view.Node

	// Task is the record this row controls. It is the same pointer the
	// widget's list holds.
	Task *todo.Task
}

// RenderRow builds the row for a task. It has no side effects and attaches
// no handlers.
func RenderRow(task *todo.Task, labels Labels) *Row {
	item := view.NewElement("li")
	item.AddClass(ItemClass, "d-flex", "justify-content-between", "align-items-center")
	if task.Done {
		item.AddClass(SuccessClass)
	}

	name := view.NewElement("span")
	name.AddClass("todo-item-title")
	name.SetText(task.Name)

	group := view.NewElement("div")
	group.AddClass("btn-group")
	group.SetAttr("role", "group")

	done := view.NewElement("button")
	done.SetAttr(view.AttrType, "button")
	done.AddClass("btn", "btn-success")
	done.SetText(labels.Done)

	del := view.NewElement("button")
	del.SetAttr(view.AttrType, "button")
	del.AddClass("btn", "btn-danger")
	del.SetText(labels.Delete)

	group.Append(done, del)
	item.Append(name, group)

	return &Row{Item: item, DoneButton: done, DeleteButton: del, Task: task}
}

// Done reports whether the row shows the completed marker.
func (r *Row) Done() bool {
	return r.Item.HasClass(SuccessClass)
}

func (w *Widget) renderRow(task *todo.Task) *Row {
	row := RenderRow(task, w.labels)
	w.wireRow(row)
	w.rows = append(w.rows, row)
	return row
}

func (w *Widget) wireRow(row *Row) {
	row.DoneButton.AddEventListener(view.EventClick, func(ev *view.Event) {
		row.Item.ToggleClass(SuccessClass)
		row.Task.Done = !row.Task.Done
		ev.Detail = row.Task.Done
		if err := w.save(ev.Context()); err != nil {
			ev.Fail(err)
		}
	})

	row.DeleteButton.AddEventListener(view.EventClick, func(ev *view.Event) {
		if !w.confirm(w.labels.ConfirmDelete) {
			ev.Detail = false
			return
		}
		row.Item.Remove()
		w.dropRow(row)
		if !w.list.Remove(row.Task.ID) {
			w.logger.Warn("deleted row has no stored record", "key", w.key, "id", row.Task.ID)
			ev.Detail = false
			return
		}
		ev.Detail = true
		if err := w.save(ev.Context()); err != nil {
			ev.Fail(err)
		}
	})
}

func (w *Widget) dropRow(row *Row) {
	for i, r := range w.rows {
		if r == row {
			w.rows = append(w.rows[:i], w.rows[i+1:]...)
			return
		}
	}
}

func (w *Widget) rowFor(id int) *Row {
	for _, r := range w.rows {
		if r.Task.ID == id {
			return r
		}
	}
	return nil
}
