package widget

import (
	"context"
	"fmt"

	"github.com/nibzard/todowidget/internal/todo"
	"github.com/nibzard/todowidget/internal/view"
)

// EntryForm is the new-task form: a text input and a submit button that is
// disabled while the input is blank.
type EntryForm struct {
	Form   *view.Node
	Input  *view.Node
	Button *view.Node
}

func renderForm(labels Labels) *EntryForm {
	form := view.NewElement("form")
	form.AddClass("input-group", "mb-3")

	input := view.NewElement("input")
	input.AddClass("form-control")
	input.SetAttr(view.AttrPlaceholder, labels.Placeholder)

	wrapper := view.NewElement("div")
	wrapper.AddClass("input-group-append")

	button := view.NewElement("button")
	button.AddClass("btn", "btn-primary")
	button.SetAttr(view.AttrType, "submit")
	button.SetText(labels.Add)
	button.SetDisabled(true)

	wrapper.Append(button)
	form.Append(input, wrapper)

	return &EntryForm{Form: form, Input: input, Button: button}
}

func (w *Widget) wireForm() {
	f := w.form

	f.Input.AddEventListener(view.EventInput, func(*view.Event) {
		f.Button.SetDisabled(todo.IsBlank(f.Input.Value()))
	})

	f.Form.AddEventListener(view.EventSubmit, func(ev *view.Event) {
		ev.PreventDefault()
		name := f.Input.Value()
		if todo.IsBlank(name) {
			return
		}

		id, err := w.list.NextID()
		if err != nil {
			ev.Fail(fmt.Errorf("add %q: %w", name, err))
			return
		}
		task := &todo.Task{ID: id, Name: name}
		row := w.renderRow(task)
		w.list.Append(task)
		err = w.save(ev.Context())
		w.listNode.Append(row.Item)
		f.Input.SetValue("")
		f.Button.SetDisabled(true)

		ev.Detail = task
		if err != nil {
			ev.Fail(err)
		}
	})
}

// SetInput replaces the input's text and fires an input event, the same as
// a user typing.
func (w *Widget) SetInput(value string) error {
	if !w.mounted {
		return ErrNotMounted
	}
	w.form.Input.SetValue(value)
	w.form.Input.Dispatch(view.NewEvent(context.Background(), view.EventInput))
	return nil
}

// Input returns the current input text.
func (w *Widget) Input() string {
	if !w.mounted {
		return ""
	}
	return w.form.Input.Value()
}

// CanSubmit reports whether the submit button is enabled.
func (w *Widget) CanSubmit() bool {
	return w.mounted && !w.form.Button.Disabled()
}

// Submit submits the form. A blank input is ignored and returns a nil task.
// When saving fails the task is still added in memory and returned along
// with the error. When no id is left nothing changes and the input keeps its
// text.
func (w *Widget) Submit(ctx context.Context) (*todo.Task, error) {
	if !w.mounted {
		return nil, ErrNotMounted
	}
	ev := w.form.Form.Dispatch(view.NewEvent(ctx, view.EventSubmit))
	task, _ := ev.Detail.(*todo.Task)
	return task, ev.Err()
}

// AddTask types name into the input and submits it. Any text already in the
// input is replaced.
func (w *Widget) AddTask(ctx context.Context, name string) (*todo.Task, error) {
	if err := w.SetInput(name); err != nil {
		return nil, err
	}
	return w.Submit(ctx)
}
