// Package widget implements the task list widget.
//
// A Widget owns an in-memory task list, the subtree of a view.Node it
// renders into, and the storage key the list is saved under. Mount loads the
// saved list and builds the tree. After that the tree is driven by events:
// typing into the input, submitting the form, and clicking a row's done or
// delete button. Every mutation rewrites the whole list to storage.
//
// AddTask, ToggleTask and DeleteTask are programmatic shortcuts that dispatch
// the same events a user would, so the tree and the list never drift apart.
package widget

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todowidget/internal/logging"
	"github.com/nibzard/todowidget/internal/storage"
	"github.com/nibzard/todowidget/internal/todo"
	"github.com/nibzard/todowidget/internal/view"
)

var (
	// ErrNoStorageKey is returned by Mount when no key was configured.
	ErrNoStorageKey = errors.New("widget: storage key is required")
	// ErrAlreadyMounted is returned by a second Mount.
	ErrAlreadyMounted = errors.New("widget: already mounted")
	// ErrNotMounted is returned by operations that need the rendered tree.
	ErrNotMounted = errors.New("widget: not mounted")
	// ErrTaskNotFound is returned when no row has the requested id.
	ErrTaskNotFound = errors.New("widget: task not found")
)

// Widget is a task list bound to one storage key.
type Widget struct {
	store   storage.Store
	key     string
	title   string
	labels  Labels
	confirm ConfirmFunc
	logger  *log.Logger
	policy  CorruptPolicy

	list todo.List
	rows []*Row

	mounted   bool
	container *view.Node
	heading   *view.Node
	form      *EntryForm
	listNode  *view.Node
}

// New creates an unmounted widget backed by store.
func New(store storage.Store, opts ...Option) *Widget {
	w := &Widget{
		store:   store,
		labels:  DefaultLabels(),
		confirm: Decline,
		logger:  logging.Discard(),
		policy:  CorruptReset,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Mount loads the saved list and renders the widget into container: a
// heading, the entry form, then the list with one row per task in stored
// order. The container is left untouched when loading fails.
func (w *Widget) Mount(ctx context.Context, container *view.Node) error {
	if w.mounted {
		return ErrAlreadyMounted
	}
	if w.key == "" {
		return ErrNoStorageKey
	}
	if container == nil {
		return fmt.Errorf("widget: container is nil")
	}
	if w.store == nil {
		return fmt.Errorf("widget: store is nil")
	}

	list, err := w.load(ctx)
	if err != nil {
		return err
	}
	w.list = list

	w.heading = view.NewElement("h2")
	w.heading.SetText(w.Title())
	w.form = renderForm(w.labels)
	w.listNode = view.NewElement("ul")
	w.listNode.AddClass(ListClass)

	container.Append(w.heading, w.form.Form, w.listNode)
	w.container = container

	for _, task := range w.list {
		row := w.renderRow(task)
		w.listNode.Append(row.Item)
	}
	w.wireForm()
	w.mounted = true

	w.logger.Debug("mounted", "key", w.key, "tasks", len(w.list))
	return nil
}

func (w *Widget) load(ctx context.Context) (todo.List, error) {
	raw, ok, err := w.store.GetItem(ctx, w.key)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", w.key, err)
	}
	if !ok {
		return todo.List{}, nil
	}

	list, err := todo.Decode([]byte(raw))
	if err != nil {
		if w.policy == CorruptFail {
			return nil, fmt.Errorf("load %q: %w", w.key, err)
		}
		w.logger.Warn("stored task list is malformed, starting empty", "key", w.key, "err", err)
		return todo.List{}, nil
	}
	if dups := list.DuplicateIDs(); len(dups) > 0 {
		w.logger.Warn("stored task list repeats ids, actions use the first match", "key", w.key, "ids", dups)
	}
	return list, nil
}

func (w *Widget) save(ctx context.Context) error {
	data, err := todo.Encode(w.list)
	if err != nil {
		return fmt.Errorf("save %q: %w", w.key, err)
	}
	if err := w.store.SetItem(ctx, w.key, string(data)); err != nil {
		w.logger.Error("save failed", "key", w.key, "err", err)
		return fmt.Errorf("save %q: %w", w.key, err)
	}
	w.logger.Debug("saved", "key", w.key, "tasks", len(w.list))
	return nil
}

// ToggleTask clicks the done button of the task's row and returns the new
// completion state.
func (w *Widget) ToggleTask(ctx context.Context, id int) (bool, error) {
	row := w.rowFor(id)
	if row == nil {
		return false, fmt.Errorf("toggle %d: %w", id, ErrTaskNotFound)
	}
	ev := row.DoneButton.Click(ctx)
	done, _ := ev.Detail.(bool)
	return done, ev.Err()
}

// DeleteTask clicks the delete button of the task's row. It reports whether
// the task was removed, which is false when the confirmation was declined.
func (w *Widget) DeleteTask(ctx context.Context, id int) (bool, error) {
	row := w.rowFor(id)
	if row == nil {
		return false, fmt.Errorf("delete %d: %w", id, ErrTaskNotFound)
	}
	ev := row.DeleteButton.Click(ctx)
	removed, _ := ev.Detail.(bool)
	return removed, ev.Err()
}

// Tasks returns a copy of the list in display order.
func (w *Widget) Tasks() []todo.Task {
	return w.list.Snapshot()
}

// Rows returns the rendered rows in display order.
func (w *Widget) Rows() []*Row {
	out := make([]*Row, len(w.rows))
	copy(out, w.rows)
	return out
}

// Mounted reports whether Mount has succeeded.
func (w *Widget) Mounted() bool {
	return w.mounted
}

// Key returns the storage key.
func (w *Widget) Key() string {
	return w.key
}

// Title returns the heading text.
func (w *Widget) Title() string {
	if w.title != "" {
		return w.title
	}
	return w.labels.Title
}

// Labels returns the label set in use.
func (w *Widget) Labels() Labels {
	return w.labels
}

// Form returns the entry form, or nil before Mount.
func (w *Widget) Form() *EntryForm {
	return w.form
}

// ListNode returns the list element, or nil before Mount.
func (w *Widget) ListNode() *view.Node {
	return w.listNode
}

// Container returns the element the widget was mounted into.
func (w *Widget) Container() *view.Node {
	return w.container
}
