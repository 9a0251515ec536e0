package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nibzard/todowidget/internal/export"
	"github.com/nibzard/todowidget/internal/storage"
	"github.com/nibzard/todowidget/internal/ui"
	"github.com/nibzard/todowidget/internal/view"
	"github.com/nibzard/todowidget/internal/widget"
)

// openStore opens the configured backend.
func (a *app) openStore() (storage.Store, error) {
	kind, err := storage.ParseKind(a.cfg.Store)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(kind, a.cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", kind, err)
	}
	return store, nil
}

// mountWidget opens the store and mounts a widget into a fresh container.
// The caller closes the returned store.
func (a *app) mountWidget(ctx context.Context, confirm widget.ConfirmFunc) (*widget.Widget, *view.Node, storage.Store, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, nil, nil, err
	}
	labels, err := widget.LabelsFor(a.cfg.Locale)
	if err != nil {
		store.Close()
		return nil, nil, nil, err
	}
	policy, err := widget.ParseCorruptPolicy(a.cfg.OnCorrupt)
	if err != nil {
		store.Close()
		return nil, nil, nil, err
	}

	w := widget.New(store,
		widget.WithKey(a.cfg.StorageKey),
		widget.WithTitle(a.cfg.Title),
		widget.WithLabels(labels),
		widget.WithConfirm(confirm),
		widget.WithLogger(a.logger),
		widget.WithCorruptPolicy(policy),
	)
	container := view.NewElement("div")
	container.AddClass("container")
	if err := w.Mount(ctx, container); err != nil {
		store.Close()
		return nil, nil, nil, err
	}
	return w, container, store, nil
}

// tuiCommand runs the interactive list.
func (a *app) tuiCommand(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	gate := &ui.ConfirmGate{}
	w, _, store, err := a.mountWidget(ctx, gate.Confirm)
	if err != nil {
		return err
	}
	defer store.Close()
	return ui.RunTUI(ctx, w, gate)
}

// lsCommand prints the mounted widget.
func (a *app) lsCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todowidget ls", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	plain := fs.Bool("plain", false, "One line per task instead of the element tree")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	w, container, store, err := a.mountWidget(ctx, widget.Decline)
	if err != nil {
		return err
	}
	defer store.Close()

	if !*plain {
		return view.WriteOutline(a.stdout, container)
	}

	fmt.Fprintln(a.stdout, w.Title())
	rows := w.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(a.stdout, "No tasks.")
		return nil
	}
	for _, row := range rows {
		mark := " "
		if row.Done() {
			mark = "x"
		}
		fmt.Fprintf(a.stdout, "  [%s] %d. %s\n", mark, row.Task.ID, row.Task.Name)
	}
	return nil
}

// addCommand types the name into the form and submits it.
func (a *app) addCommand(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	w, _, store, err := a.mountWidget(ctx, widget.Decline)
	if err != nil {
		return err
	}
	defer store.Close()

	task, err := w.AddTask(ctx, name)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.New("task name is blank")
	}
	fmt.Fprintf(a.stdout, "Added %d. %s\n", task.ID, task.Name)
	return nil
}

// doneCommand clicks a row's done button.
func (a *app) doneCommand(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	w, _, store, err := a.mountWidget(ctx, widget.Decline)
	if err != nil {
		return err
	}
	defer store.Close()

	done, err := w.ToggleTask(ctx, id)
	if err != nil {
		return err
	}
	state := "not done"
	if done {
		state = "done"
	}
	fmt.Fprintf(a.stdout, "Task %d marked %s\n", id, state)
	return nil
}

// rmCommand clicks a row's delete button, which asks for confirmation.
func (a *app) rmCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todowidget rm", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	fs.BoolVar(yes, "y", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}

	confirm := a.confirm
	switch {
	case *yes:
		confirm = widget.Accept
	case confirm == nil:
		confirm = promptConfirm
	}

	w, _, store, err := a.mountWidget(ctx, confirm)
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := w.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintln(a.stdout, "Cancelled.")
		return nil
	}
	fmt.Fprintf(a.stdout, "Deleted task %d\n", id)
	return nil
}

// promptConfirm asks on the terminal.
func promptConfirm(prompt string) bool {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Value(&ok).
				Affirmative("Yes").
				Negative("No"),
		),
	).WithTheme(huh.ThemeBase16())
	if err := form.Run(); err != nil {
		return false
	}
	return ok
}

// exportCommand writes the mounted list in a readable format.
func (a *app) exportCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todowidget export", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	formatName := fs.String("format", "json", "Output format (json|yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	format, err := export.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	w, _, store, err := a.mountWidget(ctx, widget.Decline)
	if err != nil {
		return err
	}
	defer store.Close()
	return export.Write(a.stdout, w.Tasks(), format)
}

// keysCommand lists every key in the store.
func (a *app) keysCommand(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	keys, err := store.Keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(a.stdout, "No keys.")
		return nil
	}
	for _, k := range keys {
		marker := " "
		if k == a.cfg.StorageKey {
			marker = "*"
		}
		fmt.Fprintf(a.stdout, "%s %s\n", marker, k)
	}
	return nil
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected exactly one task id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q", args[0])
	}
	return id, nil
}
