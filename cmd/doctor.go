package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todowidget/internal/config"
	"github.com/nibzard/todowidget/internal/todo"
)

// doctorCommand reports where each setting came from and checks the
// stored list.
func (a *app) doctorCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todowidget doctor", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	out := a.stdout
	cfg := a.cfg
	allOK := true

	fmt.Fprintln(out, "todowidget doctor")
	fmt.Fprintln(out, "=================")
	fmt.Fprintln(out)

	// Config files and sources
	fmt.Fprintln(out, "Config files:")
	if len(a.sources.Files) == 0 {
		fmt.Fprintln(out, "  (none, using defaults)")
	}
	for _, f := range a.sources.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Settings:")
	for _, field := range config.Fields() {
		source := a.sources.Sources[field]
		if !*verbose && source == config.SourceDefault {
			continue
		}
		fmt.Fprintf(out, "  %-15s %-30s (%s)\n", field, fieldValue(cfg, field), source)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "  ❌ %v\n", err)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "⚠️  Some checks failed.")
		return fmt.Errorf("doctor checks failed")
	}
	fmt.Fprintln(out, "  ✅ Valid")
	fmt.Fprintln(out)

	// Store
	fmt.Fprintf(out, "Store: %s", cfg.Store)
	if cfg.StorePath != "" {
		fmt.Fprintf(out, " at %s", cfg.StorePath)
	}
	fmt.Fprintln(out)
	if cfg.StorePath != "" {
		if _, err := os.Stat(cfg.StorePath); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(out, "  ⚠️  Not created yet (created on first save)")
		}
	}
	store, err := a.openStore()
	if err != nil {
		fmt.Fprintf(out, "  ❌ %v\n", err)
		allOK = false
	} else {
		defer store.Close()
		fmt.Fprintln(out, "  ✅ Opened")
		fmt.Fprintln(out)

		fmt.Fprintf(out, "Stored list %q:\n", cfg.StorageKey)
		raw, ok, err := store.GetItem(ctx, cfg.StorageKey)
		switch {
		case err != nil:
			fmt.Fprintf(out, "  ❌ %v\n", err)
			allOK = false
		case !ok:
			fmt.Fprintln(out, "  ⚠️  Not saved yet (starts empty)")
		default:
			list, err := todo.Decode([]byte(raw))
			if err != nil {
				fmt.Fprintln(out, "  ❌ Malformed:")
				var de *todo.DecodeError
				if errors.As(err, &de) {
					for _, e := range de.Errors {
						fmt.Fprintf(out, "     - %v\n", e)
					}
				} else {
					fmt.Fprintf(out, "     - %v\n", err)
				}
				fmt.Fprintf(out, "  on_corrupt = %s\n", cfg.OnCorrupt)
				allOK = false
			} else {
				done := 0
				for _, t := range list {
					if t.Done {
						done++
					}
				}
				next := "none left"
				if id, err := list.NextID(); err == nil {
					next = fmt.Sprint(id)
				}
				fmt.Fprintf(out, "  ✅ Valid (%d tasks, %d done, next id %s)\n", len(list), done, next)
				if dups := list.DuplicateIDs(); len(dups) > 0 {
					fmt.Fprintf(out, "  ⚠️  Repeated ids %v (done and rm act on the first)\n", dups)
				}
			}
		}
	}
	fmt.Fprintln(out)

	if allOK {
		fmt.Fprintln(out, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(out, "⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

func fieldValue(cfg *config.Config, field string) string {
	switch field {
	case "title":
		return cfg.Title
	case "storage_key":
		return cfg.StorageKey
	case "locale":
		return cfg.Locale
	case "on_corrupt":
		return cfg.OnCorrupt
	case "store":
		return cfg.Store
	case "store_path":
		return cfg.StorePath
	case "base_dir":
		return cfg.BaseDir
	case "log_level":
		return cfg.LogLevel
	case "log_format":
		return cfg.LogFormat
	case "log_timestamps":
		return fmt.Sprint(cfg.LogTimestamps)
	case "log_caller":
		return fmt.Sprint(cfg.LogCaller)
	case "log_file":
		return cfg.LogFile
	default:
		return ""
	}
}
