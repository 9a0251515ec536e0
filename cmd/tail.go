package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todowidget/internal/logging"
)

// tailCommand prints the configured log file.
func (a *app) tailCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todowidget tail", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := a.cfg.LogFile
	if path == "" {
		return errors.New("no log file configured (set log_file or --log-file)")
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(a.stdout, "Log file is empty.")
		return nil
	}

	if *follow {
		fmt.Fprintf(a.stderr, "Tailing: %s (Ctrl+C to stop)\n", path)
	}
	return logging.TailLog(ctx, a.stdout, path, *n, *follow)
}
