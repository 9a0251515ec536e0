// Package cmd implements the CLI command structure for todowidget.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todowidget/internal/config"
	"github.com/nibzard/todowidget/internal/logging"
	"github.com/nibzard/todowidget/internal/widget"
)

// Version is set via ldflags at build time.
var Version = "dev"

// app carries what every subcommand needs.
type app struct {
	cfg     *config.Config
	sources *config.ConfigWithSources
	stdout  io.Writer
	stderr  io.Writer
	logger  *log.Logger

	// confirm overrides the interactive delete prompt. Tests set it.
	confirm widget.ConfirmFunc
}

// Run executes the todowidget CLI.
func Run(ctx context.Context, args []string) error {
	return RunWithIO(ctx, args, os.Stdout, os.Stderr)
}

// RunWithIO executes the CLI with explicit output streams.
func RunWithIO(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return run(ctx, args, &app{stdout: stdout, stderr: stderr})
}

func run(ctx context.Context, args []string, a *app) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todowidget", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		printUsage(fs, a.stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cws.Config
	a.sources = cws
	if *help {
		printUsage(fs, a.stdout)
		return nil
	}
	if *showVersion {
		return a.versionCommand()
	}

	// Determine the subcommand
	// If no args or first arg is a flag, use "tui" as default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	// Commands that never touch the store skip config validation so a
	// broken config can still be inspected.
	switch subcommand {
	case "version":
		return a.versionCommand()
	case "help":
		printUsage(fs, a.stdout)
		return nil
	case "config":
		return a.configCommand(remainingArgs)
	case "doctor":
		return a.doctorCommand(ctx, remainingArgs)
	case "completion":
		return a.completionCommand(remainingArgs)
	}

	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	closeLog, err := a.setupLogger(subcommand == "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	switch subcommand {
	case "tui":
		return a.tuiCommand(ctx, remainingArgs)
	case "ls":
		return a.lsCommand(ctx, remainingArgs)
	case "add":
		return a.addCommand(ctx, remainingArgs)
	case "done":
		return a.doneCommand(ctx, remainingArgs)
	case "rm":
		return a.rmCommand(ctx, remainingArgs)
	case "export":
		return a.exportCommand(ctx, remainingArgs)
	case "keys":
		return a.keysCommand(ctx, remainingArgs)
	case "tail":
		return a.tailCommand(ctx, remainingArgs)
	default:
		fmt.Fprintf(a.stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, a.stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// setupLogger builds the logger from config. Logs go to log_file when set.
// Otherwise they go to stderr, except in the TUI where they would corrupt
// the screen and are dropped.
func (a *app) setupLogger(tui bool) (func(), error) {
	cfg := a.cfg
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		a.logger = logging.FromConfig(f, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
		return func() { f.Close() }, nil
	}
	if tui {
		a.logger = logging.Discard()
		return func() {}, nil
	}
	a.logger = logging.FromConfig(a.stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	return func() {}, nil
}

// versionCommand prints version information.
func (a *app) versionCommand() error {
	fmt.Fprintf(a.stdout, "todowidget version %s\n", Version)
	return nil
}

// configCommand prints an example config file.
func (a *app) configCommand(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	_, err := io.WriteString(a.stdout, config.ExampleConfig())
	return err
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todowidget - a persistent task list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todowidget [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                 Interactive list (default command)")
	fmt.Fprintln(w, "  ls                  Print the rendered list")
	fmt.Fprintln(w, "  add <name...>       Add a task")
	fmt.Fprintln(w, "  done <id>           Toggle a task's done state")
	fmt.Fprintln(w, "  rm [-yes] <id>      Delete a task after confirmation")
	fmt.Fprintln(w, "  export              Write the list as JSON or YAML")
	fmt.Fprintln(w, "  keys                List storage keys")
	fmt.Fprintln(w, "  doctor              Check config and the stored list")
	fmt.Fprintln(w, "  config              Print an example config file")
	fmt.Fprintln(w, "  tail                Print the log file")
	fmt.Fprintln(w, "  completion <shell>  Print a shell completion script")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -plain    One line per task instead of the element tree")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export Options:")
	fmt.Fprintln(w, "  -format string")
	fmt.Fprintln(w, "        Output format (json|yaml) (default \"json\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options:")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
}
