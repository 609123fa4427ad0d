package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/todomvc/internal/config"
	"github.com/idilsaglam/todomvc/internal/log"
	"github.com/idilsaglam/todomvc/internal/persist"
	"github.com/idilsaglam/todomvc/internal/state"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/tui"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks failures caused by bad arguments.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error { return usageError{fmt.Sprintf(format, a...)} }

// flags are the root (persistent) flags shared by every subcommand.
type flags struct {
	configFile string
	backend    string
	path       string
	theme      string
	color      bool
	noColor    bool
	verbose    bool
}

// app is the wiring for one command invocation.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	kv     store.KV
	writer *persist.Writer
	mgr    *state.Manager
}

func (f *flags) open(cmd *cobra.Command) (*app, error) {
	if f.color && f.noColor {
		return nil, usagef("--color and --no-color are mutually exclusive")
	}
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("backend") {
		cfg.Storage.Backend = strings.ToLower(f.backend)
	}
	if cmd.Flags().Changed("path") {
		cfg.Storage.Path = f.path
	}
	if cmd.Flags().Changed("theme") {
		cfg.UI.Theme = strings.ToLower(f.theme)
	}
	if f.verbose {
		cfg.Logger.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(f.color, f.noColor)

	logger, err := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
		File:     cfg.Logger.File,
	})
	if err != nil {
		return nil, err
	}

	kv, err := persist.Open(cfg.Storage)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	entries, err := persist.Restore(kv, cfg.Storage.Key, logger)
	if err != nil {
		kv.Close()
		return nil, err
	}
	logger.Info("started",
		zap.String("command", cmd.Name()),
		zap.String("backend", cfg.Storage.Backend),
		zap.Int("entries", len(entries)))

	a := &app{
		cfg:    cfg,
		logger: logger,
		kv:     kv,
		writer: persist.NewWriter(kv, cfg.Storage.Key, logger),
		mgr:    state.NewManager(state.New(entries), logger),
	}
	a.mgr.Subscribe(a.writer.Save)
	return a, nil
}

// close flushes pending writes and releases the store.
func (a *app) close() error {
	werr := a.writer.Close()
	cerr := a.kv.Close()
	_ = a.logger.Sync()
	if werr != nil {
		return fmt.Errorf("save: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("close store: %w", cerr)
	}
	return nil
}

// withApp opens the application around fn and always closes it.
func (f *flags) withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a, err := f.open(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := a.close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args, a)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "todomvc",
		Short: "TodoMVC in the terminal",
		Long: `todomvc keeps a todo list in a local store.

Run without arguments to open the interactive list.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: f.withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			return tui.Run(a.mgr)
		}),
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "config file (default ./todomvc.yaml)")
	pf.StringVar(&f.backend, "backend", "", "storage backend: file, bolt, sqlite or memory")
	pf.StringVar(&f.path, "path", "", "storage path")
	pf.StringVar(&f.theme, "theme", "", "output theme: classic, neon or mono")
	pf.BoolVar(&f.color, "color", false, "force colored output")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newAddCmd(f),
		newListCmd(f),
		newToggleCmd(f),
		newToggleAllCmd(f),
		newEditCmd(f),
		newRemoveCmd(f),
		newClearCompletedCmd(f),
		newExportCmd(f),
	)
	return root
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	ui.Fail(stderr, err.Error())

	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		return ExitUsage
	}
	if errors.Is(err, persist.ErrUnavailable) {
		ui.Hint(stderr, "check storage.backend and storage.path, or pass --backend/--path")
	}
	return ExitError
}

// Execute runs against the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
