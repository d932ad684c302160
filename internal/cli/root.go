package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/dayplan/internal/config"
	"github.com/Makepad-fr/dayplan/internal/logger"
	"github.com/Makepad-fr/dayplan/internal/planner"
	"github.com/Makepad-fr/dayplan/internal/store"
	"github.com/Makepad-fr/dayplan/internal/store/jsonstore"
	"github.com/Makepad-fr/dayplan/internal/store/memstore"
	"github.com/Makepad-fr/dayplan/internal/store/sqlitestore"
	"github.com/Makepad-fr/dayplan/internal/timeutil"
	"github.com/Makepad-fr/dayplan/internal/ui"
)

// Options tune the runner; zero values are fine for main.
type Options struct {
	Out, Err io.Writer
	Now      func() time.Time
}

// usageError marks bad input; Run maps it to exit code 2.
type usageError struct{ msg, hint string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	slots   store.Slots
	planner *planner.Planner
	now     func() time.Time

	date string
}

// Run executes args and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	ui.SetOutput(opt.Out, opt.Err)
	defer ui.SetOutput(nil, nil)

	a := &app{v: config.New(), now: opt.Now}
	root := a.rootCommand()
	root.SetArgs(args)
	if opt.Out != nil {
		root.SetOut(opt.Out)
	}
	if opt.Err != nil {
		root.SetErr(opt.Err)
	}

	err := root.ExecuteContext(ctx)
	a.close(ctx)
	if err == nil {
		return 0
	}

	var ue usageError
	switch {
	case errors.As(err, &ue):
		ui.Fail(ue.msg)
		if ue.hint != "" {
			ui.Hint(ue.hint)
		}
		return 2
	case isFlagError(err), strings.HasPrefix(err.Error(), "unknown command"):
		ui.Fail(err.Error())
		ui.Hint("Hint: run `dayplan --help` for usage")
		return 2
	default:
		ui.Fail(err.Error())
		return 1
	}
}

// flagErr wraps cobra's flag parsing failures so they exit 2.
type flagErr struct{ error }

func (e flagErr) Unwrap() error { return e.error }

func isFlagError(err error) bool {
	var fe flagErr
	return errors.As(err, &fe)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dayplan",
		Short: "dayplan - a tiny day planner",
		Long: `dayplan keeps timestamped tasks per calendar day, weekly goals and a few
display preferences in local storage.`,
		Example: `  dayplan add "Write report" --start 09:00 --end 10:30
  dayplan ls --date 2024-05-15
  dayplan done 2
  dayplan goal add "Run 20km"
  dayplan tui`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return flagErr{err} })

	pf := root.PersistentFlags()
	pf.String(config.KeyDataDir, "", "directory holding the planner slots (default ~/.dayplan)")
	pf.String(config.KeyStore, config.BackendJSON, "storage backend: json|sqlite|memory")
	pf.String(config.KeyTheme, "classic", "output theme: classic|neon|mono")
	pf.String(config.KeyLogLevel, "warn", "diagnostic log level: debug|info|warn|error")
	pf.Bool(config.KeyNoColor, false, "disable colored output")
	pf.StringVar(&a.date, "date", "", "selected day as YYYY-MM-DD (default today)")

	root.AddCommand(
		a.addCommand(),
		a.listCommand(),
		a.doneCommand(),
		a.removeCommand(),
		a.weekCommand(),
		a.goalCommand(),
		a.settingsCommand(),
		a.tuiCommand(),
		a.serveCommand(),
	)
	return root
}

// setup resolves config, applies theme/logging and loads the planner.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" {
		return nil
	}
	ctx := cmd.Context()
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return usagef("config: %v", err)
	}
	a.cfg = cfg

	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	ui.SetColorForcing(false, cfg.NoColor)
	ui.SetTheme(cfg.Theme)

	if a.date == "" {
		a.date = timeutil.Today(a.now())
	} else {
		d, err := timeutil.ParseDate(a.date)
		if err != nil {
			return usagef("--date: %v", err)
		}
		a.date = timeutil.FormatDate(d)
	}

	slots, err := openSlots(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.slots = slots

	p, err := planner.Open(ctx, slots)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	a.planner = p
	logger.Debug(ctx, "store opened", "backend", cfg.Backend, "dir", cfg.DataDir)
	return nil
}

func (a *app) close(ctx context.Context) {
	if a.slots == nil {
		return
	}
	if err := a.slots.Close(); err != nil {
		logger.Error(ctx, err, "close store")
	}
	a.slots = nil
}

func openSlots(ctx context.Context, cfg config.Config) (store.Slots, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlitestore.Open(ctx, cfg.SQLitePath())
	case config.BackendMemory:
		return memstore.New(), nil
	default:
		return jsonstore.Open(cfg.DataDir)
	}
}
