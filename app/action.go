package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/config"
	"github.com/ayoisaiah/discipline/internal/history"
	"github.com/ayoisaiah/discipline/internal/logutil"
	"github.com/ayoisaiah/discipline/internal/notify"
	"github.com/ayoisaiah/discipline/internal/pathutil"
	"github.com/ayoisaiah/discipline/internal/session"
	"github.com/ayoisaiah/discipline/internal/tui"
	"github.com/ayoisaiah/discipline/internal/ui"
)

const (
	envNoColor           = "NO_COLOR"
	envDisciplineNoColor = "DISCIPLINE_NO_COLOR"
)

var logFile io.Closer

// loadConfig assembles the configuration. The first run prompt is only shown
// for the interactive interface.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	paths := pathutil.Must()

	opts := []config.Option{config.WithPaths(paths)}

	if prompt {
		opts = append(opts, config.WithPromptConfig(paths.ConfigFilePath()))
	}

	opts = append(
		opts,
		config.WithViperConfig(paths.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug("config loaded", slog.String("config", cfg.String()))

	return cfg, nil
}

// warnLoad reports a session file that could not be loaded. The store falls
// back to an empty task list, so the command carries on.
func warnLoad(path string, err error) {
	pterm.Warning.Printfln(
		"%s could not be loaded, starting with an empty session: %v",
		path,
		err,
	)
}

// openStore loads the session file without taking the instance lock.
func openStore(cfg *config.Config) *session.Store {
	store, err := session.Open(cfg.SessionFile(), cfg.StoreOptions()...)
	if err != nil {
		warnLoad(store.Path(), err)
	}

	return store
}

// lockSession takes the instance lock through the history database and then
// loads the session file, so that no other process writes it concurrently.
func lockSession(cfg *config.Config) (*session.Store, *history.Client, error) {
	db, err := history.NewClient(cfg.System.HistoryPath)
	if err != nil {
		return nil, nil, err
	}

	return openStore(cfg), db, nil
}

// withSession runs fn against a locked session and releases it afterwards.
func withSession(
	ctx *cli.Context,
	fn func(store *session.Store) error,
) (err error) {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	store, db, err := lockSession(cfg)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, store.Close(), db.Close())
	}()

	return fn(store)
}

// defaultAction opens the interactive interface.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	store, db, err := lockSession(cfg)
	if err != nil {
		return err
	}

	defer db.Close()

	m := tui.New(cfg, store, db, notify.New(cfg))

	_, err = tea.NewProgram(m).Run()

	return errors.Join(err, store.Close())
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	// Disable colour output if DISCIPLINE_NO_COLOR is set
	if _, exists := os.LookupEnv(envDisciplineNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return fmt.Errorf("unable to set up file locations: %w", err)
	}

	logFile = logutil.Init(pathutil.Must().LogFilePath())

	slog.InfoContext(
		ctx.Context,
		"starting discipline",
		slog.Any("args", ctx.Args().Slice()),
		slog.String("version", config.Version),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting discipline")

	if logFile != nil {
		return logFile.Close()
	}

	return nil
}
