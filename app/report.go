package app

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/config"
	"github.com/ayoisaiah/discipline/internal/session"
	"github.com/ayoisaiah/discipline/internal/timeutil"
	"github.com/ayoisaiah/discipline/internal/ui"
)

// timerStatus is the JSON form of the status command.
type timerStatus struct {
	Phase            session.Phase `json:"phase"`
	Clock            string        `json:"clock"`
	RemainingSeconds int           `json:"remaining_seconds"`
}

func printReport(w io.Writer, r session.Report) error {
	chart, err := ui.BarChart([]ui.Bar{
		{Label: "Tasks Completed", Value: r.CompletedTasks},
		{Label: "Pomodoros Completed", Value: r.PomodorosCompleted},
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		w,
		"%s\n%s",
		ui.Blue(fmt.Sprintf("Progress (%d tasks in total)", r.TotalTasks)),
		chart,
	)

	return err
}

// reportAction prints the completed task and pomodoro counts.
func reportAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	defer store.Close()

	r := store.Report()

	if ctx.Bool("json") {
		return printJSON(config.Stdout, r)
	}

	return printReport(config.Stdout, r)
}

func statusText(t session.TimerState) string {
	label := ui.Green("[Work]")
	if t.Phase() == session.PhaseBreak {
		label = ui.Blue("[Break]")
	}

	return fmt.Sprintf("%s: %s", label, timeutil.Clock(t.RemainingSeconds))
}

// statusAction prints the timer state as of the last save.
func statusAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	defer store.Close()

	t := store.Timer()

	if ctx.Bool("json") {
		return printJSON(config.Stdout, timerStatus{
			Phase:            t.Phase(),
			Clock:            timeutil.Clock(t.RemainingSeconds),
			RemainingSeconds: t.RemainingSeconds,
		})
	}

	_, err = fmt.Fprintln(config.Stdout, statusText(t))

	return err
}
