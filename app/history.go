package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/config"
	"github.com/ayoisaiah/discipline/internal/history"
	"github.com/ayoisaiah/discipline/internal/session"
	"github.com/ayoisaiah/discipline/internal/timeutil"
	"github.com/ayoisaiah/discipline/internal/ui"
)

const (
	defaultHistoryPeriod = 7 * 24 * time.Hour
	noHistoryMsg         = "No phases found for the specified time range"
	historyTimeFormat    = "Jan 02, 2006 03:04 PM"
)

// historySince resolves the --since flag against now.
func historySince(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return now.Add(-defaultHistoryPeriod), nil
	}

	return timeutil.FromStr(s, now)
}

func printHistoryTable(w io.Writer, records []history.Record) error {
	tableBody := make([][]string, 0, len(records)+1)
	tableBody = append(tableBody, []string{"#", "PHASE", "STARTED", "ENDED", "DURATION"})

	for i := range records {
		r := records[i]

		phase := ui.Green(r.Phase)
		if r.Phase != session.PhaseWork {
			phase = ui.Blue(r.Phase)
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			phase,
			r.StartedAt.Local().Format(historyTimeFormat),
			r.EndedAt.Local().Format(historyTimeFormat),
			r.Duration.String(),
		})
	}

	return ui.PrintTable(tableBody, w)
}

// historyAction lists the phases recorded by the interactive timer. It needs
// the history database, so it cannot run while the timer is open.
func historyAction(ctx *cli.Context) error {
	since, err := historySince(ctx.String("since"), time.Now())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := history.NewClient(cfg.System.HistoryPath)
	if err != nil {
		return err
	}

	defer db.Close()

	records, err := db.List(since, time.Time{})
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(config.Stdout, records)
	}

	if len(records) == 0 {
		pterm.Info.Println(noHistoryMsg)
		return nil
	}

	return printHistoryTable(config.Stdout, records)
}
