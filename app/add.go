package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/session"
	"github.com/ayoisaiah/discipline/internal/timeutil"
	"github.com/ayoisaiah/discipline/internal/ui"
)

// parseID reads the task id from the first argument.
func parseID(ctx *cli.Context) (uint64, error) {
	arg := strings.TrimSpace(ctx.Args().First())
	if arg == "" {
		return 0, errMissingArg.Fmt("ID")
	}

	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID.Fmt(arg)
	}

	return id, nil
}

// addAction handles the add command.
func addAction(ctx *cli.Context) error {
	text := strings.Join(ctx.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return errMissingArg.Fmt("TEXT")
	}

	due, err := timeutil.FromStr(ctx.String("due"), time.Now())
	if err != nil {
		return err
	}

	category, err := session.ParseCategory(ctx.String("category"))
	if err != nil {
		return err
	}

	return withSession(ctx, func(store *session.Store) error {
		task, err := store.AddTask(text, due, category)
		if err != nil {
			return err
		}

		pterm.Success.Printfln(
			"Added task %s: %s (due %s)",
			ui.Highlight(task.ID),
			task.Text,
			timeutil.FormatDue(task.Due),
		)

		return nil
	})
}

// completeAction handles the complete command.
func completeAction(ctx *cli.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	return withSession(ctx, func(store *session.Store) error {
		task, err := store.CompleteTask(id)
		if err != nil {
			return err
		}

		pterm.Success.Printfln("Completed task %d: %s", task.ID, task.Text)

		return nil
	})
}
