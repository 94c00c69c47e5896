package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/session"
)

// removeAction handles the remove command which deletes a task, pending or
// completed, from the session file.
func removeAction(ctx *cli.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	return withSession(ctx, func(store *session.Store) error {
		if err := store.RemoveTask(id); err != nil {
			return err
		}

		pterm.Success.Printfln("Removed task %d", id)

		return nil
	})
}
