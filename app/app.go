// Package app wires the discipline command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/config"
)

// Get retrieves the discipline app instance.
func Get() *cli.App {
	disciplineApp := &cli.App{
		Name: "discipline",
		Usage: `
		Discipline keeps a task list next to a work/break countdown timer.
		Run it without a command to open the interactive interface.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a task to the list",
				ArgsUsage: "TEXT",
				Flags:     []cli.Flag{dueFlag, categoryFlag},
				Action:    addAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List pending tasks",
				Flags:   []cli.Flag{allFlag, jsonFlag, sortFlag},
				Action:  listAction,
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove a task",
				ArgsUsage: "ID",
				Action:    removeAction,
			},
			{
				Name:      "complete",
				Aliases:   []string{"done"},
				Usage:     "Mark a task as completed",
				ArgsUsage: "ID",
				Action:    completeAction,
			},
			{
				Name:   "report",
				Usage:  "Show completed tasks and estimated pomodoros",
				Flags:  []cli.Flag{jsonFlag},
				Action: reportAction,
			},
			{
				Name:   "status",
				Usage:  "Print the saved timer state",
				Flags:  []cli.Flag{jsonFlag},
				Action: statusAction,
			},
			{
				Name:   "history",
				Usage:  "List completed work and break phases",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			breakFlag,
			autoStartWorkFlag,
			autoStartBreakFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			dataFileFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return disciplineApp
}
