package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/config"
	"github.com/ayoisaiah/discipline/internal/session"
	"github.com/ayoisaiah/discipline/internal/timeutil"
	"github.com/ayoisaiah/discipline/internal/ui"
)

const (
	sortPosition = "position"
	sortDue      = "due"
	sortText     = "text"
)

const noTasksMsg = "No tasks found"

// sortTasks orders tasks in place. Position keeps the order in which the
// tasks were added.
func sortTasks(tasks []session.Task, order string) error {
	switch order {
	case sortPosition, "":
	case sortDue:
		slices.SortStableFunc(tasks, func(a, b session.Task) int {
			return a.Due.Compare(b.Due)
		})
	case sortText:
		slices.SortStableFunc(tasks, func(a, b session.Task) int {
			switch {
			case natural.Less(a.Text, b.Text):
				return -1
			case natural.Less(b.Text, a.Text):
				return 1
			default:
				return 0
			}
		})
	default:
		return errInvalidSort.Fmt(order)
	}

	return nil
}

// printTasksTable prints a task table to w. The status column is only shown
// when completed tasks are included.
func printTasksTable(w io.Writer, tasks []session.Task, withStatus bool) error {
	header := []string{"ID", "TASK", "DUE", "CATEGORY"}
	if withStatus {
		header = append(header, "STATUS")
	}

	tableBody := make([][]string, 0, len(tasks)+1)
	tableBody = append(tableBody, header)

	for i := range tasks {
		task := tasks[i]

		row := []string{
			strconv.FormatUint(task.ID, 10),
			task.Text,
			timeutil.FormatDue(task.Due),
			string(task.Category),
		}

		if withStatus {
			statusText := ui.Yellow("pending")
			if task.Completed {
				statusText = ui.Green("completed")
			}

			row = append(row, statusText)
		}

		tableBody = append(tableBody, row)
	}

	return ui.PrintTable(tableBody, w)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listAction handles the list command and prints a table of tasks.
func listAction(ctx *cli.Context) error {
	order := ctx.String("sort")
	if err := sortTasks(nil, order); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	defer store.Close()

	tasks := store.Pending()
	if ctx.Bool("all") {
		tasks = store.Tasks()
	}

	_ = sortTasks(tasks, order)

	if ctx.Bool("json") {
		return printJSON(config.Stdout, tasks)
	}

	if len(tasks) == 0 {
		pterm.Info.Println(noTasksMsg)
		return nil
	}

	return printTasksTable(config.Stdout, tasks, ctx.Bool("all"))
}
