package app

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/discipline/internal/session"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	dataFileFlag = &cli.StringFlag{
		Name:  "data-file",
		Usage: "Read and write the session from this file instead of the default location",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a phase is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each phase",
	}

	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (default: 25)",
	}

	breakFlag = &cli.StringFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Break duration in minutes (default: 5)",
	}

	autoStartWorkFlag = &cli.BoolFlag{
		Name:  "auto-start-work",
		Usage: "Keep the timer running when a break ends",
	}

	autoStartBreakFlag = &cli.BoolFlag{
		Name:  "auto-start-break",
		Usage: "Keep the timer running when a work phase ends",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	dueFlag = &cli.StringFlag{
		Name:  "due",
		Usage: "Due date in 'YYYY-MM-DD HH:MM:SS' format or natural language (e.g. 'tomorrow 5pm'). Defaults to now",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Task category: " + categoryNames(),
		Value:   string(session.Work),
	}

	allFlag = &cli.BoolFlag{
		Name:    "all",
		Aliases: []string{"a"},
		Usage:   "Include completed tasks",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort tasks by position, due or text",
		Value: sortPosition,
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Show phases that ended after this date (e.g. '3 days ago'). Defaults to 7 days",
	}
)

func categoryNames() string {
	names := make([]string, len(session.Categories))
	for i, c := range session.Categories {
		names[i] = string(c)
	}

	return strings.Join(names, ", ")
}
