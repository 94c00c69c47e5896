package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/discipline/internal/session"
	"github.com/ayoisaiah/discipline/internal/timeutil"
)

// taskDraft holds the values bound to the add-task form.
type taskDraft struct {
	text     string
	due      string
	category string
}

func categoryOptions() []huh.Option[string] {
	names := make([]string, len(session.Categories))
	for i, c := range session.Categories {
		names[i] = string(c)
	}

	return huh.NewOptions(names...)
}

func newTaskForm(d *taskDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(&d.text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("task text cannot be empty")
					}

					return nil
				}),
			huh.NewInput().
				Title("Due").
				Description("Leave empty for now. Accepts 'tomorrow 5pm' or "+timeutil.DueLayout).
				Value(&d.due).
				Validate(func(s string) error {
					_, err := timeutil.FromStr(s, time.Now())
					return err
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&d.category),
		),
	)
}

func (d *taskDraft) parse(now time.Time) (time.Time, session.Category, error) {
	due, err := timeutil.FromStr(d.due, now)
	if err != nil {
		return time.Time{}, "", err
	}

	category, err := session.ParseCategory(d.category)
	if err != nil {
		return time.Time{}, "", err
	}

	return due, category, nil
}
