package session

import (
	"strings"
	"time"
)

// Category groups tasks.
type Category string

const (
	Work     Category = "Work"
	Personal Category = "Personal"
	Errands  Category = "Errands"
)

// Categories lists the valid categories in display order.
var Categories = []Category{Work, Personal, Errands}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}

	return false
}

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)

	for _, v := range Categories {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}

	return "", errUnknownCategory.Fmt(s)
}

// Task is a single entry in the task list. ID is assigned by the store and is
// never reused within a session file.
type Task struct {
	Due       time.Time `json:"due"`
	Text      string    `json:"task"`
	Category  Category  `json:"category"`
	ID        uint64    `json:"id"`
	Completed bool      `json:"completed"`
}
