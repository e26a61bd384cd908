package model

import (
	"fmt"
	"time"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Rank orders priorities for display: High sorts before Medium before Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single dated task owned by the store.
type Task struct {
	ID          int
	Title       string
	Description string
	Priority    Priority
	Completed   bool
	Date        time.Time
	Category    Category
	// ReminderTime is an optional wall-clock "HH:MM"; empty means no reminder.
	ReminderTime string
}

// SameDay reports whether two timestamps fall on the same calendar day.
// Time-of-day is disregarded entirely.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsOn reports whether the task is dated on the given calendar day.
func (t Task) IsOn(day time.Time) bool {
	return SameDay(t.Date, day)
}

// ReminderAt combines the task's date with its HH:MM reminder time.
// The second return is false when no reminder is set or the time is malformed.
func (t Task) ReminderAt() (time.Time, bool) {
	if t.ReminderTime == "" {
		return time.Time{}, false
	}
	clock, err := time.Parse("15:04", t.ReminderTime)
	if err != nil {
		return time.Time{}, false
	}
	at := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, t.Date.Location())
	return at, true
}

// ValidReminderTime reports whether s is an HH:MM wall-clock time.
// The empty string is valid: it means no reminder.
func ValidReminderTime(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func (t Task) String() string {
	state := " "
	if t.Completed {
		state = "x"
	}
	return fmt.Sprintf("[%s] #%d %s (%s, %s)", state, t.ID, t.Title, t.Priority, t.Date.Format("2006-01-02"))
}
