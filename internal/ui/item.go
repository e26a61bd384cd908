package ui

import (
	"fmt"

	"github.com/SamirAliWebDev/zenith/internal/model"
)

// taskItem wraps model.Task to satisfy the list.DefaultItem interface.
type taskItem struct {
	task model.Task
}

var priorityMarks = map[model.Priority]string{
	model.PriorityHigh:   "!!",
	model.PriorityMedium: "! ",
	model.PriorityLow:    "  ",
}

func (i taskItem) Title() string {
	check := "[ ]"
	if i.task.Completed {
		check = "[x]"
	}
	reminder := ""
	if i.task.ReminderTime != "" {
		reminder = " ⏰" + i.task.ReminderTime
	}
	return fmt.Sprintf("%s %s %s %s%s", check, priorityMarks[i.task.Priority], i.task.Category.Symbol(), i.task.Title, reminder)
}

func (i taskItem) Description() string {
	return i.task.Description
}

func (i taskItem) FilterValue() string {
	return i.task.Title
}
