package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/SamirAliWebDev/zenith/internal/model"
)

func TestCarousel_BoundsAndSelection(t *testing.T) {
	today := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)
	c := newCarousel(today)

	if !model.SameDay(c.Selected(), today) {
		t.Fatalf("initial selection = %v, want today", c.Selected())
	}

	c.Prev() // already at the left edge
	if !model.SameDay(c.Selected(), today) {
		t.Fatalf("Prev at edge moved selection to %v", c.Selected())
	}

	for i := 0; i < 20; i++ {
		c.Next()
	}
	want := today.AddDate(0, 0, carouselDays-1)
	if !model.SameDay(c.Selected(), want) {
		t.Fatalf("Next past edge = %v, want %v", c.Selected(), want)
	}
}

func TestTaskItem_Title(t *testing.T) {
	item := taskItem{task: model.Task{
		ID:        1,
		Title:     "Water the plants",
		Priority:  model.PriorityHigh,
		Category:  model.IconCategory("Personal"),
		Completed: false,
	}}
	title := item.Title()
	if !strings.HasPrefix(title, "[ ]") {
		t.Fatalf("incomplete task title = %q, want [ ] prefix", title)
	}
	if !strings.Contains(title, "Water the plants") {
		t.Fatalf("title missing task text: %q", title)
	}

	item.task.Completed = true
	item.task.ReminderTime = "08:15"
	title = item.Title()
	if !strings.HasPrefix(title, "[x]") {
		t.Fatalf("completed task title = %q, want [x] prefix", title)
	}
	if !strings.Contains(title, "08:15") {
		t.Fatalf("title missing reminder: %q", title)
	}
}

func TestFitLabel(t *testing.T) {
	if got := fitLabel("Mon", 6); got != "Mon   " {
		t.Fatalf("fitLabel pad = %q", got)
	}
	if got := fitLabel("Wednesday", 3); got != "Wed" {
		t.Fatalf("fitLabel truncate = %q", got)
	}
}
