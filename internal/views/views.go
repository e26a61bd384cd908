// Package views derives display data from task snapshots: day filtering,
// display ordering, headline stats, streaks and chart datasets. Every
// function is pure; the reference "today" is always an explicit input.
package views

import (
	"sort"
	"time"

	"github.com/SamirAliWebDev/zenith/internal/chart"
	"github.com/SamirAliWebDev/zenith/internal/model"
)

// TasksOnDay filters the snapshot to tasks dated on the given calendar day.
func TasksOnDay(tasks []model.Task, day time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.IsOn(day) {
			out = append(out, t)
		}
	}
	return out
}

// SortForDisplay orders tasks for the list view: incomplete before
// completed, then High before Medium before Low, then ascending id as a
// creation-order tiebreaker. The input is not modified.
func SortForDisplay(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.ID < b.ID
	})
	return out
}

// DayLabel is the carousel caption for one day.
type DayLabel struct {
	// DayName is "Today", "Tomorrow", "Yesterday" or the weekday name.
	DayName string
	// FullDate is "January 2", with the year appended only when it differs
	// from the reference year.
	FullDate string
}

// LabelFor computes the caption for day relative to referenceToday.
func LabelFor(day, referenceToday time.Time) DayLabel {
	var name string
	switch {
	case model.SameDay(day, referenceToday):
		name = "Today"
	case model.SameDay(day, referenceToday.AddDate(0, 0, 1)):
		name = "Tomorrow"
	case model.SameDay(day, referenceToday.AddDate(0, 0, -1)):
		name = "Yesterday"
	default:
		name = day.Weekday().String()
	}

	full := day.Format("January 2")
	if day.Year() != referenceToday.Year() {
		full = day.Format("January 2, 2006")
	}
	return DayLabel{DayName: name, FullDate: full}
}

// Stats are the headline counts for one day.
type Stats struct {
	Pending   int
	Completed int
}

// TodayStats counts pending and completed tasks dated on referenceToday.
func TodayStats(tasks []model.Task, referenceToday time.Time) Stats {
	var s Stats
	for _, t := range TasksOnDay(tasks, referenceToday) {
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	return s
}

// completedDays returns the distinct calendar days carrying at least one
// completed task, normalized to midnight.
func completedDays(tasks []model.Task) []time.Time {
	seen := make(map[string]time.Time)
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		day := normalize(t.Date)
		seen[day.Format("2006-01-02")] = day
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func normalize(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// CurrentStreak counts consecutive calendar days with at least one
// completed task, ending today or yesterday. It returns 0 when nothing is
// completed or when the most recent completed day is two or more days ago.
// This counts distinct days, not completions.
func CurrentStreak(tasks []model.Task, referenceToday time.Time) int {
	days := completedDays(tasks)
	if len(days) == 0 {
		return 0
	}

	newest := days[len(days)-1]
	yesterday := normalize(referenceToday).AddDate(0, 0, -1)
	if newest.Before(yesterday) {
		return 0
	}

	streak := 1
	for i := len(days) - 2; i >= 0; i-- {
		if days[i].AddDate(0, 0, 1).Equal(days[i+1]) {
			streak++
		} else {
			break
		}
	}
	return streak
}

// LongestStreak returns the longest run of consecutive completed days
// anywhere in history: at least 1 when any completion exists, 0 otherwise.
func LongestStreak(tasks []model.Task) int {
	days := completedDays(tasks)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Dataset colors, shared with the category palette.
const (
	colorCompleted = "#22c55e"
	colorPending   = "#f59e0b"
	colorHigh      = "#ef4444"
	colorMedium    = "#facc15"
	colorLow       = "#4ade80"
	colorPerDay    = "#38bdf8"
)

// AnalysisDataset computes the labeled dataset for a chart analysis.
// AnalysisStreak has no dataset: it displays as a bare number via
// LongestStreak, so it returns nil here.
func AnalysisDataset(tasks []model.Task, analysis model.Analysis, referenceToday time.Time) []chart.Datum {
	switch analysis {
	case model.AnalysisCompletion:
		stats := TodayStats(tasks, referenceToday)
		return []chart.Datum{
			{Label: "Completed", Value: float64(stats.Completed), Color: colorCompleted},
			{Label: "Pending", Value: float64(stats.Pending), Color: colorPending},
		}

	case model.AnalysisPriority:
		counts := map[model.Priority]int{}
		for _, t := range tasks {
			counts[t.Priority]++
		}
		buckets := []struct {
			p     model.Priority
			color string
		}{
			{model.PriorityHigh, colorHigh},
			{model.PriorityMedium, colorMedium},
			{model.PriorityLow, colorLow},
		}
		var out []chart.Datum
		for _, b := range buckets {
			if counts[b.p] == 0 {
				continue
			}
			out = append(out, chart.Datum{Label: string(b.p), Value: float64(counts[b.p]), Color: b.color})
		}
		return out

	case model.AnalysisPerDay:
		counts := map[string]int{}
		days := map[string]time.Time{}
		for _, t := range tasks {
			if !t.Completed {
				continue
			}
			key := t.Date.Format("2006-01-02")
			counts[key]++
			days[key] = normalize(t.Date)
		}
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []chart.Datum
		for _, k := range keys {
			out = append(out, chart.Datum{
				Label: days[k].Format("Jan 2"),
				Value: float64(counts[k]),
				Color: colorPerDay,
			})
		}
		return out
	}

	return nil
}
