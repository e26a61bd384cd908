package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func digitField(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit + 2
	ti.Validate = func(s string) error {
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return fmt.Errorf("digits only")
			}
		}
		return nil
	}
	return ti
}

type dateInput struct {
	fields [3]textinput.Model // 0:YYYY, 1:MM, 2:DD
	focus  int
}

func newDateInput() dateInput {
	return dateInput{fields: [3]textinput.Model{
		digitField("YYYY", 4),
		digitField("MM", 2),
		digitField("DD", 2),
	}}
}

func (d *dateInput) Focus() {
	d.focus = 0
	d.fields[0].Focus()
	d.fields[1].Blur()
	d.fields[2].Blur()
}

func (d *dateInput) Blur() {
	for i := range d.fields {
		d.fields[i].Blur()
	}
}

func (d *dateInput) SetValue(date string) {
	parts := strings.SplitN(date, "-", 3)
	for i := 0; i < 3; i++ {
		if i < len(parts) {
			d.fields[i].SetValue(parts[i])
		} else {
			d.fields[i].SetValue("")
		}
	}
}

// Value assembles the date, defaulting the year and month to the current
// ones when left blank. The day field is required.
func (d *dateInput) Value() (time.Time, error) {
	now := time.Now()

	yyyy := strings.TrimSpace(d.fields[0].Value())
	mm := strings.TrimSpace(d.fields[1].Value())
	dd := strings.TrimSpace(d.fields[2].Value())

	if yyyy == "" {
		yyyy = fmt.Sprintf("%04d", now.Year())
	}
	if mm == "" {
		mm = fmt.Sprintf("%02d", int(now.Month()))
	}
	if dd == "" {
		return time.Time{}, fmt.Errorf("day is required")
	}

	dateStr := fmt.Sprintf("%s-%s-%s", yyyy, padLeft(mm, 2), padLeft(dd, 2))

	ts, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s", dateStr)
	}
	return ts, nil
}

func padLeft(s string, length int) string {
	for len(s) < length {
		s = "0" + s
	}
	return s
}

func (d *dateInput) IsEmpty() bool {
	return d.fields[0].Value() == "" && d.fields[1].Value() == "" && d.fields[2].Value() == ""
}

func (d *dateInput) focusField(idx int) tea.Cmd {
	d.focus = idx
	var cmds []tea.Cmd
	for i := range d.fields {
		if i == idx {
			cmds = append(cmds, d.fields[i].Focus())
		} else {
			d.fields[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

func (d dateInput) Update(msg tea.Msg) (dateInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "right":
			if d.focus < 2 {
				cmd := d.focusField(d.focus + 1)
				return d, cmd
			}
			return d, nil
		case "shift+tab", "left":
			if d.focus > 0 {
				cmd := d.focusField(d.focus - 1)
				return d, cmd
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.fields[d.focus], cmd = d.fields[d.focus].Update(msg)
	return d, cmd
}

func (d dateInput) View() string {
	return d.fields[0].View() + " - " + d.fields[1].View() + " - " + d.fields[2].View()
}

// timeInput is the HH:MM counterpart of dateInput, used for reminders.
// Leaving both fields blank means no reminder.
type timeInput struct {
	fields [2]textinput.Model // 0:HH, 1:MM
	focus  int
}

func newTimeInput() timeInput {
	return timeInput{fields: [2]textinput.Model{
		digitField("HH", 2),
		digitField("MM", 2),
	}}
}

func (t *timeInput) Focus() {
	t.focus = 0
	t.fields[0].Focus()
	t.fields[1].Blur()
}

func (t *timeInput) Blur() {
	for i := range t.fields {
		t.fields[i].Blur()
	}
}

func (t *timeInput) SetValue(clock string) {
	parts := strings.SplitN(clock, ":", 2)
	for i := 0; i < 2; i++ {
		if i < len(parts) {
			t.fields[i].SetValue(parts[i])
		} else {
			t.fields[i].SetValue("")
		}
	}
}

func (t *timeInput) IsEmpty() bool {
	return t.fields[0].Value() == "" && t.fields[1].Value() == ""
}

// Value returns the "HH:MM" string, or "" when both fields are blank.
func (t *timeInput) Value() (string, error) {
	if t.IsEmpty() {
		return "", nil
	}
	hh := padLeft(strings.TrimSpace(t.fields[0].Value()), 2)
	mm := strings.TrimSpace(t.fields[1].Value())
	if mm == "" {
		mm = "00"
	}
	clock := hh + ":" + padLeft(mm, 2)
	if _, err := time.Parse("15:04", clock); err != nil {
		return "", fmt.Errorf("invalid time: %s", clock)
	}
	return clock, nil
}

func (t timeInput) Update(msg tea.Msg) (timeInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "right":
			if t.focus == 0 {
				t.focus = 1
				t.fields[0].Blur()
				cmd := t.fields[1].Focus()
				return t, cmd
			}
			return t, nil
		case "shift+tab", "left":
			if t.focus == 1 {
				t.focus = 0
				t.fields[1].Blur()
				cmd := t.fields[0].Focus()
				return t, cmd
			}
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.fields[t.focus], cmd = t.fields[t.focus].Update(msg)
	return t, cmd
}

func (t timeInput) View() string {
	return t.fields[0].View() + " : " + t.fields[1].View()
}
