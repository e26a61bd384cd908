package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SamirAliWebDev/zenith/internal/model"
	"github.com/SamirAliWebDev/zenith/internal/store"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDesc
	fieldPriority
	fieldDate
	fieldReminder
	fieldCategory
	fieldCount
)

var formPriorities = []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}

// taskForm is the add/edit page: title, description, priority, date,
// optional reminder and category. editID is 0 for a new task.
type taskForm struct {
	title    textinput.Model
	desc     textarea.Model
	priority int
	date     dateInput
	reminder timeInput
	// catCursor indexes model.Predefined; one past the end selects the
	// free-form custom label.
	catCursor int
	custom    textinput.Model

	focus  formField
	editID int
	err    error
}

func newTaskForm(defaultDate time.Time) taskForm {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = "Add more details..."
	ta.CharLimit = 4096
	ta.SetHeight(3)

	custom := textinput.New()
	custom.Placeholder = "emoji or short label"
	custom.CharLimit = 16

	f := taskForm{
		title:    ti,
		desc:     ta,
		priority: 1, // Medium
		date:     newDateInput(),
		reminder: newTimeInput(),
		custom:   custom,
	}
	f.date.SetValue(defaultDate.Format("2006-01-02"))
	f.title.Focus()
	return f
}

// editForm prefills the form from an existing task.
func editForm(t model.Task) taskForm {
	f := newTaskForm(t.Date)
	f.editID = t.ID
	f.title.SetValue(t.Title)
	f.desc.SetValue(t.Description)
	for i, p := range formPriorities {
		if p == t.Priority {
			f.priority = i
		}
	}
	f.reminder.SetValue(t.ReminderTime)
	switch t.Category.Kind {
	case model.CategoryIcon:
		for i, c := range model.Predefined {
			if c.Name == t.Category.Value {
				f.catCursor = i
			}
		}
	case model.CategoryCustom:
		f.catCursor = len(model.Predefined)
		f.custom.SetValue(t.Category.Value)
	}
	return f
}

func (f *taskForm) category() model.Category {
	if f.catCursor < len(model.Predefined) {
		return model.IconCategory(model.Predefined[f.catCursor].Name)
	}
	label := strings.TrimSpace(f.custom.Value())
	if label == "" {
		return model.DefaultCategory()
	}
	return model.CustomCategory(label)
}

// fields validates and assembles the store fields. A blank title refuses
// submission; no error is surfaced beyond staying on the form.
func (f *taskForm) fields() (store.Fields, error) {
	if strings.TrimSpace(f.title.Value()) == "" {
		return store.Fields{}, fmt.Errorf("title is required")
	}
	date, err := f.date.Value()
	if err != nil {
		return store.Fields{}, err
	}
	clock, err := f.reminder.Value()
	if err != nil {
		return store.Fields{}, err
	}
	return store.Fields{
		Title:        f.title.Value(),
		Description:  f.desc.Value(),
		Priority:     formPriorities[f.priority],
		Date:         date,
		Category:     f.category(),
		ReminderTime: clock,
	}, nil
}

func (f *taskForm) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.title.Blur()
	f.desc.Blur()
	f.date.Blur()
	f.reminder.Blur()
	f.custom.Blur()

	switch field {
	case fieldTitle:
		return f.title.Focus()
	case fieldDesc:
		return f.desc.Focus()
	case fieldDate:
		f.date.Focus()
	case fieldReminder:
		f.reminder.Focus()
	case fieldCategory:
		if f.catCursor == len(model.Predefined) {
			return f.custom.Focus()
		}
	}
	return nil
}

func (f taskForm) Update(msg tea.Msg) (taskForm, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "down":
		if f.focus < fieldCount-1 {
			cmd := f.setFocus(f.focus + 1)
			return f, cmd
		}
		return f, nil
	case "up":
		if f.focus > 0 {
			cmd := f.setFocus(f.focus - 1)
			return f, cmd
		}
		return f, nil
	}

	switch f.focus {
	case fieldPriority:
		switch keyMsg.String() {
		case "left", "h":
			if f.priority > 0 {
				f.priority--
			}
			return f, nil
		case "right", "l", " ":
			if f.priority < len(formPriorities)-1 {
				f.priority++
			} else if keyMsg.String() == " " {
				f.priority = 0
			}
			return f, nil
		}
	case fieldCategory:
		if f.catCursor == len(model.Predefined) && f.custom.Focused() {
			// typing the custom label; left/right stay with the input
			break
		}
		switch keyMsg.String() {
		case "left", "h":
			if f.catCursor > 0 {
				f.catCursor--
			}
			return f, nil
		case "right", "l":
			if f.catCursor < len(model.Predefined) {
				f.catCursor++
				if f.catCursor == len(model.Predefined) {
					cmd := f.custom.Focus()
					return f, cmd
				}
			}
			return f, nil
		}
	}

	return f.updateFocused(msg)
}

func (f taskForm) updateFocused(msg tea.Msg) (taskForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDesc:
		f.desc, cmd = f.desc.Update(msg)
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	case fieldReminder:
		f.reminder, cmd = f.reminder.Update(msg)
	case fieldCategory:
		if f.catCursor == len(model.Predefined) {
			f.custom, cmd = f.custom.Update(msg)
		}
	}
	return f, cmd
}

func (f taskForm) View(st styles) string {
	var b strings.Builder

	header := "New Task"
	if f.editID != 0 {
		header = "Edit Task"
	}
	b.WriteString(st.title.Render(header) + "\n\n")

	label := func(field formField, text string) string {
		if f.focus == field {
			return st.navActive.Render("▸ " + text)
		}
		return st.status.Render("  " + text)
	}

	b.WriteString(label(fieldTitle, "Title") + "\n  " + f.title.View() + "\n\n")
	b.WriteString(label(fieldDesc, "Description") + "\n" + f.desc.View() + "\n\n")

	var prios []string
	for i, p := range formPriorities {
		if i == f.priority {
			prios = append(prios, st.navActive.Render("["+string(p)+"]"))
		} else {
			prios = append(prios, st.status.Render(" "+string(p)+" "))
		}
	}
	b.WriteString(label(fieldPriority, "Priority") + "  " + strings.Join(prios, " ") + "\n\n")

	b.WriteString(label(fieldDate, "Date") + "  " + f.date.View() + "\n\n")
	b.WriteString(label(fieldReminder, "Reminder (optional)") + "  " + f.reminder.View() + "\n\n")

	var cats []string
	for i, c := range model.Predefined {
		cell := c.Symbol + " " + c.Name
		if i == f.catCursor {
			cats = append(cats, st.navActive.Render("["+cell+"]"))
		} else {
			cats = append(cats, st.status.Render(cell))
		}
	}
	customCell := "✏ Custom"
	if f.catCursor == len(model.Predefined) {
		customCell = st.navActive.Render("[✏ Custom]") + " " + f.custom.View()
	} else {
		customCell = st.status.Render(customCell)
	}
	b.WriteString(label(fieldCategory, "Category") + "  " + strings.Join(cats, " ") + " " + customCell + "\n")

	if f.err != nil {
		b.WriteString("\n" + st.errText.Render(f.err.Error()) + "\n")
	}

	b.WriteString("\n" + st.status.Render("↑/↓: field • ctrl+s: save • esc: cancel"))
	return b.String()
}
