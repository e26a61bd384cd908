// Package ui is the Bubble Tea presentation layer: page navigation, the
// task list and date carousel, forms, the tracker charts and settings. It
// consumes the views package for all derived data and calls the store's
// mutators; it never computes over tasks itself.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SamirAliWebDev/zenith/internal/importer"
	"github.com/SamirAliWebDev/zenith/internal/model"
	"github.com/SamirAliWebDev/zenith/internal/storage"
	"github.com/SamirAliWebDev/zenith/internal/store"
	"github.com/SamirAliWebDev/zenith/internal/views"
)

type page int

const (
	pageHome page = iota
	pageTasks
	pageForm
	pageTracker
	pageSettings
)

var pageNames = []string{"Home", "Tasks", "Add", "Tracker", "Settings"}

type appState int

const (
	stateNormal appState = iota
	stateConfirmDelete
	statePickAnalysis
	statePickType
)

// ReminderMsg is delivered into the program loop when a task reminder
// fires. main wires the scheduler's callback to Program.Send with this.
type ReminderMsg struct {
	Task model.Task
}

type clearFlashMsg struct{}
type clearBannerMsg struct{}

type extraKeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Copy   key.Binding
}

func newExtraKeyMap() extraKeyMap {
	return extraKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a/n", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "x"),
			key.WithHelp("enter/x", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy day"),
		),
	}
}

// Model is the top-level Bubble Tea model for the Zenith TUI.
type Model struct {
	store  *store.TaskStore
	kv     storage.KV
	graphs *model.GraphSet
	theme  model.Theme
	st     styles

	page     page
	state    appState
	carousel carousel
	list     list.Model
	keys     extraKeyMap
	form     taskForm
	tracker  tracker

	pick      int
	confirmID int
	flash     string
	banner    string
	err       error

	width  int
	height int
	now    func() time.Time
}

// NewModel builds the TUI model around an already-loaded store.
func NewModel(s *store.TaskStore, kv storage.KV) Model {
	keys := newExtraKeyMap()

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	l := list.New(nil, delegate, 0, 0)
	l.Title = "TODO"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("task", "tasks")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Toggle, keys.Delete, keys.Copy}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	theme := store.LoadTheme(kv)
	graphs := &model.GraphSet{}
	m := Model{
		store:    s,
		kv:       kv,
		graphs:   graphs,
		theme:    theme,
		st:       newStyles(theme),
		page:     pageHome,
		carousel: newCarousel(time.Now()),
		list:     l,
		keys:     keys,
		now:      time.Now,
	}
	m.tracker = tracker{graphs: graphs}
	m.list.Styles.Title = m.st.title
	m.refreshList()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshList() {
	day := m.carousel.Selected()
	tasks := views.SortForDisplay(views.TasksOnDay(m.store.All(), day))
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{task: t}
	}
	m.list.SetItems(items)
}

func (m *Model) selectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.task, true
}

func flashAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearFlashMsg{} })
}

func bannerAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearBannerMsg{} })
}

func ringBell() tea.Msg {
	fmt.Fprint(os.Stderr, "\a")
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := m.st.app.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-8)
		return m, nil

	case ReminderMsg:
		m.banner = "⏰ Reminder: " + msg.Task.Title
		return m, tea.Batch(ringBell, bannerAfter(10*time.Second))

	case clearFlashMsg:
		m.flash = ""
		return m, nil

	case clearBannerMsg:
		m.banner = ""
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.state {
	case stateConfirmDelete:
		return m.updateConfirm(msg)
	case statePickAnalysis, statePickType:
		return m.updatePicker(msg)
	}

	if m.page == pageForm {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch keyMsg.String() {
		case "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5":
			return m.switchPage(page(int(keyMsg.String()[0] - '1'))), nil
		case "tab":
			next := m.page + 1
			if next > pageSettings {
				next = pageHome
			}
			return m.switchPage(next), nil
		}
	}

	switch m.page {
	case pageTasks:
		return m.updateTasks(msg)
	case pageTracker:
		return m.updateTracker(msg)
	case pageSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m Model) switchPage(p page) Model {
	if p == pageForm {
		m.form = newTaskForm(m.carousel.Selected())
	}
	m.page = p
	m.err = nil
	return m
}

func (m Model) updateTasks(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch keyMsg.String() {
		case "h", "left":
			m.carousel.Prev()
			m.refreshList()
			return m, nil
		case "l", "right":
			m.carousel.Next()
			m.refreshList()
			return m, nil
		case "a", "n":
			return m.switchPage(pageForm), nil
		case "e":
			if t, ok := m.selectedTask(); ok {
				m.form = editForm(t)
				m.page = pageForm
				return m, nil
			}
		case "enter", "x":
			if t, ok := m.selectedTask(); ok {
				m.store.ToggleComplete(t.ID)
				m.refreshList()
				return m.maybeAward(t)
			}
		case "d":
			if t, ok := m.selectedTask(); ok {
				m.state = stateConfirmDelete
				m.confirmID = t.ID
				return m, nil
			}
		case "y":
			return m.copyDay()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// maybeAward shows a congratulation when the toggle just completed the last
// pending task of today.
func (m Model) maybeAward(toggled model.Task) (tea.Model, tea.Cmd) {
	today := m.now()
	if !toggled.IsOn(today) {
		return m, nil
	}
	current, ok := m.store.Get(toggled.ID)
	if !ok || !current.Completed {
		return m, nil
	}
	stats := views.TodayStats(m.store.All(), today)
	if stats.Pending == 0 && stats.Completed > 0 {
		m.banner = "🏆 All done for today. Nicely played!"
		return m, bannerAfter(8 * time.Second)
	}
	return m, nil
}

func (m Model) copyDay() (tea.Model, tea.Cmd) {
	day := m.carousel.Selected()
	tasks := views.SortForDisplay(views.TasksOnDay(m.store.All(), day))
	if len(tasks) == 0 {
		m.flash = "Nothing to copy"
		return m, flashAfter(3 * time.Second)
	}
	payload, err := importer.Export(tasks)
	if err != nil {
		m.err = err
		return m, nil
	}
	if err := clipboard.WriteAll(payload); err != nil {
		m.err = err
		return m, nil
	}
	m.flash = fmt.Sprintf("Copied %d tasks to clipboard", len(tasks))
	return m, flashAfter(3 * time.Second)
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			m.store.Delete(m.confirmID)
			m.refreshList()
			m.state = stateNormal
			return m, nil
		case "n", "esc":
			m.state = stateNormal
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.page = pageTasks
			m.refreshList()
			return m, nil
		case "ctrl+s":
			fields, err := m.form.fields()
			if err != nil {
				m.form.err = err
				return m, nil
			}
			if m.form.editID != 0 {
				m.store.Update(m.form.editID, fields)
			} else {
				m.store.Create(fields)
			}
			m.page = pageTasks
			m.refreshList()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateTracker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "a", "n", "g":
			m.state = statePickAnalysis
			m.pick = 0
			return m, nil
		case "j", "down":
			if m.tracker.cursor < m.graphs.Len()-1 {
				m.tracker.cursor++
			}
			return m, nil
		case "k", "up":
			if m.tracker.cursor > 0 {
				m.tracker.cursor--
			}
			return m, nil
		case "d":
			graphs := m.graphs.All()
			if m.tracker.cursor < len(graphs) {
				m.graphs.Remove(graphs[m.tracker.cursor].ID)
				m.tracker.clampCursor()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	count := len(trackerAnalyses)
	if m.state == statePickType {
		count = len(trackerChartTypes)
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.pick < count-1 {
			m.pick++
		}
	case "k", "up":
		if m.pick > 0 {
			m.pick--
		}
	case "esc":
		m.state = stateNormal
	case "enter", " ":
		if m.state == statePickAnalysis {
			m.tracker.picked = trackerAnalyses[m.pick]
			if m.tracker.picked == model.AnalysisStreak {
				// streak shows as a number; the chart type is meaningless
				return m.addGraph(model.ChartBar), nil
			}
			m.state = statePickType
			m.pick = 0
			return m, nil
		}
		return m.addGraph(trackerChartTypes[m.pick]), nil
	}
	return m, nil
}

func (m Model) addGraph(chartType model.ChartType) Model {
	if !m.graphs.Add(m.tracker.picked, chartType) {
		m.flash = fmt.Sprintf("Graph limit reached (%d)", model.MaxGraphs)
	}
	m.state = stateNormal
	return m
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "t":
			m.theme = m.theme.Toggle()
			m.st = newStyles(m.theme)
			m.list.Styles.Title = m.st.title
			store.SaveTheme(m.kv, m.theme)
			return m, nil
		case "i":
			return m.importClipboard()
		}
	}
	return m, nil
}

func (m Model) importClipboard() (tea.Model, tea.Cmd) {
	payload, err := clipboard.ReadAll()
	if err != nil {
		m.err = err
		return m, nil
	}
	count, err := importer.Import(m.store, payload, m.now())
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.refreshList()
	m.flash = fmt.Sprintf("Imported %d tasks", count)
	return m, flashAfter(3 * time.Second)
}

func (m Model) navView() string {
	var cells []string
	for i, name := range pageNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if page(i) == m.page {
			cells = append(cells, m.st.navActive.Render(label))
		} else {
			cells = append(cells, m.st.navInactive.Render(label))
		}
	}
	return strings.Join(cells, m.st.status.Render(" · "))
}

func (m Model) View() string {
	var body string
	switch {
	case m.state == stateConfirmDelete:
		body = m.confirmView()
	case m.state == statePickAnalysis || m.state == statePickType:
		body = m.pickerView()
	default:
		switch m.page {
		case pageHome:
			body = m.homeView()
		case pageTasks:
			body = m.tasksView()
		case pageForm:
			body = m.form.View(m.st)
		case pageTracker:
			body = m.trackerView()
		case pageSettings:
			body = m.settingsView()
		}
	}

	var extra string
	if m.banner != "" {
		extra += "\n" + m.st.banner.Render(m.banner)
	}
	if m.flash != "" {
		extra += "\n" + m.st.status.Render(m.flash)
	}
	if m.err != nil {
		extra += "\n" + m.st.errText.Render("Error: "+m.err.Error())
	}

	return m.st.app.Render(m.navView() + "\n\n" + body + extra)
}

func (m Model) homeView() string {
	today := m.now()
	stats := views.TodayStats(m.store.All(), today)
	total := stats.Pending + stats.Completed

	card := func(count int, label string) string {
		return m.st.statCard.Render(
			m.st.statNumber.Render(fmt.Sprintf("%d", count)) + "\n" + m.st.statLabel.Render(label),
		)
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card(total, "TOTAL"), " ", card(stats.Completed, "COMPLETED"), " ", card(stats.Pending, "PENDING"))

	streak := views.CurrentStreak(m.store.All(), today)
	streakLine := m.st.status.Render("No streak yet. Complete a task to start one.")
	if streak > 0 {
		streakLine = m.st.statNumber.Render(fmt.Sprintf("🔥 %d-day streak", streak))
	}

	return m.st.title.Render("Welcome to Zenith") + "\n" +
		m.st.status.Render(today.Format("Monday, January 2")) + "\n\n" +
		cards + "\n\n" +
		streakLine + "\n\n" +
		m.st.quote.Render("\"The secret of getting ahead is getting started.\"\n— Mark Twain")
}

func (m Model) tasksView() string {
	return m.carousel.View(m.st, m.now()) + "\n\n" + m.list.View()
}

func (m Model) confirmView() string {
	title := ""
	if t, ok := m.store.Get(m.confirmID); ok {
		title = t.Title
	}
	return m.st.confirm.Render("Delete Task?") + "\n\n" +
		"  " + title + "\n\n" +
		m.st.status.Render("y: delete • n/esc: cancel")
}

func (m Model) pickerView() string {
	header := "Analysis"
	options := make([]string, 0, len(trackerAnalyses))
	if m.state == statePickAnalysis {
		for _, a := range trackerAnalyses {
			options = append(options, string(a))
		}
	} else {
		header = "Chart Type"
		for _, t := range trackerChartTypes {
			options = append(options, string(t))
		}
	}

	var lines []string
	for i, opt := range options {
		cursor := "  "
		if i == m.pick {
			cursor = "> "
		}
		lines = append(lines, cursor+opt)
	}
	return m.st.title.Render(header) + "\n\n" +
		strings.Join(lines, "\n") + "\n\n" +
		m.st.status.Render("j/k: move • enter: select • esc: cancel")
}

func (m Model) trackerView() string {
	if m.graphs.Len() == 0 {
		return m.st.title.Render("Tracker") + "\n" +
			m.st.status.Render("Track your progress and productivity.") + "\n\n" +
			m.st.status.Render("a: generate a graph (up to 4)")
	}

	today := m.now()
	tasks := m.store.All()
	var cards []string
	for i, cfg := range m.graphs.All() {
		card := renderGraph(cfg, tasks, today, m.st)
		if i == m.tracker.cursor {
			card = m.st.navActive.Render("▾") + "\n" + card
		} else {
			card = " \n" + card
		}
		cards = append(cards, card)
	}

	return m.st.title.Render("Tracker") + "\n\n" +
		lipgloss.JoinVertical(lipgloss.Left, cards...) + "\n" +
		m.st.status.Render("a: add graph • j/k: select • d: remove")
}

func (m Model) settingsView() string {
	return m.st.title.Render("Settings") + "\n\n" +
		fmt.Sprintf("  Theme: %s\n", m.theme) +
		fmt.Sprintf("  Tasks stored: %d\n\n", m.store.Len()) +
		m.st.status.Render("t: toggle theme • i: import YAML from clipboard")
}
