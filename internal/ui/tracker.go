package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SamirAliWebDev/zenith/internal/chart"
	"github.com/SamirAliWebDev/zenith/internal/model"
	"github.com/SamirAliWebDev/zenith/internal/views"
)

const (
	chartRows     = 8
	lineCellWidth = 6
)

var trackerAnalyses = []model.Analysis{
	model.AnalysisCompletion,
	model.AnalysisPriority,
	model.AnalysisPerDay,
	model.AnalysisStreak,
}

var trackerChartTypes = []model.ChartType{model.ChartBar, model.ChartLine, model.ChartPie}

// tracker drives the graphs page: picking an analysis and chart type for a
// new graph, and selecting an existing graph for removal.
type tracker struct {
	graphs *model.GraphSet
	cursor int
	picked model.Analysis
}

func (t *tracker) clampCursor() {
	if t.cursor >= t.graphs.Len() {
		t.cursor = t.graphs.Len() - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// renderGraph draws one graph card. Streak renders as a bare number; the
// three chart kinds degrade to a placeholder on ErrNoData.
func renderGraph(cfg model.GraphConfig, tasks []model.Task, today time.Time, st styles) string {
	title := fmt.Sprintf("%s · %s", cfg.Analysis, cfg.Type)

	var body string
	if cfg.Analysis == model.AnalysisStreak {
		title = string(model.AnalysisStreak)
		body = renderStreakCard(tasks, st)
	} else {
		data := views.AnalysisDataset(tasks, cfg.Analysis, today)
		switch cfg.Type {
		case model.ChartBar:
			body = renderBarChart(data, st)
		case model.ChartLine:
			body = renderLineChart(data, st)
		case model.ChartPie:
			body = renderPieChart(data, st)
		}
	}

	return st.chartBox.Render(st.title.Render(title) + "\n" + body)
}

func renderStreakCard(tasks []model.Task, st styles) string {
	longest := views.LongestStreak(tasks)
	unit := "days"
	if longest == 1 {
		unit = "day"
	}
	return st.statNumber.Render(fmt.Sprintf("%d", longest)) + " " + st.statLabel.Render("longest streak ("+unit+")")
}

func noData(st styles) string {
	return st.status.Render("No data to display yet.")
}

func renderBarChart(data []chart.Datum, st styles) string {
	bars, grid, err := chart.BarLayout(data, chartRows)
	if err != nil {
		if errors.Is(err, chart.ErrNoData) {
			return noData(st)
		}
		return st.errText.Render(err.Error())
	}

	var b strings.Builder
	for row := chartRows; row >= 1; row-- {
		axis := "   "
		if row == chartRows {
			axis = fmt.Sprintf("%3.0f", grid.Max)
		} else if row == 1 {
			axis = "  0"
		}
		b.WriteString(st.status.Render(axis) + " ")
		for _, bar := range bars {
			cell := "   "
			if bar.Height >= float64(row)-0.5 {
				cell = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render("██ ")
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("    ")
	for _, bar := range bars {
		b.WriteString(st.statLabel.Render(fitLabel(bar.Label, 3)))
	}
	b.WriteString("\n")
	for _, bar := range bars {
		b.WriteString(st.status.Render(fmt.Sprintf("%s=%.0f ", bar.Label, bar.Value)))
	}
	return b.String()
}

func renderLineChart(data []chart.Datum, st styles) string {
	points, grid, err := chart.LineLayout(data, float64((len(data)-1)*lineCellWidth), chartRows)
	if err != nil {
		if errors.Is(err, chart.ErrNoData) {
			return noData(st)
		}
		return st.errText.Render(err.Error())
	}

	width := (len(points)-1)*lineCellWidth + 1
	cells := make([][]rune, chartRows+1)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", width))
	}
	for _, p := range points {
		x := int(p.X + 0.5)
		y := int(p.Y + 0.5)
		if y > chartRows {
			y = chartRows
		}
		cells[chartRows-y][x] = '●'
	}

	var b strings.Builder
	for i, row := range cells {
		axis := "   "
		if i == 0 {
			axis = fmt.Sprintf("%3.0f", grid.Max)
		} else if i == chartRows {
			axis = "  0"
		}
		b.WriteString(st.status.Render(axis) + " " + string(row) + "\n")
	}

	b.WriteString("    ")
	for _, p := range points {
		b.WriteString(st.statLabel.Render(fitLabel(p.Label, lineCellWidth)))
	}
	return b.String()
}

func renderPieChart(data []chart.Datum, st styles) string {
	slices, err := chart.PieLayout(data)
	if err != nil {
		if errors.Is(err, chart.ErrNoData) {
			return noData(st)
		}
		return st.errText.Render(err.Error())
	}

	var b strings.Builder
	for i, s := range slices {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
		cells := int(s.Sweep/360*20 + 0.5)
		b.WriteString(swatch.Render("■ "))
		b.WriteString(fmt.Sprintf("%-10s ", s.Label))
		b.WriteString(swatch.Render(strings.Repeat("█", cells)))
		b.WriteString(st.status.Render(fmt.Sprintf(" %d%%", int(s.Fraction*100+0.5))))
		if i < len(slices)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// fitLabel pads or truncates a label to exactly width cells.
func fitLabel(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		r = r[:width]
	}
	return fmt.Sprintf("%-*s", width, string(r))
}
