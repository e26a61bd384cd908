package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SamirAliWebDev/zenith/internal/views"
)

const carouselDays = 7

// carousel is the 7-day date strip on the tasks page, starting today.
type carousel struct {
	days   []time.Time
	cursor int
}

func newCarousel(today time.Time) carousel {
	days := make([]time.Time, carouselDays)
	for i := range days {
		days[i] = today.AddDate(0, 0, i)
	}
	return carousel{days: days}
}

// Selected returns the day under the cursor.
func (c carousel) Selected() time.Time {
	return c.days[c.cursor]
}

func (c *carousel) Prev() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *carousel) Next() {
	if c.cursor < len(c.days)-1 {
		c.cursor++
	}
}

func (c carousel) View(st styles, today time.Time) string {
	cells := make([]string, 0, len(c.days))
	for i, day := range c.days {
		name := strings.ToUpper(day.Format("Mon"))
		cell := name + "\n" + day.Format("2")
		if i == c.cursor {
			cells = append(cells, st.daySelected.Render(cell))
		} else {
			cells = append(cells, st.dayNormal.Render(cell))
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	label := views.LabelFor(c.Selected(), today)
	caption := st.status.Render(label.DayName + " · " + label.FullDate)
	return strip + "\n" + caption
}
