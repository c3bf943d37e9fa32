package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/datefocus/core"
)

const (
	cellWidth = 4
	// gridTop is the first terminal row of the day grid: header, then weekdays.
	gridTop = 2
	// headerButtonWidth is the width of the "‹ " and " ›" arrows.
	headerButtonWidth = 2
)

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderWeekdays())
	b.WriteString("\n")
	b.WriteString(a.renderGrid())
	if h := a.renderHistory(); h != "" {
		b.WriteString("\n\n")
		b.WriteString(h)
	}
	body := b.String()
	status := a.renderStatus()
	footer := a.renderFooter()
	if a.height == 0 {
		return body + "\n\n" + status + "\n" + footer
	}
	contentHeight := max(1, a.height-2)
	if lipgloss.Height(body) < contentHeight {
		body = lipgloss.Place(max(a.width, lipgloss.Width(body)), contentHeight, lipgloss.Left, lipgloss.Top, body)
	}
	return body + "\n" + status + "\n" + footer
}

func (a *App) renderHeader() string {
	month := a.ctrl.DisplayedMonth()
	title := fmt.Sprintf("%s %d", month.Month(), month.Year())
	inner := 7*cellWidth - 2*headerButtonWidth
	pad := max(0, inner-len(title))
	left := pad / 2
	return headerStyle.Render("‹ " + strings.Repeat(" ", left) + title + strings.Repeat(" ", pad-left) + " ›")
}

func (a *App) renderWeekdays() string {
	parts := make([]string, 0, 7)
	for _, wd := range core.WeekdayOrder(a.ctrl.StartOfWeek()) {
		parts = append(parts, fmt.Sprintf("%*s ", cellWidth-1, wd.String()[:2]))
	}
	return weekdayStyle.Render(strings.Join(parts, ""))
}

func (a *App) renderGrid() string {
	grid := a.ctrl.Grid()
	rows := make([]string, 0, len(grid))
	for _, week := range grid {
		var row strings.Builder
		for _, cell := range week {
			row.WriteString(a.renderDay(cell))
			row.WriteString(" ")
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderDay(cell core.GridDay) string {
	label := fmt.Sprintf("%*d", cellWidth-1, cell.Date.Day())
	if !cell.InMonth {
		return outsideStyle.Render(label)
	}
	style := dayStyle
	switch {
	case !a.ctrl.IsEnabled(cell.Date):
		style = disabledStyle
	case a.ctrl.IsSelected(cell.Date):
		style = selectedStyle
	case a.ctrl.IsToday(cell.Date):
		style = todayStyle
	}
	if a.scope == core.ScopeGrid && a.ctrl.IsFocusTarget(cell.Date) {
		style = focusStyle.Inherit(style)
	}
	return style.Render(label)
}

func (a *App) renderHistory() string {
	if len(a.history) == 0 {
		return ""
	}
	values := make([]string, 0, len(a.history))
	for _, c := range a.history {
		values = append(values, c.Value)
	}
	return historyStyle.Render("Recent: " + strings.Join(values, ", "))
}

func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		if v, ok := a.ctrl.Value(); ok {
			msg = "Value " + v.String()
		} else {
			msg = "No value"
		}
	}
	style := statusBarStyle
	if a.isErr {
		style = statusErrBarStyle
	}
	return style.Render(a.fit(msg))
}

func (a *App) renderFooter() string {
	bindings := a.keys.HelpBindings(a.scope)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+helpDescStyle.Render(" "+h.Desc))
	}
	line := strings.Join(parts, helpDescStyle.Render("  "))
	if line == "" {
		line = helpDescStyle.Render("No shortcuts")
	}
	return footerStyle.Render(a.fit(line))
}

// fit truncates s to the terminal width and pads it so bars span the line.
func (a *App) fit(s string) string {
	if a.width <= 0 {
		return s
	}
	s = ansi.Truncate(s, a.width, "…")
	if w := ansi.StringWidth(s); w < a.width {
		s += strings.Repeat(" ", a.width-w)
	}
	return s
}
