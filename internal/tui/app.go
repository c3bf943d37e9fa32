package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/datefocus/caldate"
	"github.com/jask/datefocus/core"
	"github.com/jask/datefocus/internal/config"
	"github.com/jask/datefocus/internal/database/repository"
)

// historyLimit bounds both the displayed and the stored commit history.
const historyLimit = 5

// App hosts one calendar. It renders the controller's state and feeds key and
// mouse gestures back into it. Commits are persisted before being
// acknowledged to the controller with SetValue.
type App struct {
	ctx     context.Context
	ctrl    *core.Controller
	keys    *core.KeyRegistry
	commits *repository.CommitRepo
	scope   string
	status  string
	isErr   bool
	width   int
	height  int
	history []repository.Commit
	prefs   *config.Config

	// commits requested by the controller during the current Update
	pending []string
}

// New builds the host. opts.OnChange is replaced; commits is optional.
func New(ctx context.Context, opts core.Options, bindings []core.KeyBinding, commits *repository.CommitRepo) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	a := &App{
		ctx:     ctx,
		keys:    core.NewKeyRegistry(bindings),
		commits: commits,
		scope:   core.ScopeGrid,
	}
	opts.OnChange = func(ev core.ChangeEvent) {
		a.pending = append(a.pending, ev.Value)
	}
	a.ctrl = core.NewController(opts)
	return a
}

// Controller exposes the hosted controller.
func (a *App) Controller() *core.Controller { return a.ctrl }

// SetPreferences enables writing preference changes, such as the week start,
// back to the config file.
func (a *App) SetPreferences(cfg config.Config) {
	a.prefs = &cfg
}

type historyLoadedMsg struct {
	commits []repository.Commit
	err     error
}

type commitsSavedMsg struct {
	commits []repository.Commit
	err     error
}

type prefsSavedMsg struct {
	err error
}

func (a *App) Init() tea.Cmd {
	return a.loadHistory()
}

func (a *App) loadHistory() tea.Cmd {
	if a.commits == nil {
		return nil
	}
	return func() tea.Msg {
		list, err := a.commits.List(a.ctx, historyLimit)
		return historyLoadedMsg{commits: list, err: err}
	}
}

// saveCommits stores values in order, stopping at the first failure.
func (a *App) saveCommits(values []string) tea.Cmd {
	locale := a.ctrl.Locale()
	return func() tea.Msg {
		saved := make([]repository.Commit, 0, len(values))
		for _, v := range values {
			c, err := a.commits.Record(a.ctx, v, locale, historyLimit)
			if err != nil {
				return commitsSavedMsg{commits: saved, err: fmt.Errorf("save %s: %w", v, err)}
			}
			saved = append(saved, c)
		}
		return commitsSavedMsg{commits: saved}
	}
}

func (a *App) savePrefs() tea.Cmd {
	if a.prefs == nil {
		return nil
	}
	a.prefs.Calendar.StartOfWeek = int(a.ctrl.StartOfWeek())
	cfg := *a.prefs
	return func() tea.Msg {
		return prefsSavedMsg{err: config.Save(cfg)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case historyLoadedMsg:
		if m.err != nil {
			a.setError(fmt.Errorf("load history: %w", m.err))
			return a, nil
		}
		a.history = m.commits
		return a, nil
	case commitsSavedMsg:
		for _, c := range m.commits {
			a.ctrl.SetValue(c.Value)
			a.history = append([]repository.Commit{c}, a.history...)
			a.setStatus("Saved " + c.Value)
		}
		if len(a.history) > historyLimit {
			a.history = a.history[:historyLimit]
		}
		if m.err != nil {
			a.setError(m.err)
		}
		return a, nil
	case prefsSavedMsg:
		if m.err != nil {
			a.setError(fmt.Errorf("save preferences: %w", m.err))
		}
		return a, nil
	case tea.MouseMsg:
		a.handleMouse(m)
		return a, a.flushCommits()
	case tea.KeyMsg:
		action, ok := a.keys.ActionFor(m, a.scope)
		if !ok {
			return a, nil
		}
		switch action {
		case core.ActionNameQuit:
			return a, tea.Quit
		case core.ActionNameFocusGrid:
			a.scope = core.ScopeGrid
			return a, nil
		}
		res := a.ctrl.HandleAction(action)
		a.describe(res)
		switch res.Action {
		case core.ActionBlurred:
			a.scope = core.ScopeHeader
		case core.ActionWeekStartChanged:
			return a, a.savePrefs()
		}
		return a, a.flushCommits()
	}
	return a, nil
}

// flushCommits turns commits requested by the controller into persistence
// commands. Without a store the value is acknowledged immediately.
func (a *App) flushCommits() tea.Cmd {
	if len(a.pending) == 0 {
		return nil
	}
	values := a.pending
	a.pending = nil
	if a.commits == nil {
		for _, v := range values {
			a.ctrl.SetValue(v)
		}
		return nil
	}
	return a.saveCommits(values)
}

func (a *App) handleMouse(m tea.MouseMsg) {
	leftPress := m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft
	if delta := headerButtonAt(m.X, m.Y); delta != 0 {
		if leftPress {
			a.ctrl.ChangeMonth(delta)
			a.describe(core.Result{Action: core.ActionMonthChanged})
		}
		return
	}
	d, ok := a.dayAt(m.X, m.Y)
	if !ok {
		return
	}
	switch {
	case leftPress:
		a.scope = core.ScopeGrid
		a.ctrl.SelectDate(d)
	case m.Action == tea.MouseActionMotion:
		a.ctrl.FocusDate(d)
	}
}

// headerButtonAt returns -1 or +1 for the previous and next month arrows of
// the header row, 0 elsewhere.
func headerButtonAt(x, y int) int {
	switch {
	case y != 0 || x < 0:
		return 0
	case x < headerButtonWidth:
		return -1
	case x >= 7*cellWidth-headerButtonWidth && x < 7*cellWidth:
		return 1
	}
	return 0
}

// dayAt maps a terminal cell to the in-month date rendered there.
func (a *App) dayAt(x, y int) (caldate.Date, bool) {
	row := y - gridTop
	col := x / cellWidth
	grid := a.ctrl.Grid()
	if row < 0 || row >= len(grid) || x < 0 || col >= 7 {
		return caldate.Date{}, false
	}
	cell := grid[row][col]
	if !cell.InMonth {
		return caldate.Date{}, false
	}
	return cell.Date, true
}

func (a *App) describe(res core.Result) {
	switch res.Action {
	case core.ActionMoved:
		a.setStatus("Focused " + res.Date.String())
	case core.ActionMonthChanged:
		a.setStatus(fmt.Sprintf("Showing %s %d", a.ctrl.DisplayedMonth().Month(), a.ctrl.DisplayedMonth().Year()))
	case core.ActionSelected:
		a.setStatus("Selected " + res.Date.String())
	case core.ActionBlurred:
		a.setStatus("Left the grid; tab to return")
	case core.ActionWeekStartChanged:
		a.setStatus("Weeks start on " + a.ctrl.StartOfWeek().String())
	}
}

func (a *App) setStatus(text string) {
	a.status = text
	a.isErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.isErr = true
}
