package core

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jask/datefocus/caldate"
	"github.com/jask/datefocus/enablement"
	"github.com/jask/datefocus/locale"
)

const componentName = "Calendar"

// Mode is the controller's focus state.
type Mode int

const (
	// ModeIdle has no transient focus; the focus target falls back to the
	// value, today or the base date.
	ModeIdle Mode = iota
	// ModeFocused has an explicit focused date.
	ModeFocused
)

func (m Mode) String() string {
	if m == ModeFocused {
		return "focused"
	}
	return "idle"
}

// ChangeEvent is the value-commit event.
type ChangeEvent struct {
	Value string
}

// State is a snapshot of everything a renderer needs.
type State struct {
	Mode           Mode
	DisplayedMonth caldate.Date
	BaseDate       caldate.Date
	FocusTarget    caldate.Date // zero when the month has nothing focusable
	Value          caldate.Date // zero when unset
	StartOfWeek    time.Weekday
	Locale         string
}

// Options configures a Controller.
type Options struct {
	// Value is the committed ISO date; invalid input is treated as unset.
	Value string
	// Locale is normalized with locale.Normalize.
	Locale string
	// StartOfWeek overrides the locale's first day of the week when non-nil.
	StartOfWeek   *int
	IsDateEnabled enablement.Policy
	// OnChange receives commits. The caller acknowledges one by calling SetValue.
	OnChange func(ChangeEvent)
	// OnStateChange fires once after each transition that changed State.
	OnStateChange func(State)
	Now           func() time.Time
	Logger        *slog.Logger
}

// Controller owns the displayed month and focused date of one calendar. It
// is not safe for concurrent use; every call is one atomic stimulus.
type Controller struct {
	enabled       enablement.Policy
	onChange      func(ChangeEvent)
	onStateChange func(State)
	now           func() time.Time
	locale        string
	mover         FocusMover

	value     caldate.Date
	displayed caldate.Date
	focused   caldate.Date

	busy    bool
	pending []func()
}

// NewController builds a controller in ModeIdle showing the value's month, or
// the current month when there is no usable value.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(opts.Value) != "" && opts.OnChange == nil {
		logger.Warn("value provided without an OnChange handler; selections cannot be persisted",
			"component", componentName)
	}
	c := &Controller{
		enabled:       opts.IsDateEnabled,
		onChange:      opts.OnChange,
		onStateChange: opts.OnStateChange,
		now:           opts.Now,
		locale:        locale.Normalize(componentName, opts.Locale, logger),
	}
	if c.enabled == nil {
		c.enabled = enablement.Always
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.mover = FocusMover{StartOfWeek: locale.StartOfWeek(c.locale, opts.StartOfWeek)}
	if v, ok := caldate.ParseValue(opts.Value); ok {
		c.value = v
		c.displayed = v.StartOfMonth()
	} else {
		c.displayed = c.Today().StartOfMonth()
	}
	return c
}

func (c *Controller) Locale() string               { return c.locale }
func (c *Controller) StartOfWeek() time.Weekday    { return c.mover.StartOfWeek }
func (c *Controller) DisplayedMonth() caldate.Date { return c.displayed }
func (c *Controller) Today() caldate.Date          { return caldate.FromTime(c.now()) }

// Value returns the mirrored committed value.
func (c *Controller) Value() (caldate.Date, bool) {
	return c.value, !c.value.IsZero()
}

// FocusedDate returns the transient focused date.
func (c *Controller) FocusedDate() (caldate.Date, bool) {
	return c.focused, !c.focused.IsZero()
}

func (c *Controller) Mode() Mode {
	if c.focused.IsZero() {
		return ModeIdle
	}
	return ModeFocused
}

// BaseDate is derived from the displayed month on every call.
func (c *Controller) BaseDate() caldate.Date {
	return ComputeBaseDate(c.displayed, c.enabled)
}

// FocusTarget returns the date that should hold keyboard focus, if any.
func (c *Controller) FocusTarget() (caldate.Date, bool) {
	return ResolveFocusOrSelection(c.focused, c.value, c.BaseDate(), c.Today(), c.enabled)
}

func (c *Controller) IsEnabled(d caldate.Date) bool  { return c.enabled.Enabled(d) }
func (c *Controller) IsToday(d caldate.Date) bool    { return d == c.Today() }
func (c *Controller) IsSelected(d caldate.Date) bool { return !d.IsZero() && d == c.value }

func (c *Controller) IsFocusTarget(d caldate.Date) bool {
	target, ok := c.FocusTarget()
	return ok && target == d
}

// Grid returns the displayed month laid out by week.
func (c *Controller) Grid() [][]GridDay {
	return MonthGrid(c.displayed, c.mover.StartOfWeek)
}

func (c *Controller) State() State {
	target, _ := c.FocusTarget()
	return State{
		Mode:           c.Mode(),
		DisplayedMonth: c.displayed,
		BaseDate:       c.BaseDate(),
		FocusTarget:    target,
		Value:          c.value,
		StartOfWeek:    c.mover.StartOfWeek,
		Locale:         c.locale,
	}
}

// ChangeMonth moves the displayed month by delta and clears focus.
func (c *Controller) ChangeMonth(delta int) {
	c.transition(func() {
		c.showMonth(c.BaseDate().AddMonths(delta))
	})
}

// FocusDate focuses d, first switching to d's month when needed. Requests
// for zero or disabled dates are ignored.
func (c *Controller) FocusDate(d caldate.Date) {
	if d.IsZero() || !c.enabled.Enabled(d) {
		return
	}
	c.transition(func() {
		if !d.SameMonth(c.displayed) {
			c.showMonth(d)
		}
		c.focused = d
	})
}

// SelectDate emits a commit for d and clears focus. The displayed month is
// left alone. Zero or disabled dates are ignored.
func (c *Controller) SelectDate(d caldate.Date) {
	if d.IsZero() || !c.enabled.Enabled(d) {
		return
	}
	c.transition(func() {
		if c.onChange != nil {
			c.onChange(ChangeEvent{Value: d.String()})
		}
		c.focused = caldate.Date{}
	})
}

// Blur clears focus when focus leaves the grid.
func (c *Controller) Blur() {
	c.transition(func() {
		c.focused = caldate.Date{}
	})
}

// SetValue mirrors a value acknowledged by the caller. A new valid value in
// another month brings that month into view; invalid input unsets the value.
// Calls made while another transition runs are applied once it completes.
func (c *Controller) SetValue(iso string) {
	c.transition(func() {
		v, ok := caldate.ParseValue(iso)
		if !ok {
			c.value = caldate.Date{}
			return
		}
		if v == c.value {
			return
		}
		c.value = v
		if !v.SameMonth(c.displayed) {
			c.showMonth(v)
		}
	})
}

// SetStartOfWeek changes the first day of the week, reduced modulo 7.
func (c *Controller) SetStartOfWeek(n int) {
	c.transition(func() {
		c.mover.StartOfWeek = locale.StartOfWeek(c.locale, &n)
	})
}

// Move applies a navigation intent starting from the current focus target,
// or the base date when the month has none.
func (c *Controller) Move(dir Direction) Result {
	from, ok := c.FocusTarget()
	if !ok {
		from = c.BaseDate()
	}
	to := c.mover.Move(from, dir, c.enabled)
	if to == from {
		return Result{Action: ActionNone, Date: from}
	}
	monthChanged := !to.SameMonth(c.displayed)
	c.FocusDate(to)
	if monthChanged {
		return Result{Action: ActionMonthChanged, Date: to}
	}
	return Result{Action: ActionMoved, Date: to}
}

func (c *Controller) showMonth(d caldate.Date) {
	c.displayed = d.StartOfMonth()
	c.focused = caldate.Date{}
}

// run applies fn and everything it queued. A panicking callback drops the
// queue and leaves the controller usable.
func (c *Controller) run(fn func()) {
	c.busy = true
	defer func() {
		c.busy = false
		c.pending = nil
	}()
	fn()
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		next()
	}
}

func (c *Controller) transition(fn func()) {
	if c.busy {
		c.pending = append(c.pending, fn)
		return
	}
	before := c.State()
	c.run(fn)
	if c.onStateChange == nil {
		return
	}
	if after := c.State(); after != before {
		c.onStateChange(after)
	}
}
