package core

import "github.com/jask/datefocus/caldate"

// CalendarAction reports what a handled action did.
type CalendarAction int

const (
	ActionNone CalendarAction = iota
	ActionMoved
	ActionMonthChanged
	ActionSelected
	ActionBlurred
	ActionWeekStartChanged
)

func (a CalendarAction) String() string {
	switch a {
	case ActionMoved:
		return "moved"
	case ActionMonthChanged:
		return "month-changed"
	case ActionSelected:
		return "selected"
	case ActionBlurred:
		return "blurred"
	case ActionWeekStartChanged:
		return "week-start-changed"
	}
	return "none"
}

// Result is returned by Move and HandleAction. Date is the date focused or
// selected, or the newly displayed month for header navigation.
type Result struct {
	Action CalendarAction
	Date   caldate.Date
}

// Key binding actions understood by HandleAction.
const (
	ActionNamePrevDay    = "day-prev"
	ActionNameNextDay    = "day-next"
	ActionNamePrevWeek   = "week-prev"
	ActionNameNextWeek   = "week-next"
	ActionNamePrevMonth  = "month-step-prev"
	ActionNameNextMonth  = "month-step-next"
	ActionNameWeekStart  = "week-start"
	ActionNameWeekEnd    = "week-end"
	ActionNameSelect     = "select"
	ActionNameBlur       = "blur"
	ActionNameHeaderPrev = "header-prev"
	ActionNameHeaderNext = "header-next"
	ActionNameFocusGrid  = "focus-grid"
	ActionNameCycleWeek  = "week-start-cycle"
	ActionNameQuit       = "quit"
)

var actionDirections = map[string]Direction{
	ActionNamePrevDay:   PreviousDay,
	ActionNameNextDay:   NextDay,
	ActionNamePrevWeek:  PreviousWeek,
	ActionNameNextWeek:  NextWeek,
	ActionNamePrevMonth: PreviousMonth,
	ActionNameNextMonth: NextMonth,
	ActionNameWeekStart: StartOfWeek,
	ActionNameWeekEnd:   EndOfWeek,
}

// ActionDirection maps a navigation action name to its Direction.
func ActionDirection(action string) (Direction, bool) {
	dir, ok := actionDirections[action]
	return dir, ok
}

// HandleAction runs the grid or header gesture named by action. Unknown
// actions, including quit, are left to the host and return ActionNone.
func (c *Controller) HandleAction(action string) Result {
	if dir, ok := ActionDirection(action); ok {
		return c.Move(dir)
	}
	switch action {
	case ActionNameSelect:
		target, ok := c.FocusTarget()
		if !ok {
			return Result{Action: ActionNone}
		}
		c.SelectDate(target)
		return Result{Action: ActionSelected, Date: target}
	case ActionNameBlur:
		c.Blur()
		return Result{Action: ActionBlurred}
	case ActionNameHeaderPrev:
		c.ChangeMonth(-1)
		return Result{Action: ActionMonthChanged, Date: c.displayed}
	case ActionNameHeaderNext:
		c.ChangeMonth(1)
		return Result{Action: ActionMonthChanged, Date: c.displayed}
	case ActionNameCycleWeek:
		c.SetStartOfWeek(int(c.StartOfWeek()) + 1)
		return Result{Action: ActionWeekStartChanged}
	}
	return Result{Action: ActionNone}
}
