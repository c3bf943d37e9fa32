package config

import (
	"fmt"

	"cloudeng.io/datetime"

	"github.com/jask/datefocus/caldate"
	"github.com/jask/datefocus/enablement"
)

// Policy builds the enablement policy described by the calendar settings.
func (c CalendarConfig) Policy() (enablement.Policy, error) {
	if c.WeekdaysOnly && c.WeekendsOnly {
		return nil, fmt.Errorf("weekdays_only and weekends_only are mutually exclusive")
	}
	weekdays, err := enablement.ParseWeekdays(c.DisabledWeekdays)
	if err != nil {
		return nil, fmt.Errorf("disabled_weekdays: %w", err)
	}
	dates := make([]caldate.Date, 0, len(c.DisabledDates))
	for _, raw := range c.DisabledDates {
		d, err := caldate.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("disabled_dates: %w", err)
		}
		dates = append(dates, d)
	}
	minDate, err := optionalDate("min_date", c.MinDate)
	if err != nil {
		return nil, err
	}
	maxDate, err := optionalDate("max_date", c.MaxDate)
	if err != nil {
		return nil, err
	}

	policies := []enablement.Policy{
		enablement.FromConstraints(datetime.Constraints{
			Weekdays: c.WeekdaysOnly,
			Weekends: c.WeekendsOnly,
		}),
		enablement.Between(minDate, maxDate),
	}
	if len(weekdays) > 0 {
		policies = append(policies, enablement.ExcludeWeekdays(weekdays...))
	}
	if len(dates) > 0 {
		policies = append(policies, enablement.FromConstraints(datetime.Constraints{
			CustomCalendar: enablement.CalendarDates(dates...),
		}))
	}
	return enablement.All(policies...), nil
}

func optionalDate(name, raw string) (caldate.Date, error) {
	if raw == "" {
		return caldate.Date{}, nil
	}
	d, err := caldate.Parse(raw)
	if err != nil {
		return caldate.Date{}, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}
