package enablement

import (
	"fmt"
	"strings"
	"time"
)

// ParseWeekday accepts English weekday names or any prefix of at least two
// letters ("mo", "tue", "Saturday").
func ParseWeekday(val string) (time.Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 2 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), lc) {
				return wd, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", val)
}

// ParseWeekdays parses every entry of vals, failing on the first bad one.
func ParseWeekdays(vals []string) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(vals))
	for _, v := range vals {
		wd, err := ParseWeekday(v)
		if err != nil {
			return nil, err
		}
		out = append(out, wd)
	}
	return out, nil
}
