package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth truncates t to the first day of its month, UTC.
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParseDateRange parses optional start/end dates (YYYY-MM-DD). The end date is
// inclusive on input, so the returned end is the following midnight. Missing
// bounds fall back to the last defaultDays days ending today.
func ParseDateRange(startStr, endStr string, now time.Time, defaultDays int) (time.Time, time.Time, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	rangeEnd := StartOfDay(now).AddDate(0, 0, 1)
	if !end.IsZero() {
		rangeEnd = end.AddDate(0, 0, 1)
	}

	rangeStart := rangeEnd.AddDate(0, 0, -defaultDays)
	if !start.IsZero() {
		rangeStart = *start
	}

	return rangeStart, rangeEnd, nil
}
