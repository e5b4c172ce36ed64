package reports

import "strconv"

// ParseFilters is lenient on purpose: a month outside [1,12] or a year
// outside [2020,2100] is dropped, not rejected, so a bad filter degrades to
// the unfiltered report.
func ParseFilters(month, year, department, status string) Filters {
	var f Filters

	if month != "" {
		if m, err := strconv.Atoi(month); err == nil && m >= 1 && m <= 12 {
			f.Month = m
		}
	}
	if year != "" {
		if y, err := strconv.Atoi(year); err == nil && y >= 2020 && y <= 2100 {
			f.Year = y
		}
	}
	f.Department = department
	f.Status = status

	return f
}

// matchesMonthYear reports whether an ISO date string falls in the filter's
// month/year. No filter matches everything, even rows whose stored date does
// not parse.
func matchesMonthYear(date string, f Filters) bool {
	if f.Month == 0 && f.Year == 0 {
		return true
	}
	m, y, ok := splitISODate(date)
	if !ok {
		return false
	}
	if f.Month != 0 && m != f.Month {
		return false
	}
	if f.Year != 0 && y != f.Year {
		return false
	}
	return true
}

func splitISODate(date string) (month, year int, ok bool) {
	if len(date) < 10 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(date[0:4])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(date[5:7])
	if err != nil {
		return 0, 0, false
	}
	return m, y, true
}
