package task

import "strings"

// StationFilter decides which staff members a template applies to.
type StationFilter struct {
	AllStaff bool
	Station  string
}

// ParseStationFilter normalizes a template's station field into a filter.
// "staff" and "semua staff" (any case, surrounding whitespace ignored) mean
// the template applies to everyone; anything else matches that station only.
func ParseStationFilter(station string) StationFilter {
	normalized := normalizeStation(station)

	if normalized == "staff" || normalized == "semua staff" {
		return StationFilter{AllStaff: true}
	}

	return StationFilter{Station: normalized}
}

// Matches reports whether a staff member with the given station receives
// tasks from this filter's template.
func (f StationFilter) Matches(station string) bool {
	if f.AllStaff {
		return true
	}

	return normalizeStation(station) == f.Station
}

func normalizeStation(station string) string {
	return strings.ToLower(strings.TrimSpace(station))
}
