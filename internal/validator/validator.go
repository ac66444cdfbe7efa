// Pure input validation for event fields. No I/O, no clock access; the
// future-instant rule for creation lives in the service layer.
package validator

import "regexp"

var (
	dateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	timeRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)
)

type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseDate accepts YYYY-M-D with one- or two-digit month and day. The
// leap rule is year%4 only; the century exception is deliberately not
// applied, matching the stored dataset's historical behaviour.
func ParseDate(date string) (CalendarDate, bool) {
	m := dateRe.FindStringSubmatch(date)
	if m == nil {
		return CalendarDate{}, false
	}

	year := atoi(m[1])
	month := atoi(m[2])
	day := atoi(m[3])

	if month < 1 || month > 12 {
		return CalendarDate{}, false
	}
	if day < 1 || day > 31 {
		return CalendarDate{}, false
	}
	if month == 2 {
		if year%4 == 0 && day > 29 {
			return CalendarDate{}, false
		}
		if year%4 != 0 && day > 28 {
			return CalendarDate{}, false
		}
	}
	if (month == 4 || month == 6 || month == 9 || month == 11) && day > 30 {
		return CalendarDate{}, false
	}

	return CalendarDate{Year: year, Month: month, Day: day}, true
}

// ParseTime accepts HH:MM:SS with exactly two digits per field.
func ParseTime(t string) (ClockTime, bool) {
	m := timeRe.FindStringSubmatch(t)
	if m == nil {
		return ClockTime{}, false
	}

	hour := atoi(m[1])
	minute := atoi(m[2])
	second := atoi(m[3])

	if hour > 23 || minute > 59 || second > 59 {
		return ClockTime{}, false
	}

	return ClockTime{Hour: hour, Minute: minute, Second: second}, true
}

// IsValidLatitude reports whether the value is inside [-90, 90].
func IsValidLatitude(latitude float64) bool {
	return -90 <= latitude && latitude <= 90
}

// IsValidLongitude reports whether the value is inside [-180, 180].
func IsValidLongitude(longitude float64) bool {
	return -180 <= longitude && longitude <= 180
}

// CheckMissingFields returns the required fields that are absent or falsy
// in data, in the order they were declared. Empty strings, zero numbers
// and false all count as missing; this permissive check is part of the
// API contract and must not be tightened to a nil-only check.
func CheckMissingFields(fields []string, data map[string]any) []string {
	missing := []string{}

	for _, field := range fields {
		value, ok := data[field]
		if !ok || isFalsy(value) {
			missing = append(missing, field)
		}
	}

	return missing
}

func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0
	case int:
		return value == 0
	case int64:
		return value == 0
	default:
		return false
	}
}

// atoi is only ever called on digit-matched submatches.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
