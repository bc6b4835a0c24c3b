package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsMonday reports whether the date starts an ISO week.
func IsMonday(date time.Time) bool {
	return date.Weekday() == time.Monday
}

// IsSunday reports whether the date ends an ISO week.
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

func IsFirstOfMonth(date time.Time) bool {
	return date.Day() == 1
}

func IsLastOfMonth(date time.Time) bool {
	return date.Day() == LastDayOfMonth(date)
}

// LastDayOfMonth returns the number of days in the date's month.
func LastDayOfMonth(date time.Time) int {
	firstOfNext := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
