package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start", Message: "start is required"},
		{Field: "end", Message: "end is required"},
	}

	assert.Equal(t, "start: start is required; end: end is required", errs.Error())
	assert.Equal(t, map[string]string{
		"start": "start is required",
		"end":   "end is required",
	}, errs.ToMap())
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-07-01")
	require.True(t, ok)
	assert.Equal(t, time.July, date.Month())

	_, ok = IsValidDate("01.07.2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
}

func TestWeekdayChecks(t *testing.T) {
	monday, _ := IsValidDate("2026-01-05")
	sunday, _ := IsValidDate("2026-01-11")

	assert.True(t, IsMonday(monday))
	assert.False(t, IsMonday(sunday))
	assert.True(t, IsSunday(sunday))
	assert.False(t, IsSunday(monday))
}

func TestMonthBoundaryChecks(t *testing.T) {
	first, _ := IsValidDate("2026-07-01")
	last, _ := IsValidDate("2026-07-31")
	leapFebLast, _ := IsValidDate("2024-02-29")

	assert.True(t, IsFirstOfMonth(first))
	assert.False(t, IsFirstOfMonth(last))
	assert.True(t, IsLastOfMonth(last))
	assert.True(t, IsLastOfMonth(leapFebLast))
	assert.False(t, IsLastOfMonth(first))

	assert.Equal(t, 29, LastDayOfMonth(leapFebLast))
	assert.Equal(t, 31, LastDayOfMonth(first))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}
