package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("barista"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)

	_, ok = IsValidDate("28-02-2025")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	m, ok := IsValidMonth("2025-07")
	assert.True(t, ok)
	assert.Equal(t, 2025, m.Year())

	_, ok = IsValidMonth("2025-13")
	assert.False(t, ok)

	_, ok = IsValidMonth("2025")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("09:30"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("9:30"))
	assert.False(t, IsValidClockTime("09:60"))
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "amount must be positive"},
		{Field: "month", Message: "month must be in YYYY-MM format"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "amount must be positive", m["amount"])
	assert.Contains(t, errs.Error(), "amount: amount must be positive")
}
