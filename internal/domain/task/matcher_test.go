package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStationFilter_AllStaff(t *testing.T) {
	for _, station := range []string{"staff", "Staff", " STAFF ", "semua staff", "Semua Staff", "  SEMUA STAFF"} {
		filter := ParseStationFilter(station)
		assert.True(t, filter.AllStaff, "station %q should mean all staff", station)
		assert.True(t, filter.Matches("Barista"))
		assert.True(t, filter.Matches("Cashier"))
	}
}

func TestParseStationFilter_Exact(t *testing.T) {
	filter := ParseStationFilter("Barista")

	assert.False(t, filter.AllStaff)
	assert.True(t, filter.Matches("Barista"))
	assert.True(t, filter.Matches("barista "))
	assert.False(t, filter.Matches("Cashier"))
}
