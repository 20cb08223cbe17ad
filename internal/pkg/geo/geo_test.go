package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	d := Distance(3.139, 101.6869, 3.139, 101.6869)
	assert.Equal(t, 0.0, d)
}

func TestDistance_Symmetric(t *testing.T) {
	d1 := Distance(3.139, 101.6869, 3.2, 101.7)
	d2 := Distance(3.2, 101.7, 3.139, 101.6869)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistance_KnownPair(t *testing.T) {
	// Roughly 1.11 km per 0.01 degree of latitude at the equator.
	d := Distance(0, 0, 0.01, 0)
	assert.InDelta(t, 1112.0, d, 5.0)
}

func TestWithinRadius(t *testing.T) {
	shopLat, shopLon := 3.139, 101.6869

	// ~600m north of the shop: 600m / 111195m per degree.
	outsideLat := shopLat + 600.0/111195.0
	d, ok := WithinRadius(outsideLat, shopLon, shopLat, shopLon, 500)
	assert.False(t, ok)
	assert.InDelta(t, 600.0, d, 5.0)

	d, ok = WithinRadius(shopLat, shopLon, shopLat, shopLon, 500)
	assert.True(t, ok)
	assert.Equal(t, 0.0, d)
}
