package geo

import "math"

const earthRadiusMeters = 6371000

// Distance returns the great-circle distance between two coordinates in
// meters, using the haversine formula on a spherical earth. Any finite
// coordinate pair produces a finite distance.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius reports whether the observed point falls inside the allowed
// radius (in meters) around the shop coordinates. A point exactly on the
// boundary counts as inside.
func WithinRadius(lat, lon, shopLat, shopLon float64, radiusMeters float64) (float64, bool) {
	d := Distance(lat, lon, shopLat, shopLon)
	return d, d <= radiusMeters
}
