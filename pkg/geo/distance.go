package geo

import (
	"errors"
	"math"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

var ErrInvalidCoordinate = errors.New("coordinate is not a finite number")

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

func (c Coordinate) Validate() error {
	if !isFinite(c.Lat) || !isFinite(c.Lon) {
		return ErrInvalidCoordinate
	}
	return nil
}

// Distance returns the great-circle distance between two points in
// kilometers, rounded to 2 decimal places. NaN and ±Inf inputs are rejected.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if !isFinite(lat1) || !isFinite(lon1) || !isFinite(lat2) || !isFinite(lon2) {
		return 0, ErrInvalidCoordinate
	}

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100, nil
}

// DistanceBetween is Distance over Coordinate pairs.
func DistanceBetween(a, b Coordinate) (float64, error) {
	return Distance(a.Lat, a.Lon, b.Lat, b.Lon)
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
