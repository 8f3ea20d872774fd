package geo

import (
	"errors"
	"math"
)

// EarthRadiusMeters is the fixed Earth radius used by the haversine formula
const EarthRadiusMeters = 6371000.0

// ErrInvalidCoordinate is returned when a coordinate is not a finite number
// or falls outside the valid latitude/longitude range. Callers are expected
// to validate coordinates before invoking Distance.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Distance computes the great-circle distance in meters between two points
// using the haversine formula. Latitudes must be within [-90, 90] and
// longitudes within [-180, 180].
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	for _, lat := range []float64{lat1, lat2} {
		if !isFinite(lat) || lat < -90 || lat > 90 {
			return 0, ErrInvalidCoordinate
		}
	}
	for _, lon := range []float64{lon1, lon2} {
		if !isFinite(lon) || lon < -180 || lon > 180 {
			return 0, ErrInvalidCoordinate
		}
	}

	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
