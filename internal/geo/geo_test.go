package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GeoTestSuite struct {
	suite.Suite
}

func TestGeoTestSuite(t *testing.T) {
	suite.Run(t, new(GeoTestSuite))
}

func (s *GeoTestSuite) TestZeroDistanceForSamePoint() {
	points := [][2]float64{
		{0, 0},
		{55.7558, 37.6173},
		{-33.8688, 151.2093},
		{90, 180},
		{-90, -180},
	}
	for _, p := range points {
		d, err := Distance(p[0], p[1], p[0], p[1])
		s.Require().NoError(err)
		s.InDelta(0, d, 0.001)
	}
}

func (s *GeoTestSuite) TestSymmetry() {
	d1, err := Distance(55.7558, 37.6173, 59.9311, 30.3609)
	s.Require().NoError(err)

	d2, err := Distance(59.9311, 30.3609, 55.7558, 37.6173)
	s.Require().NoError(err)

	s.InDelta(d1, d2, 0.001)
}

func (s *GeoTestSuite) TestQuarterEquator() {
	// A quarter of the equator is roughly 10,007.5 km.
	d, err := Distance(0, 0, 0, 90)
	s.Require().NoError(err)
	s.InEpsilon(10007543.0, d, 0.01)
}

func (s *GeoTestSuite) TestKnownDistance() {
	// Moscow to Saint Petersburg, roughly 634 km.
	d, err := Distance(55.7558, 37.6173, 59.9311, 30.3609)
	s.Require().NoError(err)
	s.InEpsilon(634000.0, d, 0.02)
}

func (s *GeoTestSuite) TestInvalidLatitude() {
	_, err := Distance(91, 0, 0, 0)
	s.Require().ErrorIs(err, ErrInvalidCoordinate)

	_, err = Distance(0, 0, -90.5, 0)
	s.Require().ErrorIs(err, ErrInvalidCoordinate)
}

func (s *GeoTestSuite) TestInvalidLongitude() {
	_, err := Distance(0, 181, 0, 0)
	s.Require().ErrorIs(err, ErrInvalidCoordinate)

	_, err = Distance(0, 0, 0, -180.1)
	s.Require().ErrorIs(err, ErrInvalidCoordinate)
}

func (s *GeoTestSuite) TestNonFiniteInput() {
	_, err := Distance(math.NaN(), 0, 0, 0)
	s.Require().ErrorIs(err, ErrInvalidCoordinate)

	_, err = Distance(0, math.Inf(1), 0, 0)
	s.Require().ErrorIs(err, ErrInvalidCoordinate)
}
