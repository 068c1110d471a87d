package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arjunks/ambuconnect/internal/pkg/models"
)

func TestDistanceKm_ZeroAtIdentity(t *testing.T) {
	p := GeoPoint{Latitude: 9.5916, Longitude: 76.5222}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]GeoPoint{
		{{9.5916, 76.5222}, {9.5968, 76.5359}},
		{{-6.175392, 106.827153}, {-6.185392, 106.837153}},
		{{0, 0}, {0, 180}},
		{{89.9, 10}, {-89.9, -170}},
	}

	for _, pair := range pairs {
		d1 := DistanceKm(pair[0], pair[1])
		d2 := DistanceKm(pair[1], pair[0])
		assert.InDelta(t, d1, d2, 1e-9)
	}
}

func TestDistanceKm_KnownValue(t *testing.T) {
	// Two ambulance positions from the Kottayam dataset, roughly 1.5 km
	// apart.
	a := GeoPoint{Latitude: 9.5916, Longitude: 76.5222}
	b := GeoPoint{Latitude: 9.5968, Longitude: 76.5359}

	assert.InDelta(t, 1.5, DistanceKm(a, b), 0.3)
}

func TestDistanceKm_MonotonicWithSeparation(t *testing.T) {
	origin := GeoPoint{Latitude: 9.60, Longitude: 76.53}
	near := GeoPoint{Latitude: 9.601, Longitude: 76.531}
	mid := GeoPoint{Latitude: 9.61, Longitude: 76.54}
	far := GeoPoint{Latitude: 9.70, Longitude: 76.60}

	dNear := DistanceKm(origin, near)
	dMid := DistanceKm(origin, mid)
	dFar := DistanceKm(origin, far)

	assert.Less(t, dNear, dMid)
	assert.Less(t, dMid, dFar)
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	p := GeoPoint{Latitude: math.NaN(), Longitude: 76.5222}
	q := GeoPoint{Latitude: 9.5916, Longitude: 76.5222}

	assert.True(t, math.IsNaN(DistanceKm(p, q)))
}

func TestEncodeDecodeGeohash(t *testing.T) {
	loc := models.Location{Latitude: 9.5916, Longitude: 76.5222}

	hash := EncodeLocation(loc, 7)
	assert.Len(t, hash, 7)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, loc.Latitude, lat, 0.01)
	assert.InDelta(t, loc.Longitude, lng, 0.01)
}

func TestGetNeighbors(t *testing.T) {
	hash := EncodeLocation(models.Location{Latitude: 9.5916, Longitude: 76.5222}, 6)
	neighbors := GetNeighbors(hash)
	assert.Len(t, neighbors, 8)
}
