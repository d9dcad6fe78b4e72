package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// Meters per degree of latitude on the haversine sphere.
const metersPerLatDegree = 6371000.0 * 3.141592653589793 / 180.0

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name: "Same point",
			point1: GeoPoint{
				Latitude:  39.7392,
				Longitude: -104.9903,
			},
			point2: GeoPoint{
				Latitude:  39.7392,
				Longitude: -104.9903,
			},
			expected:  0.0,
			tolerance: 0.01,
		},
		{
			name: "Denver to Boulder (approximately)",
			point1: GeoPoint{
				Latitude:  39.7392, // Denver
				Longitude: -104.9903,
			},
			point2: GeoPoint{
				Latitude:  40.0150, // Boulder
				Longitude: -105.2705,
			},
			expected:  38500.0, // Approximately 38.5 km
			tolerance: 2000.0,
		},
		{
			name: "Fifty meters north",
			point1: GeoPoint{
				Latitude:  39.7392,
				Longitude: -104.9903,
			},
			point2: GeoPoint{
				Latitude:  39.7392 + 50.0/metersPerLatDegree,
				Longitude: -104.9903,
			},
			expected:  50.0,
			tolerance: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := DistanceMeters(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, distance, tt.tolerance)
		})
	}
}

func TestWithinFence(t *testing.T) {
	fence := &models.Geofence{
		CenterLat: 39.7392,
		CenterLng: -104.9903,
		RadiusM:   50,
		State:     models.GeofenceStateActive,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	// 49m from center: inside.
	inside := models.GeoPosition{
		Latitude:  39.7392 + 49.0/metersPerLatDegree,
		Longitude: -104.9903,
	}
	assert.True(t, WithinFence(fence, inside))

	// 51m from center: outside.
	outside := models.GeoPosition{
		Latitude:  39.7392 + 51.0/metersPerLatDegree,
		Longitude: -104.9903,
	}
	assert.False(t, WithinFence(fence, outside))
}

func TestEncodeCenterRoundTrip(t *testing.T) {
	hash := EncodeCenter(39.7392, -104.9903)
	assert.Len(t, hash, int(GeofencePrecision))

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, 39.7392, lat, 0.01)
	assert.InDelta(t, -104.9903, lng, 0.01)
}
