package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// GeofencePrecision is the geohash precision used for fence center
// snapshots; 7 characters is a ~150m cell, fine enough for the smallest
// allowed radius.
const GeofencePrecision uint = 7

// EncodeCenter converts a fence center to a geohash string
func EncodeCenter(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, GeofencePrecision)
}

// DecodeGeohash converts a geohash string back to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// DistanceMeters calculates the great-circle distance between two points in
// meters using the Haversine formula. Fence radii are meters over real
// coordinates, so flat Euclidean distance would be wrong.
func DistanceMeters(point1, point2 GeoPoint) float64 {
	// Earth's radius in meters
	const earthRadius = 6371000.0

	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// WithinFence reports whether a position lies inside a fence's bounding
// circle.
func WithinFence(fence *models.Geofence, position models.GeoPosition) bool {
	distance := DistanceMeters(
		GeoPoint{Latitude: fence.CenterLat, Longitude: fence.CenterLng},
		GeoPoint{Latitude: position.Latitude, Longitude: position.Longitude},
	)
	return distance <= fence.RadiusM
}

// GeoPointFromPosition converts a GeoPosition to a GeoPoint
func GeoPointFromPosition(position models.GeoPosition) GeoPoint {
	return GeoPoint{
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
	}
}
