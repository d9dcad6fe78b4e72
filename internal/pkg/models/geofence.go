package models

import (
	"time"

	"github.com/google/uuid"
)

// Geofence states
const (
	GeofenceStateActive    = "active"
	GeofenceStateClaimed   = "claimed"
	GeofenceStateExpired   = "expired"
	GeofenceStateCancelled = "cancelled"
)

// Geofence radius bounds in meters.
const (
	GeofenceMinRadiusM = 25.0
	GeofenceMaxRadiusM = 1000.0
)

// Geofence is a conditional transfer claimable only inside a bounding
// circle. The amount is debited from the owner at creation and held on the
// fence until it is claimed or released, so it is never in two places at
// once. The recipient account is resolved once at creation and snapshotted;
// claims compare against the snapshot.
type Geofence struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	OwnerAccountID     uuid.UUID  `json:"owner_account_id" db:"owner_account_id"`
	RecipientAccountID uuid.UUID  `json:"recipient_account_id" db:"recipient_account_id"`
	RecipientEmail     string     `json:"recipient_email" db:"recipient_email"`
	CenterLat          float64    `json:"center_lat" db:"center_lat"`
	CenterLng          float64    `json:"center_lng" db:"center_lng"`
	RadiusM            float64    `json:"radius_m" db:"radius_m"`
	Geohash            string     `json:"geohash" db:"geohash"`
	Amount             int64      `json:"amount" db:"amount"`
	Currency           string     `json:"currency" db:"currency"`
	Memo               string     `json:"memo" db:"memo"`
	State              string     `json:"state" db:"state"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt          time.Time  `json:"expires_at" db:"expires_at"`
	ClaimedAt          *time.Time `json:"claimed_at,omitempty" db:"claimed_at"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
}

// AmountMoney returns the reserved amount as a Money value.
func (g *Geofence) AmountMoney() Money {
	return Money{Amount: g.Amount, Currency: g.Currency}
}

// GeoPosition is a claimant-supplied position.
type GeoPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
