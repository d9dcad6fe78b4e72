package usecase

import (
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/internal/pkg/retry"
	"github.com/nrattyp233/moneybuddy/services/geofence"
	"github.com/nrattyp233/moneybuddy/services/ledger"
)

// GeofenceUC implements the geofence.UseCase interface
type GeofenceUC struct {
	cfg      *models.Config
	repo     geofence.Repository
	accounts ledger.Repository
	gw       geofence.GeofenceGW
	retrier  *retry.Retrier
}

// NewGeofenceUC creates a new geofence manager
func NewGeofenceUC(
	cfg *models.Config,
	repo geofence.Repository,
	accounts ledger.Repository,
	gw geofence.GeofenceGW,
) *GeofenceUC {
	return &GeofenceUC{
		cfg:      cfg,
		repo:     repo,
		accounts: accounts,
		gw:       gw,
		retrier:  retry.NewWithDefaults(logger.GetGlobalLogger()),
	}
}
