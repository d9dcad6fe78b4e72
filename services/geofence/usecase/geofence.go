package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/constants"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/internal/utils"
)

// Create reserves a conditional transfer: resolves and snapshots the
// recipient, debits the owner and activates the fence.
func (uc *GeofenceUC) Create(ctx context.Context, req *models.CreateGeofenceRequest) (*models.Geofence, error) {
	amount := models.NewMoney(req.Amount, uc.cfg.Pricing.Currency)
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if req.RadiusM < models.GeofenceMinRadiusM || req.RadiusM > models.GeofenceMaxRadiusM {
		return nil, apperrors.ErrInvalidRadius
	}
	if !req.ExpiresAt.After(time.Now()) {
		return nil, fmt.Errorf("expires_at must be in the future: %w", apperrors.ErrInvalidAmount)
	}

	// The recipient is resolved once, here. Later claims compare against
	// this snapshot even if the email is reassigned.
	recipient, err := uc.accounts.GetAccountByEmail(ctx, req.RecipientEmail)
	if err != nil {
		return nil, err
	}

	fence := &models.Geofence{
		ID:                 uuid.New(),
		OwnerAccountID:     req.OwnerAccountID,
		RecipientAccountID: recipient.ID,
		RecipientEmail:     recipient.Email,
		CenterLat:          req.CenterLat,
		CenterLng:          req.CenterLng,
		RadiusM:            req.RadiusM,
		Geohash:            utils.EncodeCenter(req.CenterLat, req.CenterLng),
		Amount:             amount.Amount,
		Currency:           amount.Currency,
		Memo:               req.Memo,
		State:              models.GeofenceStateActive,
		ExpiresAt:          req.ExpiresAt,
	}

	recipientID := recipient.ID
	txn := &models.Transaction{
		AccountID:        req.OwnerAccountID,
		Type:             models.TransactionTypeGeofence,
		Amount:           amount.Amount,
		Currency:         amount.Currency,
		Status:           models.TransactionStatusCompleted,
		CounterpartID:    &recipientID,
		CounterpartEmail: recipient.Email,
		Detail: models.TransactionDetail{
			Kind: "geofence",
			Geofence: &models.GeofenceDetail{
				GeofenceID: fence.ID,
				Event:      "created",
				Memo:       req.Memo,
			},
		},
	}

	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.repo.CreateAndReserve(ctx, fence, txn)
	})
	if err != nil {
		return nil, fmt.Errorf("geofence creation failed: %w", err)
	}

	if err := uc.gw.IndexFence(ctx, fence); err != nil {
		logger.Warn("failed to index geofence",
			logger.String("geofence_id", fence.ID.String()),
			logger.Err(err))
	}
	uc.publishEvent(constants.SubjectGeofenceCreated, fence)

	return fence, nil
}

// Claim settles an active fence to its recipient if the claimant is the
// snapshotted recipient and stands inside the bounding circle.
func (uc *GeofenceUC) Claim(ctx context.Context, req *models.ClaimGeofenceRequest) (*models.Geofence, error) {
	fence, err := uc.repo.GetGeofence(ctx, req.GeofenceID)
	if err != nil {
		return nil, err
	}

	switch fence.State {
	case models.GeofenceStateClaimed:
		return nil, apperrors.ErrAlreadyClaimed
	case models.GeofenceStateExpired, models.GeofenceStateCancelled:
		return nil, apperrors.ErrGeofenceNotEligible
	}
	if req.ClaimantAccountID != fence.RecipientAccountID {
		return nil, apperrors.ErrGeofenceNotEligible
	}
	if !utils.WithinFence(fence, req.Position) {
		return nil, apperrors.ErrGeofenceNotEligible
	}

	ownerID := fence.OwnerAccountID
	txn := &models.Transaction{
		AccountID:     fence.RecipientAccountID,
		Type:          models.TransactionTypeGeofence,
		Amount:        fence.Amount,
		Currency:      fence.Currency,
		Status:        models.TransactionStatusCompleted,
		CounterpartID: &ownerID,
		Detail: models.TransactionDetail{
			Kind: "geofence",
			Geofence: &models.GeofenceDetail{
				GeofenceID: fence.ID,
				Event:      "claimed",
			},
		},
	}

	var claimed *models.Geofence
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var execErr error
		claimed, execErr = uc.repo.Claim(ctx, fence.ID, txn)
		return execErr
	})
	if err != nil {
		return nil, err
	}

	if err := uc.gw.UnindexFence(ctx, fence.ID); err != nil {
		logger.Warn("failed to unindex geofence",
			logger.String("geofence_id", fence.ID.String()),
			logger.Err(err))
	}
	uc.publishEvent(constants.SubjectGeofenceClaimed, claimed)

	return claimed, nil
}

// Cancel releases an active fence back to its owner before it is claimed.
// Only the owner may cancel.
func (uc *GeofenceUC) Cancel(ctx context.Context, geofenceID, requesterAccountID uuid.UUID) (*models.Geofence, error) {
	fence, err := uc.repo.GetGeofence(ctx, geofenceID)
	if err != nil {
		return nil, err
	}
	if fence.OwnerAccountID != requesterAccountID {
		return nil, apperrors.ErrGeofenceNotEligible
	}

	released, err := uc.release(ctx, fence, models.GeofenceStateCancelled)
	if err != nil {
		return nil, err
	}
	return released, nil
}

// Get retrieves a fence by id.
func (uc *GeofenceUC) Get(ctx context.Context, geofenceID uuid.UUID) (*models.Geofence, error) {
	return uc.repo.GetGeofence(ctx, geofenceID)
}

// Nearby returns active, unexpired fences whose centers lie within radiusM of
// the position, served from the redis geo index.
func (uc *GeofenceUC) Nearby(ctx context.Context, position models.GeoPosition, radiusM float64) ([]models.Geofence, error) {
	if radiusM <= 0 {
		radiusM = models.GeofenceMaxRadiusM
	}

	ids, err := uc.gw.SearchNearby(ctx, position, radiusM)
	if err != nil {
		return nil, fmt.Errorf("geo search failed: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	fences, err := uc.repo.GetGeofencesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The index can lag behind expiry; filter on the authoritative rows.
	now := time.Now()
	live := fences[:0]
	for _, fence := range fences {
		if fence.ExpiresAt.After(now) {
			live = append(live, fence)
		}
	}
	return live, nil
}

// release refunds the owner, moves the fence to newState and emits the
// released event.
func (uc *GeofenceUC) release(ctx context.Context, fence *models.Geofence, newState string) (*models.Geofence, error) {
	recipientID := fence.RecipientAccountID
	txn := &models.Transaction{
		AccountID:     fence.OwnerAccountID,
		Type:          models.TransactionTypeGeofence,
		Amount:        fence.Amount,
		Currency:      fence.Currency,
		Status:        models.TransactionStatusCompleted,
		CounterpartID: &recipientID,
		Detail: models.TransactionDetail{
			Kind: "geofence",
			Geofence: &models.GeofenceDetail{
				GeofenceID: fence.ID,
				Event:      newState,
			},
		},
	}

	var released *models.Geofence
	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var execErr error
		released, execErr = uc.repo.Release(ctx, fence.ID, newState, txn)
		return execErr
	})
	if err != nil {
		return nil, err
	}

	if err := uc.gw.UnindexFence(ctx, fence.ID); err != nil {
		logger.Warn("failed to unindex geofence",
			logger.String("geofence_id", fence.ID.String()),
			logger.Err(err))
	}
	uc.publishEvent(constants.SubjectGeofenceReleased, released)

	return released, nil
}

func (uc *GeofenceUC) publishEvent(subject string, fence *models.Geofence) {
	event := &models.GeofenceEvent{
		GeofenceID:         fence.ID,
		OwnerAccountID:     fence.OwnerAccountID,
		RecipientAccountID: fence.RecipientAccountID,
		Amount:             fence.Amount,
		Currency:           fence.Currency,
		State:              fence.State,
		Timestamp:          time.Now(),
	}
	if err := uc.gw.PublishGeofenceEvent(subject, event); err != nil {
		logger.Warn("failed to publish geofence event",
			logger.String("subject", subject),
			logger.String("geofence_id", fence.ID.String()),
			logger.Err(err))
	}
}
