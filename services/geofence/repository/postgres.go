package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/services/geofence"
)

const fenceColumns = `
	id, owner_account_id, recipient_account_id, recipient_email,
	center_lat, center_lng, radius_m, geohash, amount, currency, memo,
	state, created_at, expires_at, claimed_at, resolved_at`

// PostgresGeofenceRepo implements the geofence.Repository interface
type PostgresGeofenceRepo struct {
	db *sqlx.DB
}

// NewGeofenceRepository creates a new geofence repository
func NewGeofenceRepository(db *sqlx.DB) geofence.Repository {
	return &PostgresGeofenceRepo{db: db}
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return fmt.Errorf("%w: %s", apperrors.ErrConcurrentModification, pgErr.Code)
		case "23505":
			return fmt.Errorf("%w: duplicate key", apperrors.ErrConcurrentModification)
		}
	}
	return err
}

// GetGeofence retrieves a fence by id
func (r *PostgresGeofenceRepo) GetGeofence(ctx context.Context, id uuid.UUID) (*models.Geofence, error) {
	var fence models.Geofence
	err := r.db.GetContext(ctx, &fence,
		`SELECT `+fenceColumns+` FROM geofences WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrGeofenceNotFound
		}
		return nil, fmt.Errorf("failed to get geofence: %w", err)
	}
	return &fence, nil
}

// GetGeofencesByIDs retrieves the active fences among the given ids
func (r *PostgresGeofenceRepo) GetGeofencesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Geofence, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+fenceColumns+` FROM geofences WHERE id IN (?) AND state = ?`,
		ids, models.GeofenceStateActive)
	if err != nil {
		return nil, fmt.Errorf("failed to build geofence query: %w", err)
	}

	var fences []models.Geofence
	err = r.db.SelectContext(ctx, &fences, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get geofences: %w", err)
	}
	return fences, nil
}

// ListExpiredActive fetches active fences whose deadline has passed
func (r *PostgresGeofenceRepo) ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]models.Geofence, error) {
	if limit <= 0 {
		limit = 100
	}

	var fences []models.Geofence
	err := r.db.SelectContext(ctx, &fences,
		`SELECT `+fenceColumns+`
		FROM geofences
		WHERE state = $1 AND expires_at <= $2
		ORDER BY expires_at
		LIMIT $3`, models.GeofenceStateActive, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired geofences: %w", err)
	}
	return fences, nil
}

// CreateAndReserve debits the owner and inserts the fence with its audit
// record in one atomic unit
func (r *PostgresGeofenceRepo) CreateAndReserve(ctx context.Context, fence *models.Geofence, txn *models.Transaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	balances, err := lockBalances(ctx, tx, fence.OwnerAccountID)
	if err != nil {
		return err
	}
	if balances[fence.OwnerAccountID] < fence.Amount {
		return &apperrors.InsufficientFundsError{
			Required:  fence.Amount,
			Available: balances[fence.OwnerAccountID],
		}
	}

	if err := adjustBalance(ctx, tx, fence.OwnerAccountID, -fence.Amount); err != nil {
		return err
	}

	if fence.ID == uuid.Nil {
		fence.ID = uuid.New()
	}
	if fence.CreatedAt.IsZero() {
		fence.CreatedAt = time.Now()
	}
	fence.State = models.GeofenceStateActive

	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO geofences (
			id, owner_account_id, recipient_account_id, recipient_email,
			center_lat, center_lng, radius_m, geohash, amount, currency,
			memo, state, created_at, expires_at
		) VALUES (
			:id, :owner_account_id, :recipient_account_id, :recipient_email,
			:center_lat, :center_lng, :radius_m, :geohash, :amount, :currency,
			:memo, :state, :created_at, :expires_at
		)
	`, fence); err != nil {
		return translatePgError(fmt.Errorf("failed to insert geofence: %w", err))
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return translatePgError(fmt.Errorf("failed to commit geofence creation: %w", err))
	}
	return nil
}

// Claim settles an active fence to its recipient
func (r *PostgresGeofenceRepo) Claim(ctx context.Context, fenceID uuid.UUID, txn *models.Transaction) (*models.Geofence, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	fence, err := lockGeofence(ctx, tx, fenceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch fence.State {
	case models.GeofenceStateClaimed:
		return nil, apperrors.ErrAlreadyClaimed
	case models.GeofenceStateExpired, models.GeofenceStateCancelled:
		return nil, apperrors.ErrGeofenceNotEligible
	}
	if now.After(fence.ExpiresAt) {
		return nil, apperrors.ErrGeofenceNotEligible
	}

	if _, err := lockBalances(ctx, tx, fence.RecipientAccountID); err != nil {
		return nil, err
	}
	if err := adjustBalance(ctx, tx, fence.RecipientAccountID, fence.Amount); err != nil {
		return nil, err
	}

	fence.State = models.GeofenceStateClaimed
	fence.ClaimedAt = &now
	fence.ResolvedAt = &now
	if _, err := tx.ExecContext(ctx, `
		UPDATE geofences
		SET state = $1, claimed_at = $2, resolved_at = $2
		WHERE id = $3
	`, fence.State, now, fenceID); err != nil {
		return nil, translatePgError(fmt.Errorf("failed to mark geofence claimed: %w", err))
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, translatePgError(fmt.Errorf("failed to commit geofence claim: %w", err))
	}
	return fence, nil
}

// Release refunds the owner and moves the fence to newState
func (r *PostgresGeofenceRepo) Release(ctx context.Context, fenceID uuid.UUID, newState string, txn *models.Transaction) (*models.Geofence, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	fence, err := lockGeofence(ctx, tx, fenceID)
	if err != nil {
		return nil, err
	}

	if fence.State == newState {
		return fence, nil
	}
	if fence.State != models.GeofenceStateActive {
		if fence.State == models.GeofenceStateClaimed {
			return nil, apperrors.ErrAlreadyClaimed
		}
		return nil, apperrors.ErrGeofenceNotEligible
	}

	if _, err := lockBalances(ctx, tx, fence.OwnerAccountID); err != nil {
		return nil, err
	}
	if err := adjustBalance(ctx, tx, fence.OwnerAccountID, fence.Amount); err != nil {
		return nil, err
	}

	now := time.Now()
	fence.State = newState
	fence.ResolvedAt = &now
	if _, err := tx.ExecContext(ctx, `
		UPDATE geofences
		SET state = $1, resolved_at = $2
		WHERE id = $3
	`, newState, now, fenceID); err != nil {
		return nil, translatePgError(fmt.Errorf("failed to release geofence: %w", err))
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, translatePgError(fmt.Errorf("failed to commit geofence release: %w", err))
	}
	return fence, nil
}

// lockGeofence loads a fence row under FOR UPDATE
func lockGeofence(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*models.Geofence, error) {
	var fence models.Geofence
	err := tx.GetContext(ctx, &fence,
		`SELECT `+fenceColumns+` FROM geofences WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrGeofenceNotFound
		}
		return nil, translatePgError(fmt.Errorf("failed to lock geofence: %w", err))
	}
	return &fence, nil
}

// lockBalances acquires account row locks in sorted id order, matching the
// lock ordering used by every other balance writer.
func lockBalances(ctx context.Context, tx *sqlx.Tx, ids ...uuid.UUID) (map[uuid.UUID]int64, error) {
	sorted := make([]uuid.UUID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})

	balances := make(map[uuid.UUID]int64, len(sorted))
	for _, id := range sorted {
		if _, seen := balances[id]; seen {
			continue
		}
		var balance int64
		err := tx.QueryRowxContext(ctx, `
			SELECT balance FROM accounts WHERE id = $1 FOR UPDATE
		`, id).Scan(&balance)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperrors.ErrAccountNotFound
			}
			return nil, translatePgError(fmt.Errorf("failed to lock account %s: %w", id, err))
		}
		balances[id] = balance
	}
	return balances, nil
}

func adjustBalance(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, delta int64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2
	`, delta, id)
	if err != nil {
		return translatePgError(fmt.Errorf("failed to adjust balance: %w", err))
	}
	return nil
}

func insertTransaction(ctx context.Context, tx *sqlx.Tx, txn *models.Transaction) error {
	now := time.Now()
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.UpdatedAt = now

	_, err := tx.NamedExecContext(ctx, `
		INSERT INTO transactions (
			id, account_id, type, amount, fee, currency, status,
			counterpart_id, counterpart_email, processor_ref,
			idempotency_key, detail, created_at, updated_at
		) VALUES (
			:id, :account_id, :type, :amount, :fee, :currency, :status,
			:counterpart_id, :counterpart_email, :processor_ref,
			:idempotency_key, :detail, :created_at, :updated_at
		)
	`, txn)
	if err != nil {
		return translatePgError(fmt.Errorf("failed to insert transaction: %w", err))
	}
	return nil
}
