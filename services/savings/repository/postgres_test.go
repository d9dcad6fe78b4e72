package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

var (
	ownerID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	feeAcctID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func newMockRepo(t *testing.T) (*PostgresSavingsRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &PostgresSavingsRepo{db: sqlx.NewDb(mockDB, "postgres")}, mock
}

func lockColumnNames() []string {
	return []string{
		"id", "owner_account_id", "principal", "currency", "rate_bps",
		"term_months", "state", "locked_at", "unlocks_at", "resolved_at",
	}
}

func lockRow(id uuid.UUID, state string, unlocksAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(lockColumnNames()).AddRow(
		id, ownerID, int64(100000), "USD", int64(200),
		3, state, unlocksAt.AddDate(0, -3, 0), unlocksAt, nil,
	)
}

func expectLock(mock sqlmock.Sqlmock, id uuid.UUID, balance int64) {
	mock.ExpectQuery("SELECT balance FROM accounts WHERE id = \\$1 FOR UPDATE").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(balance))
}

func expectAdjust(mock sqlmock.Sqlmock, id uuid.UUID, delta int64) {
	mock.ExpectExec("UPDATE accounts SET balance = balance \\+ \\$1").
		WithArgs(delta, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestCreateLock_DebitsPrincipal(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	expectLock(mock, ownerID, 150000)
	expectAdjust(mock, ownerID, -100000)
	mock.ExpectExec("INSERT INTO savings_locks").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	now := time.Now()
	lock := &models.SavingsLock{
		OwnerAccountID: ownerID,
		Principal:      100000,
		Currency:       "USD",
		RateBps:        200,
		TermMonths:     3,
		LockedAt:       now,
		UnlocksAt:      now.AddDate(0, 3, 0),
	}
	txn := &models.Transaction{
		AccountID: ownerID,
		Type:      models.TransactionTypeSavings,
		Amount:    100000,
		Currency:  "USD",
		Status:    models.TransactionStatusCompleted,
	}

	err := repo.CreateLock(context.Background(), lock, txn)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, lock.ID)
	assert.Equal(t, models.SavingsStateActive, lock.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLock_InsufficientFunds(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	expectLock(mock, ownerID, 50000)
	mock.ExpectRollback()

	lock := &models.SavingsLock{
		OwnerAccountID: ownerID,
		Principal:      100000,
		Currency:       "USD",
	}

	err := repo.CreateLock(context.Background(), lock, &models.Transaction{})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreakLock_SplitsCreditAndPenalty(t *testing.T) {
	repo, mock := newMockRepo(t)

	lockID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM savings_locks WHERE id = \\$1 FOR UPDATE").
		WithArgs(lockID).
		WillReturnRows(lockRow(lockID, models.SavingsStateActive, time.Now().AddDate(0, 2, 0)))
	expectLock(mock, ownerID, 0)
	expectLock(mock, feeAcctID, 0)
	expectAdjust(mock, ownerID, 95164)
	expectAdjust(mock, feeAcctID, 5000)
	mock.ExpectExec("UPDATE savings_locks").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	txn := &models.Transaction{
		AccountID: ownerID,
		Type:      models.TransactionTypeSavings,
		Amount:    95164,
		Fee:       5000,
		Currency:  "USD",
		Status:    models.TransactionStatusCompleted,
	}

	broken, err := repo.BreakLock(context.Background(), lockID, 95164, 5000, feeAcctID, txn)
	require.NoError(t, err)
	assert.Equal(t, models.SavingsStateBrokenEarly, broken.State)
	require.NotNil(t, broken.ResolvedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreakLock_MaturedLockRejected(t *testing.T) {
	repo, mock := newMockRepo(t)

	lockID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM savings_locks WHERE id = \\$1 FOR UPDATE").
		WithArgs(lockID).
		WillReturnRows(lockRow(lockID, models.SavingsStateActive, time.Now().Add(-time.Hour)))
	mock.ExpectRollback()

	_, err := repo.BreakLock(context.Background(), lockID, 95164, 5000, feeAcctID, &models.Transaction{})
	assert.ErrorIs(t, err, apperrors.ErrLockAlreadyResolved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawMatured_CreditsPayout(t *testing.T) {
	repo, mock := newMockRepo(t)

	lockID := uuid.New()
	mock.ExpectBegin()
	// Still in the active state: the term elapsed before the sweep ran.
	mock.ExpectQuery("SELECT (.+) FROM savings_locks WHERE id = \\$1 FOR UPDATE").
		WithArgs(lockID).
		WillReturnRows(lockRow(lockID, models.SavingsStateActive, time.Now().Add(-time.Hour)))
	expectLock(mock, ownerID, 0)
	expectAdjust(mock, ownerID, 100500)
	mock.ExpectExec("UPDATE savings_locks").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	txn := &models.Transaction{
		AccountID: ownerID,
		Type:      models.TransactionTypeSavings,
		Amount:    100500,
		Currency:  "USD",
		Status:    models.TransactionStatusCompleted,
	}

	withdrawn, err := repo.WithdrawMatured(context.Background(), lockID, 100500, txn)
	require.NoError(t, err)
	assert.Equal(t, models.SavingsStateWithdrawn, withdrawn.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawMatured_BeforeTermRejected(t *testing.T) {
	repo, mock := newMockRepo(t)

	lockID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM savings_locks WHERE id = \\$1 FOR UPDATE").
		WithArgs(lockID).
		WillReturnRows(lockRow(lockID, models.SavingsStateActive, time.Now().AddDate(0, 2, 0)))
	mock.ExpectRollback()

	_, err := repo.WithdrawMatured(context.Background(), lockID, 100500, &models.Transaction{})
	assert.ErrorIs(t, err, apperrors.ErrLockNotMatured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkMatured_ReportsFlip(t *testing.T) {
	repo, mock := newMockRepo(t)

	lockID := uuid.New()
	now := time.Now()

	mock.ExpectExec("UPDATE savings_locks").
		WithArgs(models.SavingsStateMatured, lockID, models.SavingsStateActive, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	flipped, err := repo.MarkMatured(context.Background(), lockID, now)
	require.NoError(t, err)
	assert.True(t, flipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkMatured_NoopWhenAlreadyFlipped(t *testing.T) {
	repo, mock := newMockRepo(t)

	lockID := uuid.New()
	now := time.Now()

	mock.ExpectExec("UPDATE savings_locks").
		WithArgs(models.SavingsStateMatured, lockID, models.SavingsStateActive, now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	flipped, err := repo.MarkMatured(context.Background(), lockID, now)
	require.NoError(t, err)
	assert.False(t, flipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}
