package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LedgerStore struct {
	db DB
}

func NewLedgerStore(db DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// Entry is one immutable audit record. Rows are inserted in the same
// transaction as the balance change they describe and never touched
// again.
type Entry struct {
	ID        int64           `db:"id"`
	CreatedAt time.Time       `db:"created_at"`
	FromUser  *int64          `db:"from_user"`
	ToUser    *int64          `db:"to_user"`
	AmountSLH decimal.Decimal `db:"amount_slh"`
	TxType    string          `db:"tx_type"`
	Note      *string         `db:"note"`
}

type EntryInput struct {
	FromUser  *int64
	ToUser    *int64
	AmountSLH decimal.Decimal
	TxType    string
	Note      *string
}

func (s *LedgerStore) Insert(ctx context.Context, tx Tx, input EntryInput) (Entry, error) {
	var row Entry
	err := tx.GetContext(ctx, &row, `
		INSERT INTO ledger_entries (from_user, to_user, amount_slh, tx_type, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, from_user, to_user, amount_slh, tx_type, note
	`, input.FromUser, input.ToUser, input.AmountSLH, input.TxType, input.Note)
	if err != nil {
		return Entry{}, err
	}
	return row, nil
}

// ListByUser returns the most recent entries the user appears in,
// newest first.
func (s *LedgerStore) ListByUser(ctx context.Context, telegramID int64, limit int) ([]Entry, error) {
	var rows []Entry
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, created_at, from_user, to_user, amount_slh, tx_type, note
		FROM ledger_entries
		WHERE from_user = $1 OR to_user = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, telegramID, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *LedgerStore) ListAll(ctx context.Context, limit int) ([]Entry, error) {
	var rows []Entry
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, created_at, from_user, to_user, amount_slh, tx_type, note
		FROM ledger_entries
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SignedSum computes the user's balance from the audit trail alone:
// entries received count positive, entries sent count negative. Used
// by the reconciliation check against users.balance_slh.
func (s *LedgerStore) SignedSum(ctx context.Context, telegramID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := s.db.GetContext(ctx, &sum, `
		SELECT COALESCE(SUM(CASE WHEN to_user = $1 THEN amount_slh ELSE 0 END), 0)
		     - COALESCE(SUM(CASE WHEN from_user = $1 THEN amount_slh ELSE 0 END), 0)
		FROM ledger_entries
		WHERE from_user = $1 OR to_user = $1
	`, telegramID)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// CountByTypeTo counts entries of one category credited to the user.
// The referral program uses it with the referral_bonus marker rows.
func (s *LedgerStore) CountByTypeTo(ctx context.Context, telegramID int64, txType string) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM ledger_entries
		WHERE to_user = $1 AND tx_type = $2
	`, telegramID, txType)
	return count, err
}
