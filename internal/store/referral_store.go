package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ReferralStore struct {
	db DB
}

func NewReferralStore(db DB) *ReferralStore {
	return &ReferralStore{db: db}
}

// Reward is one SLHA reward log line. The SLHA balance is always the
// aggregate of these rows; there is no mirrored balance column.
type Reward struct {
	ID         int64           `db:"id"`
	CreatedAt  time.Time       `db:"created_at"`
	TelegramID int64           `db:"telegram_id"`
	DeltaSLHA  decimal.Decimal `db:"delta_slha"`
	Reason     string          `db:"reason"`
	Meta       *string         `db:"meta"`
}

type RewardInput struct {
	TelegramID int64
	DeltaSLHA  decimal.Decimal
	Reason     string
	Meta       *string
}

func (s *ReferralStore) Insert(ctx context.Context, tx Execer, input RewardInput) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO referral_rewards (telegram_id, delta_slha, reason, meta)
		VALUES ($1, $2, $3, $4)
	`, input.TelegramID, input.DeltaSLHA, input.Reason, input.Meta)
	return err
}

func (s *ReferralStore) SumByUser(ctx context.Context, telegramID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := s.db.GetContext(ctx, &sum, `
		SELECT COALESCE(SUM(delta_slha), 0)
		FROM referral_rewards
		WHERE telegram_id = $1
	`, telegramID)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (s *ReferralStore) ListByUser(ctx context.Context, telegramID int64, limit int) ([]Reward, error) {
	var rows []Reward
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, created_at, telegram_id, delta_slha, reason, meta
		FROM referral_rewards
		WHERE telegram_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, telegramID, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
