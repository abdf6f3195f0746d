package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

// User is one investor row. TelegramID is the external identity and
// never changes; everything else is best-effort synced or mutable.
type User struct {
	TelegramID int64           `db:"telegram_id"`
	Username   *string         `db:"username"`
	BNBAddress *string         `db:"bnb_address"`
	BalanceSLH decimal.Decimal `db:"balance_slh"`
	Language   *string         `db:"language"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

// Create inserts the row if it does not exist yet. Returns true when a
// new row was written, false when the user was already registered.
func (s *UserStore) Create(ctx context.Context, tx Execer, telegramID int64, username *string) (bool, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO users (telegram_id, username)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO NOTHING
	`, telegramID, username)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *UserStore) Get(ctx context.Context, telegramID int64) (User, error) {
	var row User
	err := s.db.GetContext(ctx, &row, `
		SELECT telegram_id, username, bnb_address, balance_slh, language, created_at, updated_at
		FROM users
		WHERE telegram_id = $1
	`, telegramID)
	if err != nil {
		return User{}, err
	}
	return row, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (User, error) {
	var row User
	err := s.db.GetContext(ctx, &row, `
		SELECT telegram_id, username, bnb_address, balance_slh, language, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		return User{}, err
	}
	return row, nil
}

// GetForUpdate locks the user row for the rest of the transaction.
func (s *UserStore) GetForUpdate(ctx context.Context, tx Getter, telegramID int64) (User, error) {
	var row User
	err := tx.GetContext(ctx, &row, `
		SELECT telegram_id, username, bnb_address, balance_slh, language
		FROM users
		WHERE telegram_id = $1
		FOR UPDATE
	`, telegramID)
	if err != nil {
		return User{}, err
	}
	return row, nil
}

func (s *UserStore) UpdateBalance(ctx context.Context, tx Execer, telegramID int64, balance decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE users
		SET balance_slh = $1, updated_at = NOW()
		WHERE telegram_id = $2
	`, balance, telegramID)
	return err
}

func (s *UserStore) UpdateUsername(ctx context.Context, tx Execer, telegramID int64, username string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE users
		SET username = $1, updated_at = NOW()
		WHERE telegram_id = $2
	`, username, telegramID)
	return err
}

func (s *UserStore) SetAddress(ctx context.Context, tx Execer, telegramID int64, address string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE users
		SET bnb_address = $1, updated_at = NOW()
		WHERE telegram_id = $2
	`, address, telegramID)
	return err
}

func (s *UserStore) SetLanguage(ctx context.Context, tx Execer, telegramID int64, lang string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE users
		SET language = $1, updated_at = NOW()
		WHERE telegram_id = $2
	`, lang, telegramID)
	return err
}

// ListTopByBalance backs the admin user overview.
func (s *UserStore) ListTopByBalance(ctx context.Context, limit int) ([]User, error) {
	var rows []User
	err := s.db.SelectContext(ctx, &rows, `
		SELECT telegram_id, username, bnb_address, balance_slh, language, created_at, updated_at
		FROM users
		ORDER BY balance_slh DESC, telegram_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
