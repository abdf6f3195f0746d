package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"slhgateway/internal/db"
	"slhgateway/internal/money"
	"slhgateway/internal/store"
	"slhgateway/internal/websocket"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// Ledger entry categories. Every balance mutation writes exactly one
// entry with one of these values.
const (
	TxTypeTransfer      = "internal_transfer"
	TxTypeAdminCredit   = "admin_credit"
	TxTypeAdminDebit    = "admin_debit"
	TxTypeReferralBonus = "referral_bonus"
)

// Referral reward log reasons.
const (
	RewardReasonReferrer = "referral"
	RewardReasonReferred = "referred"
)

const defaultHistoryLimit = 10

type UserStore interface {
	Create(ctx context.Context, tx store.Execer, telegramID int64, username *string) (bool, error)
	Get(ctx context.Context, telegramID int64) (store.User, error)
	GetByUsername(ctx context.Context, username string) (store.User, error)
	GetForUpdate(ctx context.Context, tx store.Getter, telegramID int64) (store.User, error)
	UpdateBalance(ctx context.Context, tx store.Execer, telegramID int64, balance decimal.Decimal) error
	UpdateUsername(ctx context.Context, tx store.Execer, telegramID int64, username string) error
	SetAddress(ctx context.Context, tx store.Execer, telegramID int64, address string) error
	SetLanguage(ctx context.Context, tx store.Execer, telegramID int64, lang string) error
	ListTopByBalance(ctx context.Context, limit int) ([]store.User, error)
}

type EntryStore interface {
	Insert(ctx context.Context, tx store.Tx, input store.EntryInput) (store.Entry, error)
	ListByUser(ctx context.Context, telegramID int64, limit int) ([]store.Entry, error)
	ListAll(ctx context.Context, limit int) ([]store.Entry, error)
	SignedSum(ctx context.Context, telegramID int64) (decimal.Decimal, error)
	CountByTypeTo(ctx context.Context, telegramID int64, txType string) (int64, error)
}

type RewardStore interface {
	Insert(ctx context.Context, tx store.Execer, input store.RewardInput) error
	SumByUser(ctx context.Context, telegramID int64) (decimal.Decimal, error)
	ListByUser(ctx context.Context, telegramID int64, limit int) ([]store.Reward, error)
}

type EntryFeed interface {
	BroadcastEntry(event websocket.EntryEvent)
}

// Service owns every SLH balance mutation. All writes go through one
// serializable transaction so the balance column and the audit trail
// can never disagree.
type Service struct {
	txRunner       db.TxRunner
	users          UserStore
	entries        EntryStore
	rewards        RewardStore
	feed           EntryFeed
	referralReward decimal.Decimal
}

func NewService(txRunner db.TxRunner, users UserStore, entries EntryStore, rewards RewardStore, feed EntryFeed, referralReward decimal.Decimal) *Service {
	return &Service{
		txRunner:       txRunner,
		users:          users,
		entries:        entries,
		rewards:        rewards,
		feed:           feed,
		referralReward: referralReward,
	}
}

// GetOrCreateUser registers the Telegram account on first contact and
// keeps the stored username in sync afterwards. Safe to call on every
// update; returns true only when the row was just created.
func (s *Service) GetOrCreateUser(ctx context.Context, telegramID int64, username *string) (store.User, bool, error) {
	var created bool
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		created, err = s.users.Create(ctx, tx, telegramID, username)
		if err != nil {
			return err
		}
		if created || username == nil {
			return nil
		}
		row, err := s.users.GetForUpdate(ctx, tx, telegramID)
		if err != nil {
			return err
		}
		if row.Username != nil && *row.Username == *username {
			return nil
		}
		return s.users.UpdateUsername(ctx, tx, telegramID, *username)
	})
	if err != nil {
		return store.User{}, false, err
	}
	user, err := s.users.Get(ctx, telegramID)
	if err != nil {
		return store.User{}, false, err
	}
	return user, created, nil
}

func (s *Service) User(ctx context.Context, telegramID int64) (store.User, error) {
	return s.users.Get(ctx, telegramID)
}

// ResolveUsername finds the recipient for a transfer typed as
// "@handle". The leading @ is tolerated.
func (s *Service) ResolveUsername(ctx context.Context, username string) (store.User, error) {
	trimmed := username
	if len(trimmed) > 0 && trimmed[0] == '@' {
		trimmed = trimmed[1:]
	}
	user, err := s.users.GetByUsername(ctx, trimmed)
	if errors.Is(err, sql.ErrNoRows) {
		return store.User{}, ErrUnknownRecipient
	}
	return user, err
}

type TransferRequest struct {
	FromUser int64
	ToUser   int64
	Amount   decimal.Decimal
	Note     *string
}

// Transfer moves SLH between two registered investors. Both rows are
// locked in telegram_id order, the balances updated, and the audit
// entry written, all in one transaction.
func (s *Service) Transfer(ctx context.Context, req TransferRequest) (store.Entry, error) {
	if err := validateAmount(req.Amount); err != nil {
		return store.Entry{}, err
	}
	if req.FromUser == req.ToUser {
		return store.Entry{}, ErrSelfTransfer
	}
	var entry store.Entry
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		sender, recipient, err := lockTwoUsers(ctx, tx, s.users, req.FromUser, req.ToUser)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUnknownRecipient
			}
			return err
		}
		if sender.BalanceSLH.LessThan(req.Amount) {
			return ErrInsufficientFunds
		}
		if err := s.users.UpdateBalance(ctx, tx, req.FromUser, sender.BalanceSLH.Sub(req.Amount)); err != nil {
			return err
		}
		if err := s.users.UpdateBalance(ctx, tx, req.ToUser, recipient.BalanceSLH.Add(req.Amount)); err != nil {
			return err
		}
		entry, err = s.entries.Insert(ctx, tx, store.EntryInput{
			FromUser:  &req.FromUser,
			ToUser:    &req.ToUser,
			AmountSLH: req.Amount,
			TxType:    TxTypeTransfer,
			Note:      req.Note,
		})
		return err
	})
	if err != nil {
		return store.Entry{}, err
	}
	s.publish(entry)
	return entry, nil
}

// AdminAdjust credits (positive delta) or debits (negative delta) a
// single investor outside the transfer flow, e.g. after an off-chain
// purchase was confirmed manually.
func (s *Service) AdminAdjust(ctx context.Context, telegramID int64, delta decimal.Decimal, note *string) (store.Entry, error) {
	if delta.IsZero() || delta.Exponent() < -money.LedgerScale {
		return store.Entry{}, ErrInvalidAmount
	}
	var entry store.Entry
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		user, err := s.users.GetForUpdate(ctx, tx, telegramID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUnknownRecipient
			}
			return err
		}
		newBalance := user.BalanceSLH.Add(delta)
		if newBalance.IsNegative() {
			return ErrInsufficientFunds
		}
		if err := s.users.UpdateBalance(ctx, tx, telegramID, newBalance); err != nil {
			return err
		}
		input := store.EntryInput{
			AmountSLH: delta.Abs(),
			Note:      note,
		}
		if delta.IsPositive() {
			input.ToUser = &telegramID
			input.TxType = TxTypeAdminCredit
		} else {
			input.FromUser = &telegramID
			input.TxType = TxTypeAdminDebit
		}
		entry, err = s.entries.Insert(ctx, tx, input)
		return err
	})
	if err != nil {
		return store.Entry{}, err
	}
	s.publish(entry)
	return entry, nil
}

// ApplyReferralBonus rewards both sides of a referral in SLHA. The
// caller guarantees the referred user was just created; the referrer
// must already be registered. A zero-amount marker entry is written to
// the ledger so referral volume shows up in the audit trail and the
// per-referrer count can be derived from it.
func (s *Service) ApplyReferralBonus(ctx context.Context, newUserID, referrerID int64) (store.Entry, error) {
	if newUserID == referrerID {
		return store.Entry{}, ErrSelfReferral
	}
	var entry store.Entry
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.users.GetForUpdate(ctx, tx, referrerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUnknownRecipient
			}
			return err
		}
		referrerMeta := fmt.Sprintf(`{"referred":%d}`, newUserID)
		if err := s.rewards.Insert(ctx, tx, store.RewardInput{
			TelegramID: referrerID,
			DeltaSLHA:  s.referralReward,
			Reason:     RewardReasonReferrer,
			Meta:       &referrerMeta,
		}); err != nil {
			return err
		}
		referredMeta := fmt.Sprintf(`{"referrer":%d}`, referrerID)
		if err := s.rewards.Insert(ctx, tx, store.RewardInput{
			TelegramID: newUserID,
			DeltaSLHA:  s.referralReward,
			Reason:     RewardReasonReferred,
			Meta:       &referredMeta,
		}); err != nil {
			return err
		}
		var err error
		entry, err = s.entries.Insert(ctx, tx, store.EntryInput{
			FromUser:  &newUserID,
			ToUser:    &referrerID,
			AmountSLH: decimal.Zero,
			TxType:    TxTypeReferralBonus,
		})
		return err
	})
	if err != nil {
		return store.Entry{}, err
	}
	s.publish(entry)
	return entry, nil
}

func (s *Service) History(ctx context.Context, telegramID int64, limit int) ([]store.Entry, error) {
	return s.entries.ListByUser(ctx, telegramID, clampLimit(limit))
}

func (s *Service) GlobalLedger(ctx context.Context, limit int) ([]store.Entry, error) {
	return s.entries.ListAll(ctx, clampLimit(limit))
}

// SLHABalance is always derived from the reward log; there is no
// stored SLHA column to drift out of sync.
func (s *Service) SLHABalance(ctx context.Context, telegramID int64) (decimal.Decimal, error) {
	return s.rewards.SumByUser(ctx, telegramID)
}

func (s *Service) ReferralCount(ctx context.Context, telegramID int64) (int64, error) {
	return s.entries.CountByTypeTo(ctx, telegramID, TxTypeReferralBonus)
}

func (s *Service) RewardHistory(ctx context.Context, telegramID int64, limit int) ([]store.Reward, error) {
	return s.rewards.ListByUser(ctx, telegramID, clampLimit(limit))
}

func (s *Service) SetAddress(ctx context.Context, telegramID int64, address string) error {
	return s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.users.SetAddress(ctx, tx, telegramID, address)
	})
}

func (s *Service) SetLanguage(ctx context.Context, telegramID int64, lang string) error {
	return s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.users.SetLanguage(ctx, tx, telegramID, lang)
	})
}

func (s *Service) TopUsers(ctx context.Context, limit int) ([]store.User, error) {
	return s.users.ListTopByBalance(ctx, clampLimit(limit))
}

// VerifyBalance recomputes the user's balance from the ledger and
// compares it with the stored column. Backs /admin_verify.
func (s *Service) VerifyBalance(ctx context.Context, telegramID int64) (stored, computed decimal.Decimal, ok bool, err error) {
	user, err := s.users.Get(ctx, telegramID)
	if err != nil {
		return decimal.Zero, decimal.Zero, false, err
	}
	computed, err = s.entries.SignedSum(ctx, telegramID)
	if err != nil {
		return decimal.Zero, decimal.Zero, false, err
	}
	return user.BalanceSLH, computed, user.BalanceSLH.Equal(computed), nil
}

func (s *Service) publish(entry store.Entry) {
	if s.feed == nil {
		return
	}
	s.feed.BroadcastEntry(websocket.EntryEvent{
		ID:        entry.ID,
		CreatedAt: entry.CreatedAt,
		FromUser:  entry.FromUser,
		ToUser:    entry.ToUser,
		AmountSLH: entry.AmountSLH.StringFixed(money.LedgerScale),
		TxType:    entry.TxType,
	})
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.Exponent() < -money.LedgerScale {
		return ErrInvalidAmount
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return defaultHistoryLimit
	}
	return limit
}

// lockTwoUsers acquires both row locks in telegram_id order so two
// opposite transfers cannot deadlock each other.
func lockTwoUsers(ctx context.Context, tx store.Getter, users UserStore, firstID, secondID int64) (store.User, store.User, error) {
	leftID, rightID := orderedIDs(firstID, secondID)
	left, err := users.GetForUpdate(ctx, tx, leftID)
	if err != nil {
		return store.User{}, store.User{}, err
	}
	right, err := users.GetForUpdate(ctx, tx, rightID)
	if err != nil {
		return store.User{}, store.User{}, err
	}
	if firstID == leftID {
		return left, right, nil
	}
	return right, left, nil
}

func orderedIDs(firstID, secondID int64) (int64, int64) {
	if firstID <= secondID {
		return firstID, secondID
	}
	return secondID, firstID
}
