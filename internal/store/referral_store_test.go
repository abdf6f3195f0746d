package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestReferralStoreInsert(t *testing.T) {
	ctx := context.Background()
	execer := stubExecer{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO referral_rewards") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 4 || args[0] != int64(1001) || args[2] != "referral_bonus" {
				t.Fatalf("unexpected args: %#v", args)
			}
			return stubResult{rows: 1}, nil
		},
	}
	store := NewReferralStore(stubDB{})
	err := store.Insert(ctx, execer, RewardInput{
		TelegramID: 1001,
		DeltaSLHA:  decimal.RequireFromString("0.00001"),
		Reason:     "referral_bonus",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReferralStoreSumByUser(t *testing.T) {
	ctx := context.Background()
	store := NewReferralStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "SUM(delta_slha)") {
				t.Fatalf("unexpected query: %s", query)
			}
			*dest.(*decimal.Decimal) = decimal.RequireFromString("0.00002")
			return nil
		},
	})
	sum, err := store.SumByUser(ctx, 1001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.Equal(decimal.RequireFromString("0.00002")) {
		t.Fatalf("unexpected sum: %s", sum)
	}
}
