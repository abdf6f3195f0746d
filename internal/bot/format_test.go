package bot

import (
	"strings"
	"testing"
	"time"

	"slhgateway/internal/config"
	"slhgateway/internal/store"

	"github.com/shopspring/decimal"
)

func testConfig() config.Config {
	return config.Config{
		BSCScanBase:            "https://bscscan.com",
		TokenAddress:           "0x2222222222222222222222222222222222222222",
		CommunityWalletAddress: "0x3333333333333333333333333333333333333333",
		SLHPriceNIS:            decimal.NewFromInt(444),
		ReferralReward:         decimal.RequireFromString("0.00001"),
		DocsURL:                "https://docs.example.com",
		DefaultLanguage:        "en",
	}
}

func TestInvestorTier(t *testing.T) {
	cases := []struct {
		balance string
		want    string
	}{
		{"750000", "Ultra Strategic"},
		{"500000", "Ultra Strategic"},
		{"499999.99", "Strategic"},
		{"100000", "Strategic"},
		{"10000", "Core"},
		{"9999.99", "Early"},
		{"0.000001", "Early"},
		{"0", "—"},
	}
	for _, tc := range cases {
		balance, err := decimal.NewFromString(tc.balance)
		if err != nil {
			t.Fatalf("bad test balance %q: %v", tc.balance, err)
		}
		if got := investorTier(balance); got != tc.want {
			t.Errorf("investorTier(%s) = %q, want %q", tc.balance, got, tc.want)
		}
	}
}

func TestWebhookEndpoint(t *testing.T) {
	if got := webhookEndpoint("https://bot.example.com/"); got != "https://bot.example.com/webhook/telegram" {
		t.Errorf("unexpected endpoint %q", got)
	}
	if got := webhookEndpoint("https://bot.example.com"); got != "https://bot.example.com/webhook/telegram" {
		t.Errorf("unexpected endpoint %q", got)
	}
}

func TestReferralLink(t *testing.T) {
	if got := referralLink("slh_invest_bot", 42); got != "https://t.me/slh_invest_bot?start=ref_42" {
		t.Errorf("unexpected link %q", got)
	}
	if got := referralLink("", 42); !strings.Contains(got, "Unavailable") {
		t.Errorf("expected placeholder for missing username, got %q", got)
	}
}

func TestFormatEntryLineDirections(t *testing.T) {
	me := int64(10)
	other := int64(20)
	created := time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC)
	amount := decimal.RequireFromString("12.5")

	entry := store.Entry{
		ID:        7,
		FromUser:  &me,
		ToUser:    &other,
		AmountSLH: amount,
		TxType:    "internal_transfer",
		CreatedAt: created,
	}
	line := formatEntryLine(entry, me)
	want := "[2026-03-14 15:04] OUT – 12.5000 SLH (type=internal_transfer, id=7)"
	if line != want {
		t.Errorf("got %q, want %q", line, want)
	}

	if got := entryDirection(entry, other); got != "IN" {
		t.Errorf("direction for recipient = %q, want IN", got)
	}

	entry.ToUser = &me
	if got := entryDirection(entry, me); got != "SELF" {
		t.Errorf("direction for marker entry = %q, want SELF", got)
	}

	entry.FromUser = nil
	entry.ToUser = &other
	if got := entryDirection(entry, me); got != "OTHER" {
		t.Errorf("direction for unrelated entry = %q, want OTHER", got)
	}
}

func TestFormatLedgerLineNilParties(t *testing.T) {
	to := int64(99)
	entry := store.Entry{
		ID:        3,
		FromUser:  nil,
		ToUser:    &to,
		AmountSLH: decimal.RequireFromString("1000"),
		TxType:    "admin_credit",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
	}
	line := formatLedgerLine(entry)
	want := "[2026-01-02 03:04] admin_credit – 1000.0000 SLH | from=- -> to=99 | id=3"
	if line != want {
		t.Errorf("got %q, want %q", line, want)
	}
}

func TestStartTextReflectsWalletAndBalance(t *testing.T) {
	cfg := testConfig()

	user := store.User{TelegramID: 1, BalanceSLH: decimal.Zero}
	text := startText("en", user, cfg)
	if !strings.Contains(text, "100000") {
		t.Error("start text should mention the minimum investment")
	}

	addr := "0x1111111111111111111111111111111111111111"
	user.BNBAddress = &addr
	user.BalanceSLH = decimal.RequireFromString("250")
	text = startText("en", user, cfg)
	if !strings.Contains(text, addr) {
		t.Error("start text should echo the linked address")
	}
	if !strings.Contains(text, "250.0000") {
		t.Error("start text should echo the balance")
	}
}

func TestSummaryTextTierAndYield(t *testing.T) {
	cfg := testConfig()
	user := store.User{
		TelegramID: 5,
		BalanceSLH: decimal.RequireFromString("100000"),
	}
	text := summaryText(user, decimal.RequireFromString("0.00002"), cfg, nil)
	if !strings.Contains(text, "Strategic") {
		t.Error("summary should name the investor tier")
	}
	if !strings.Contains(text, "10000.0000 SLH") {
		t.Error("summary should show the 10% hypothetical yield")
	}
	if !strings.Contains(text, "0.00002000 SLHA") {
		t.Error("summary should show SLHA at 8 decimal places")
	}
}
