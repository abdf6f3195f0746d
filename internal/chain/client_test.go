package chain

import (
	"context"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestValidAddress(t *testing.T) {
	cases := []struct {
		address string
		want    bool
	}{
		{"0x8894E0a0c962CB723c1976a4421c95949bE2D4E3", true},
		{"0x8894e0a0c962cb723c1976a4421c95949be2d4e3", true},
		{"8894E0a0c962CB723c1976a4421c95949bE2D4E3", true},
		{"0x8894", false},
		{"not-an-address", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidAddress(tc.address); got != tc.want {
			t.Fatalf("ValidAddress(%q) = %v, want %v", tc.address, got, tc.want)
		}
	}
}

func TestWeiConversion(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	if !ok {
		t.Fatal("bad literal")
	}
	got := fromWei(wei, 18)
	if !got.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("fromWei = %s, want 1.5", got)
	}
	back := toWei(got, 18)
	if back.Cmp(wei) != 0 {
		t.Fatalf("toWei = %s, want %s", back, wei)
	}
}

func TestUnavailableClient(t *testing.T) {
	client := &Client{logger: zap.NewNop()}
	if client.Available() {
		t.Fatal("expected unavailable client")
	}
	if _, err := client.Balances(context.Background(), "0x8894E0a0c962CB723c1976a4421c95949bE2D4E3"); err != ErrChainUnavailable {
		t.Fatalf("expected ErrChainUnavailable, got %v", err)
	}
	if _, err := client.SendBNB(context.Background(), "0x8894E0a0c962CB723c1976a4421c95949bE2D4E3", decimal.New(1, 0)); err != ErrChainUnavailable {
		t.Fatalf("expected ErrChainUnavailable, got %v", err)
	}
	if err := client.Ping(context.Background()); err != ErrChainUnavailable {
		t.Fatalf("expected ErrChainUnavailable, got %v", err)
	}
}

func TestExplorerURLs(t *testing.T) {
	client := &Client{scanBase: "https://bscscan.com"}
	if got := client.TxURL("0xabc"); got != "https://bscscan.com/tx/0xabc" {
		t.Fatalf("unexpected tx url: %s", got)
	}
	if got := client.AddressURL("0xdef"); got != "https://bscscan.com/address/0xdef" {
		t.Fatalf("unexpected address url: %s", got)
	}
}
