package monitoring

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"slhgateway/internal/chain"
	"slhgateway/internal/config"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(context.Context) error {
	return s.err
}

type stubChain struct {
	available bool
	balances  chain.Balances
	err       error
}

func (s stubChain) Available() bool {
	return s.available
}

func (s stubChain) Balances(context.Context, string) (chain.Balances, error) {
	return s.balances, s.err
}

func fullConfig() config.Config {
	return config.Config{
		BotToken:               "token",
		DatabaseURL:            "postgres://x",
		BSCRPCURL:              "https://rpc",
		CommunityWalletAddress: "0x8894E0a0c962CB723c1976a4421c95949bE2D4E3",
		TokenAddress:           "0x0E09FaBB73Bd3Ade0a17ECC321fD13a19e81cE82",
	}
}

func newTest(db DBPinger, chainClient ChainClient, cfg config.Config) *SelfTest {
	return NewSelfTest(db, chainClient, cfg, zap.NewNop())
}

func TestQuickSelfTestAllOK(t *testing.T) {
	st := newTest(stubPinger{}, stubChain{available: true, balances: chain.Balances{BNB: decimal.New(1, 0)}}, fullConfig())
	report := st.Run(context.Background(), true)
	if report.Status != StatusOK {
		t.Fatalf("expected ok, got %s: %#v", report.Status, report.Checks)
	}
	for _, name := range []string{"database", "env", "telegram", "bsc"} {
		if !report.Checks[name].OK {
			t.Fatalf("expected %s ok: %#v", name, report.Checks[name])
		}
	}
}

func TestDatabaseFailureIsError(t *testing.T) {
	st := newTest(stubPinger{err: errors.New("connection refused")}, stubChain{available: true}, fullConfig())
	report := st.Run(context.Background(), true)
	if report.Status != StatusError {
		t.Fatalf("expected error, got %s", report.Status)
	}
	if report.Checks["database"].OK {
		t.Fatalf("expected database check to fail")
	}
}

func TestMissingEnvIsDegraded(t *testing.T) {
	cfg := fullConfig()
	cfg.TokenAddress = ""
	st := newTest(stubPinger{}, stubChain{available: true}, cfg)
	report := st.Run(context.Background(), true)
	if report.Status != StatusDegraded {
		t.Fatalf("expected degraded, got %s", report.Status)
	}
	env := report.Checks["env"]
	if len(env.Missing) != 1 || env.Missing[0] != "SLH_TOKEN_ADDRESS" {
		t.Fatalf("unexpected missing list: %#v", env.Missing)
	}
}

func TestBSCUnconfiguredIsSkipped(t *testing.T) {
	cfg := fullConfig()
	cfg.BSCRPCURL = ""
	st := newTest(stubPinger{}, stubChain{}, cfg)
	report := st.Run(context.Background(), true)
	if report.Status != StatusDegraded {
		t.Fatalf("expected degraded, got %s", report.Status)
	}
	if !report.Checks["bsc"].Skipped {
		t.Fatalf("expected bsc check skipped: %#v", report.Checks["bsc"])
	}
}

func TestRunCollectsEveryCheck(t *testing.T) {
	st := newTest(stubPinger{}, stubChain{available: true, balances: chain.Balances{BNB: decimal.New(5, 0)}}, fullConfig())
	report := st.Run(context.Background(), true)
	if len(report.Checks) != 4 {
		t.Fatalf("expected 4 checks, got %d: %#v", len(report.Checks), report.Checks)
	}
}

func TestMergeWorstStatusWins(t *testing.T) {
	report := Report{Status: StatusOK, Checks: map[string]Check{}}
	report.merge("a", Check{OK: true}, StatusOK)
	if report.Status != StatusOK {
		t.Fatalf("expected ok, got %s", report.Status)
	}
	report.merge("b", Check{OK: false}, StatusDegraded)
	if report.Status != StatusDegraded {
		t.Fatalf("expected degraded, got %s", report.Status)
	}
	report.merge("c", Check{OK: false}, StatusError)
	if report.Status != StatusError {
		t.Fatalf("expected error, got %s", report.Status)
	}
	// A later healthy check never improves the overall status.
	report.merge("d", Check{OK: true}, StatusOK)
	if report.Status != StatusError {
		t.Fatalf("expected error to stick, got %s", report.Status)
	}
	if len(report.Checks) != 4 {
		t.Fatalf("expected 4 recorded checks, got %d", len(report.Checks))
	}
}

func TestDeepTelegramCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottoken/getMe" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true,"result":{"id":42,"username":"slh_bot"}}`))
	}))
	defer server.Close()

	st := newTest(stubPinger{}, stubChain{available: true}, fullConfig())
	st.apiBase = server.URL
	report := st.Run(context.Background(), false)
	tg := report.Checks["telegram"]
	if !tg.OK || tg.Detail["username"] != "slh_bot" {
		t.Fatalf("unexpected telegram check: %#v", tg)
	}
}

func TestDeepTelegramCheckFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false}`))
	}))
	defer server.Close()

	st := newTest(stubPinger{}, stubChain{available: true}, fullConfig())
	st.apiBase = server.URL
	report := st.Run(context.Background(), false)
	if report.Status != StatusError {
		t.Fatalf("expected error, got %s", report.Status)
	}
}
