package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"slhgateway/internal/chain"
	"slhgateway/internal/config"

	"go.uber.org/zap"
)

type Status string

const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
	StatusError    Status = "error"
)

// Check is one probe result. Detail carries probe-specific extras like
// the bot username or on-chain balances.
type Check struct {
	OK      bool              `json:"ok"`
	Skipped bool              `json:"skipped,omitempty"`
	Error   string            `json:"error,omitempty"`
	Missing []string          `json:"missing,omitempty"`
	Detail  map[string]string `json:"detail,omitempty"`
}

type Report struct {
	Status Status           `json:"status"`
	Checks map[string]Check `json:"checks"`
}

type DBPinger interface {
	PingContext(ctx context.Context) error
}

type ChainClient interface {
	Available() bool
	Balances(ctx context.Context, address string) (chain.Balances, error)
}

// SelfTest probes the four dependencies the bot cannot work without:
// the database, required environment, the Telegram API and the BSC
// RPC. Quick mode skips the outbound Telegram call so /health stays
// cheap.
type SelfTest struct {
	db      DBPinger
	chain   ChainClient
	cfg     config.Config
	http    *http.Client
	apiBase string
	logger  *zap.Logger
}

func NewSelfTest(db DBPinger, chainClient ChainClient, cfg config.Config, logger *zap.Logger) *SelfTest {
	return &SelfTest{
		db:      db,
		chain:   chainClient,
		cfg:     cfg,
		http:    &http.Client{Timeout: 5 * time.Second},
		apiBase: "https://api.telegram.org",
		logger:  logger,
	}
}

func (s *SelfTest) Run(ctx context.Context, quick bool) Report {
	report := Report{Status: StatusOK, Checks: map[string]Check{}}

	check, status := s.checkDatabase(ctx)
	report.merge("database", check, status)

	check, status = s.checkEnv()
	report.merge("env", check, status)

	check, status = s.checkTelegram(ctx, quick)
	report.merge("telegram", check, status)

	check, status = s.checkBSC(ctx)
	report.merge("bsc", check, status)

	return report
}

func (r *Report) merge(name string, check Check, status Status) {
	r.Checks[name] = check
	if status == StatusError {
		r.Status = StatusError
	} else if status == StatusDegraded && r.Status == StatusOK {
		r.Status = StatusDegraded
	}
}

func (s *SelfTest) checkDatabase(ctx context.Context) (Check, Status) {
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("database selftest failed", zap.Error(err))
		return Check{OK: false, Error: err.Error()}, StatusError
	}
	return Check{OK: true}, StatusOK
}

func (s *SelfTest) checkEnv() (Check, Status) {
	required := map[string]string{
		"BOT_TOKEN":                s.cfg.BotToken,
		"DATABASE_URL":             s.cfg.DatabaseURL,
		"COMMUNITY_WALLET_ADDRESS": s.cfg.CommunityWalletAddress,
		"SLH_TOKEN_ADDRESS":        s.cfg.TokenAddress,
	}
	var missing []string
	for _, name := range []string{"BOT_TOKEN", "DATABASE_URL", "COMMUNITY_WALLET_ADDRESS", "SLH_TOKEN_ADDRESS"} {
		if required[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Check{OK: false, Missing: missing}, StatusDegraded
	}
	return Check{OK: true}, StatusOK
}

func (s *SelfTest) checkTelegram(ctx context.Context, quick bool) (Check, Status) {
	if s.cfg.BotToken == "" {
		return Check{OK: false, Error: "BOT_TOKEN not configured"}, StatusDegraded
	}
	if quick {
		return Check{OK: true}, StatusOK
	}

	url := fmt.Sprintf("%s/bot%s/getMe", s.apiBase, s.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Check{OK: false, Error: err.Error()}, StatusError
	}
	resp, err := s.http.Do(req)
	if err != nil {
		s.logger.Error("telegram selftest failed", zap.Error(err))
		return Check{OK: false, Error: err.Error()}, StatusError
	}
	defer resp.Body.Close()

	var payload struct {
		OK     bool `json:"ok"`
		Result struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Check{OK: false, Error: err.Error()}, StatusError
	}
	if !payload.OK {
		return Check{OK: false, Error: "telegram getMe returned ok=false"}, StatusError
	}
	return Check{OK: true, Detail: map[string]string{
		"username": payload.Result.Username,
		"id":       fmt.Sprintf("%d", payload.Result.ID),
	}}, StatusOK
}

func (s *SelfTest) checkBSC(ctx context.Context) (Check, Status) {
	if s.cfg.BSCRPCURL == "" || s.cfg.CommunityWalletAddress == "" {
		return Check{
			OK:      false,
			Skipped: true,
			Error:   "BSC_RPC_URL or COMMUNITY_WALLET_ADDRESS missing",
		}, StatusDegraded
	}
	if s.chain == nil || !s.chain.Available() {
		return Check{OK: false, Error: "bsc client not connected"}, StatusDegraded
	}
	balances, err := s.chain.Balances(ctx, s.cfg.CommunityWalletAddress)
	if err != nil {
		s.logger.Error("bsc selftest failed", zap.Error(err))
		return Check{OK: false, Error: err.Error()}, StatusDegraded
	}
	detail := map[string]string{"bnb": balances.BNB.String()}
	if balances.TokenAvailable {
		detail["slh"] = balances.Token.String()
	}
	return Check{OK: true, Detail: detail}, StatusOK
}
