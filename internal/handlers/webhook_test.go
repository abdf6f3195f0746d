package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"slhgateway/internal/auth"
	"slhgateway/internal/config"
	"slhgateway/internal/monitoring"
	"slhgateway/internal/websocket"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type stubSink struct {
	updates []telebot.Update
}

func (s *stubSink) ProcessUpdate(u telebot.Update) {
	s.updates = append(s.updates, u)
}

type stubSelfTester struct {
	report    monitoring.Report
	lastQuick bool
}

func (s *stubSelfTester) Run(ctx context.Context, quick bool) monitoring.Report {
	s.lastQuick = quick
	return s.report
}

func newTestHandler(cfg config.Config, sink *stubSink, tester *stubSelfTester) *Handler {
	if sink == nil {
		sink = &stubSink{}
	}
	if tester == nil {
		tester = &stubSelfTester{report: monitoring.Report{Status: monitoring.StatusOK}}
	}
	return New(cfg, sink, tester, websocket.NewHub(), zap.NewNop())
}

func TestTelegramWebhookRejectsBadSecret(t *testing.T) {
	sink := &stubSink{}
	handler := newTestHandler(config.Config{WebhookSecret: "top-secret"}, sink, nil)

	body := `{"update_id":1,"message":{"message_id":5,"chat":{"id":7,"type":"private"},"text":"/start"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "wrong")
	rr := httptest.NewRecorder()

	handler.TelegramWebhook(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	if len(sink.updates) != 0 {
		t.Errorf("update should not reach the bot on a bad secret")
	}
}

func TestTelegramWebhookIgnoresGroupChat(t *testing.T) {
	sink := &stubSink{}
	handler := newTestHandler(config.Config{WebhookSecret: "top-secret"}, sink, nil)

	body := `{"update_id":2,"message":{"message_id":6,"chat":{"id":-100123,"type":"supergroup"},"text":"hello"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "top-secret")
	rr := httptest.NewRecorder()

	handler.TelegramWebhook(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(sink.updates) != 0 {
		t.Errorf("group updates must be dropped, got %d", len(sink.updates))
	}
}

func TestTelegramWebhookAcceptsPrivateMessage(t *testing.T) {
	sink := &stubSink{}
	handler := newTestHandler(config.Config{WebhookSecret: "top-secret"}, sink, nil)

	body := `{"update_id":3,"message":{"message_id":7,"chat":{"id":42,"type":"private"},"text":"/balance"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "top-secret")
	rr := httptest.NewRecorder()

	handler.TelegramWebhook(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(sink.updates) != 1 {
		t.Fatalf("expected 1 forwarded update, got %d", len(sink.updates))
	}
	if sink.updates[0].ID != 3 {
		t.Errorf("unexpected update id %d", sink.updates[0].ID)
	}
}

func TestTelegramWebhookMalformedBody(t *testing.T) {
	handler := newTestHandler(config.Config{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()

	handler.TelegramWebhook(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestReadyRunsQuickProbes(t *testing.T) {
	tester := &stubSelfTester{report: monitoring.Report{Status: monitoring.StatusDegraded}}
	handler := newTestHandler(config.Config{}, nil, tester)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rr := httptest.NewRecorder()
	handler.Ready(rr, req)

	if !tester.lastQuick {
		t.Error("ready probe must run in quick mode")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("degraded should still answer 200, got %d", rr.Code)
	}
}

func TestReadyErrorIsServiceUnavailable(t *testing.T) {
	tester := &stubSelfTester{report: monitoring.Report{Status: monitoring.StatusError}}
	handler := newTestHandler(config.Config{}, nil, tester)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rr := httptest.NewRecorder()
	handler.Ready(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rr.Code)
	}
}

func TestSelfTestRouteRequiresToken(t *testing.T) {
	cfg := config.Config{AdminAPISecret: "secret", AllowedOrigins: "*"}
	tester := &stubSelfTester{report: monitoring.Report{Status: monitoring.StatusOK}}
	router := newTestHandler(cfg, nil, tester).Routes()

	req := httptest.NewRequest(http.MethodGet, "/selftest", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}

	token, err := auth.GenerateToken("secret", "ops", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/selftest", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rr.Code)
	}
	if tester.lastQuick {
		t.Error("selftest route must run the deep probe set")
	}
}

func TestWSLedgerRejectsMissingAndInvalidToken(t *testing.T) {
	handler := newTestHandler(config.Config{AdminAPISecret: "secret"}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/ws/ledger", nil)
	rr := httptest.NewRecorder()
	handler.WSLedger(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/ws/ledger?token=bogus", nil)
	rr = httptest.NewRecorder()
	handler.WSLedger(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid token, got %d", rr.Code)
	}
}
