// Package bot is the Telegram chat surface over the investor ledger.
// Handlers stay thin: they parse input, call the ledger or chain
// service, and render text. All writes go through the ledger service.
package bot

import (
	"context"
	"sync"
	"time"

	"slhgateway/internal/chain"
	"slhgateway/internal/config"
	"slhgateway/internal/ledger"
	"slhgateway/internal/monitoring"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

// Conversation states for multi-step flows.
const (
	stateNone = iota
	stateAwaitingBNBAddress
	stateAwaitingTransferTarget
	stateAwaitingTransferAmount
)

const handlerTimeout = 15 * time.Second

type Bot struct {
	tb       *telebot.Bot
	svc      *ledger.Service
	chain    *chain.Client
	selftest *monitoring.SelfTest
	cfg      config.Config
	logger   *zap.Logger

	states    map[int64]int
	tempData  map[int64]map[string]string
	stateLock sync.RWMutex
}

// Inline keyboards. Built once; telebot routes presses by Unique.
var (
	menu           = &telebot.ReplyMarkup{}
	btnSummary     = menu.Data("📊 Summary", "menu_summary")
	btnBalance     = menu.Data("💰 Balance", "menu_balance")
	btnWallet      = menu.Data("👛 Wallet", "menu_wallet")
	btnLinkWallet  = menu.Data("🔗 Link Wallet", "menu_link_wallet")
	btnHistory     = menu.Data("🧾 History", "menu_history")
	btnTransfer    = menu.Data("💸 Transfer", "menu_transfer")
	btnDocs        = menu.Data("📄 Docs", "menu_docs")

	adminMenu      = &telebot.ReplyMarkup{}
	btnAdminCredit = adminMenu.Data("💳 Admin credit help", "admin_help_credit")
	btnAdminLedger = adminMenu.Data("📒 Ledger overview", "admin_help_ledger")

	langMenu = &telebot.ReplyMarkup{}
	btnLang  = langMenu.Data("", "lang")
)

// NewBot builds the bot in webhook mode when a public URL is
// configured and long-polling mode otherwise. The webhook itself is
// registered by SetWebhook after the HTTP server is up.
func NewBot(cfg config.Config, svc *ledger.Service, chainClient *chain.Client, selftest *monitoring.SelfTest, logger *zap.Logger) (*Bot, error) {
	pref := telebot.Settings{Token: cfg.BotToken}
	if cfg.WebhookURL == "" {
		pref.Poller = &telebot.LongPoller{Timeout: 10 * time.Second}
	}

	tb, err := telebot.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		tb:       tb,
		svc:      svc,
		chain:    chainClient,
		selftest: selftest,
		cfg:      cfg,
		logger:   logger,
		states:   make(map[int64]int),
		tempData: make(map[int64]map[string]string),
	}

	menu.Inline(
		menu.Row(btnSummary, btnBalance),
		menu.Row(btnWallet, btnLinkWallet),
		menu.Row(btnHistory, btnTransfer),
		menu.Row(btnDocs),
	)
	adminMenu.Inline(
		adminMenu.Row(btnAdminCredit),
		adminMenu.Row(btnAdminLedger),
	)

	bot.registerHandlers()
	return bot, nil
}

func (b *Bot) registerHandlers() {
	b.tb.Handle("/start", b.handleStart)
	b.tb.Handle("/help", b.handleHelp)
	b.tb.Handle("/menu", b.handleMenu)
	b.tb.Handle("/wallet", b.handleWallet)
	b.tb.Handle("/link_wallet", b.handleLinkWallet)
	b.tb.Handle("/balance", b.handleBalance)
	b.tb.Handle("/onchain_balance", b.handleOnchainBalance)
	b.tb.Handle("/history", b.handleHistory)
	b.tb.Handle("/transfer", b.handleTransfer)
	b.tb.Handle("/send_slh", b.handleSendSLH)
	b.tb.Handle("/whoami", b.handleWhoami)
	b.tb.Handle("/summary", b.handleSummary)
	b.tb.Handle("/docs", b.handleDocs)
	b.tb.Handle("/referrals", b.handleReferrals)
	b.tb.Handle("/language", b.handleLanguage)
	b.tb.Handle("/ping", b.handlePing)

	b.tb.Handle("/staking", b.comingSoon("MODULE_NAME_STAKING"))
	b.tb.Handle("/signals", b.comingSoon("MODULE_NAME_SIGNALS"))
	b.tb.Handle("/academy", b.comingSoon("MODULE_NAME_ACADEMY"))
	b.tb.Handle("/reports", b.comingSoon("MODULE_NAME_REPORTS"))
	b.tb.Handle("/portfolio_pro", b.comingSoon("MODULE_NAME_PORTFOLIO"))

	b.tb.Handle("/admin_menu", b.adminOnly(b.handleAdminMenu))
	b.tb.Handle("/admin_credit", b.adminOnly(b.handleAdminCredit))
	b.tb.Handle("/admin_list_users", b.adminOnly(b.handleAdminListUsers))
	b.tb.Handle("/admin_ledger", b.adminOnly(b.handleAdminLedger))
	b.tb.Handle("/admin_selftest", b.adminOnly(b.handleAdminSelfTest))
	b.tb.Handle("/admin_verify", b.adminOnly(b.handleAdminVerify))
	b.tb.Handle("/admin_send_bnb", b.adminOnly(b.handleAdminSendBNB))
	b.tb.Handle("/admin_send_slh", b.adminOnly(b.handleAdminSendToken))

	b.tb.Handle(&btnSummary, b.handleSummary)
	b.tb.Handle(&btnBalance, b.handleBalance)
	b.tb.Handle(&btnWallet, b.handleWallet)
	b.tb.Handle(&btnLinkWallet, b.handleLinkWallet)
	b.tb.Handle(&btnHistory, b.handleHistory)
	b.tb.Handle(&btnTransfer, b.handleTransfer)
	b.tb.Handle(&btnDocs, b.handleDocs)
	b.tb.Handle(&btnAdminCredit, b.adminOnly(b.handleAdminCreditHelp))
	b.tb.Handle(&btnAdminLedger, b.adminOnly(b.handleAdminLedgerHelp))
	b.tb.Handle(&btnLang, b.handleLanguagePick)

	b.tb.Handle(telebot.OnText, b.handleText)
}

// Start blocks on the long poller. No-op in webhook mode.
func (b *Bot) Start() {
	if b.cfg.WebhookURL == "" {
		b.tb.Start()
	}
}

func (b *Bot) Stop() {
	if b.cfg.WebhookURL == "" {
		b.tb.Stop()
	}
}

// ProcessUpdate feeds one decoded webhook update into the router.
func (b *Bot) ProcessUpdate(u telebot.Update) {
	b.tb.ProcessUpdate(u)
}

func (b *Bot) Username() string {
	if b.tb.Me == nil {
		return ""
	}
	return b.tb.Me.Username
}

// SetWebhook registers the public webhook URL with Telegram, passing
// the shared secret so the HTTP handler can reject spoofed posts.
func (b *Bot) SetWebhook() error {
	if b.cfg.WebhookURL == "" {
		b.logger.Info("no webhook url set, running in long-polling mode")
		return nil
	}
	params := map[string]string{
		"url": webhookEndpoint(b.cfg.WebhookURL),
	}
	if b.cfg.WebhookSecret != "" {
		params["secret_token"] = b.cfg.WebhookSecret
	}
	if _, err := b.tb.Raw("setWebhook", params); err != nil {
		return err
	}
	b.logger.Info("webhook registered", zap.String("url", params["url"]))
	return nil
}

func (b *Bot) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), handlerTimeout)
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.cfg.AdminUserID != 0 && userID == b.cfg.AdminUserID
}

func (b *Bot) adminOnly(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		if !b.isAdmin(c.Sender().ID) {
			return c.Send("This command is admin-only.")
		}
		return next(c)
	}
}

func (b *Bot) setState(userID int64, state int) {
	b.stateLock.Lock()
	defer b.stateLock.Unlock()
	b.states[userID] = state
	if state == stateNone {
		delete(b.tempData, userID)
	}
}

func (b *Bot) getState(userID int64) int {
	b.stateLock.RLock()
	defer b.stateLock.RUnlock()
	return b.states[userID]
}

func (b *Bot) setTempData(userID int64, key, value string) {
	b.stateLock.Lock()
	defer b.stateLock.Unlock()
	if b.tempData[userID] == nil {
		b.tempData[userID] = make(map[string]string)
	}
	b.tempData[userID][key] = value
}

func (b *Bot) getTempData(userID int64, key string) string {
	b.stateLock.RLock()
	defer b.stateLock.RUnlock()
	if b.tempData[userID] == nil {
		return ""
	}
	return b.tempData[userID][key]
}

// NotifyAdmin sends an operational message to the configured admin.
// Used by the scheduled self-test when something degrades.
func (b *Bot) NotifyAdmin(text string) {
	b.notifyChat(b.cfg.AdminUserID, text)
}

// notifyChat posts to an out-of-band log chat; failures are logged and
// never bubble up into the user-facing flow.
func (b *Bot) notifyChat(chatID int64, text string) {
	if chatID == 0 {
		return
	}
	if _, err := b.tb.Send(&telebot.Chat{ID: chatID}, text); err != nil {
		b.logger.Warn("failed to post to log chat", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
