package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"slhgateway/internal/chain"
	"slhgateway/internal/i18n"
	"slhgateway/internal/ledger"
	"slhgateway/internal/money"
	"slhgateway/internal/store"
	"slhgateway/internal/validator"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

func (b *Bot) handleStart(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	sender := c.Sender()
	user, isNew, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	lang := b.lang(user, c)

	if isNew {
		b.notifyChat(b.cfg.NewUsersLogChatID, fmt.Sprintf(
			"🆕 New investor registered\nID: %d\nUsername: %s",
			sender.ID, displayUsername(user.Username)))
		b.applyReferralPayload(c, sender.ID)
	}

	// Re-read so the welcome text reflects any referral credit.
	user, err = b.svc.User(ctx, sender.ID)
	if err != nil {
		return b.replyErr(c, lang, err)
	}
	return c.Send(startText(lang, user, b.cfg))
}

// applyReferralPayload credits both sides of a referral when the /start
// deep link carries a ref_<id> payload. Only first-time registrants
// qualify, and failures never break registration.
func (b *Bot) applyReferralPayload(c telebot.Context, newUserID int64) {
	msg := c.Message()
	if msg == nil || !strings.HasPrefix(msg.Payload, "ref_") {
		return
	}
	referrerID, err := strconv.ParseInt(strings.TrimPrefix(msg.Payload, "ref_"), 10, 64)
	if err != nil {
		return
	}

	ctx, cancel := b.ctx()
	defer cancel()
	if _, err := b.svc.ApplyReferralBonus(ctx, newUserID, referrerID); err != nil {
		b.logger.Warn("referral bonus not applied",
			zap.Int64("new_user", newUserID),
			zap.Int64("referrer", referrerID),
			zap.Error(err))
		return
	}
	b.notifyChat(b.cfg.ReferralLogChatID, fmt.Sprintf(
		"🤝 Referral bonus applied\nNew investor: %d\nReferrer: %d\nReward: %s SLHA each",
		newUserID, referrerID, money.FormatSLHA(b.cfg.ReferralReward)))
}

func (b *Bot) handleHelp(c telebot.Context) error {
	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	return c.Send(i18n.T(b.lang(user, c), "HELP_TEXT"))
}

func (b *Bot) handleMenu(c telebot.Context) error {
	return c.Send("SLH Investor Menu – choose an action:", menu)
}

func (b *Bot) handleWallet(c telebot.Context) error {
	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	return c.Send(walletText(user, b.cfg))
}

func (b *Bot) handleLinkWallet(c telebot.Context) error {
	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	lang := b.lang(user, c)

	if args := c.Args(); len(args) > 0 {
		return b.saveAddress(c, lang, user.TelegramID, args[0])
	}
	b.setState(user.TelegramID, stateAwaitingBNBAddress)
	return c.Send("Send your BNB (BSC) address now, starting with 0x.\nExample: 0x0000000000000000000000000000000000000000")
}

func (b *Bot) saveAddress(c telebot.Context, lang string, telegramID int64, address string) error {
	address = strings.TrimSpace(address)
	if !chain.ValidAddress(address) {
		return c.Send("That does not look like a valid BSC address. It must start with 0x and be 42 characters long.")
	}
	ctx, cancel := b.ctx()
	defer cancel()
	if err := b.svc.SetAddress(ctx, telegramID, address); err != nil {
		return b.replyErr(c, lang, err)
	}
	b.setState(telegramID, stateNone)
	return c.Send(fmt.Sprintf("✅ BNB address linked:\n%s\n\nYou can now use /balance and /summary.", address))
}

func (b *Bot) handleBalance(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}

	var onchain *chain.Balances
	if user.BNBAddress != nil && *user.BNBAddress != "" && b.chain.Available() {
		if bal, err := b.chain.Balances(ctx, *user.BNBAddress); err == nil {
			onchain = &bal
		} else {
			b.logger.Warn("on-chain balance lookup failed",
				zap.Int64("user", user.TelegramID), zap.Error(err))
		}
	}
	return c.Send(balanceText(user, b.cfg, onchain))
}

func (b *Bot) handleOnchainBalance(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	if user.BNBAddress == nil || *user.BNBAddress == "" {
		return c.Send("No BNB address linked yet. Use /link_wallet first.")
	}
	bal, err := b.chain.Balances(ctx, *user.BNBAddress)
	if err != nil {
		if errors.Is(err, chain.ErrChainUnavailable) {
			return c.Send("On-chain lookups are unavailable right now (no RPC connection).")
		}
		return c.Send("Could not read on-chain balances. Please try again later.")
	}

	lines := []string{
		"On-Chain Balances (BNB Chain)",
		"",
		fmt.Sprintf("Address: %s", *user.BNBAddress),
		fmt.Sprintf("BNB: %s BNB", bal.BNB.StringFixed(6)),
	}
	if bal.TokenAvailable {
		lines = append(lines, fmt.Sprintf("SLH: %s SLH", bal.Token.StringFixed(6)))
	} else {
		lines = append(lines, "SLH: unavailable (token not configured or node error)")
	}
	lines = append(lines, "", b.chain.AddressURL(*user.BNBAddress))
	return c.Send(strings.Join(lines, "\n"))
}

func (b *Bot) handleHistory(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	entries, err := b.svc.History(ctx, user.TelegramID, 10)
	if err != nil {
		return b.replyErr(c, b.lang(user, c), err)
	}
	if len(entries) == 0 {
		return c.Send("No ledger activity yet. Transfers, credits and referral bonuses will appear here.")
	}

	lines := []string{"Your last ledger entries:", ""}
	for _, entry := range entries {
		lines = append(lines, formatEntryLine(entry, user.TelegramID))
	}
	return c.Send(strings.Join(lines, "\n"))
}

func (b *Bot) handleTransfer(c telebot.Context) error {
	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	b.setState(user.TelegramID, stateAwaitingTransferTarget)
	return c.Send("Who should receive SLH?\nSend a @username or a Telegram ID.\n\nTip: /send_slh <amount> <@username|id> does it in one line.")
}

func (b *Bot) handleSendSLH(c telebot.Context) error {
	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	lang := b.lang(user, c)

	args := c.Args()
	if len(args) != 2 {
		return c.Send("Usage: /send_slh <amount> <@username|telegram_id>\nExample: /send_slh 25.5 @investor")
	}
	amount, err := money.ParsePositiveAmount(args[0])
	if err != nil {
		return b.replyErr(c, lang, ledger.ErrInvalidAmount)
	}
	toID, err := b.resolveTarget(c, args[1])
	if err != nil {
		return b.replyErr(c, lang, err)
	}
	return b.doTransfer(c, lang, user.TelegramID, toID, amount.String())
}

// resolveTarget turns "@username" or a numeric ID into a Telegram ID.
func (b *Bot) resolveTarget(c telebot.Context, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, nil
	}
	if err := validator.ValidateUsername(strings.TrimPrefix(raw, "@")); err != nil {
		return 0, ledger.ErrUnknownRecipient
	}
	ctx, cancel := b.ctx()
	defer cancel()
	target, err := b.svc.ResolveUsername(ctx, raw)
	if err != nil {
		return 0, err
	}
	return target.TelegramID, nil
}

func (b *Bot) doTransfer(c telebot.Context, lang string, fromID, toID int64, rawAmount string) error {
	amount, err := money.ParsePositiveAmount(rawAmount)
	if err != nil {
		return b.replyErr(c, lang, ledger.ErrInvalidAmount)
	}

	ctx, cancel := b.ctx()
	defer cancel()
	entry, err := b.svc.Transfer(ctx, ledger.TransferRequest{
		FromUser: fromID,
		ToUser:   toID,
		Amount:   amount,
	})
	b.setState(fromID, stateNone)
	if err != nil {
		return b.replyErr(c, lang, err)
	}
	return c.Send(fmt.Sprintf(
		"✅ Transfer complete.\nSent %s SLH to %d.\nLedger entry id: %d\n\nUse /history to review your activity.",
		money.FormatSLH(entry.AmountSLH), toID, entry.ID))
}

func (b *Bot) handleWhoami(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	slha, err := b.svc.SLHABalance(ctx, user.TelegramID)
	if err != nil {
		return b.replyErr(c, b.lang(user, c), err)
	}
	return c.Send(whoamiText(user, slha))
}

func (b *Bot) handleSummary(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	slha, err := b.svc.SLHABalance(ctx, user.TelegramID)
	if err != nil {
		return b.replyErr(c, b.lang(user, c), err)
	}

	var onchain *chain.Balances
	if user.BNBAddress != nil && *user.BNBAddress != "" && b.chain.Available() {
		if bal, err := b.chain.Balances(ctx, *user.BNBAddress); err == nil {
			onchain = &bal
		}
	}
	return c.Send(summaryText(user, slha, b.cfg, onchain))
}

func (b *Bot) handleDocs(c telebot.Context) error {
	if b.cfg.DocsURL == "" {
		return c.Send("Investor docs link is not configured yet. Please check back soon.")
	}
	return c.Send(fmt.Sprintf("📄 SLH Investor Docs:\n%s", b.cfg.DocsURL))
}

func (b *Bot) handleReferrals(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	lang := b.lang(user, c)

	count, err := b.svc.ReferralCount(ctx, user.TelegramID)
	if err != nil {
		return b.replyErr(c, lang, err)
	}
	slha, err := b.svc.SLHABalance(ctx, user.TelegramID)
	if err != nil {
		return b.replyErr(c, lang, err)
	}

	link := referralLink(b.Username(), user.TelegramID)
	if err := c.Send(referralsText(link, count, slha, b.cfg.ReferralReward)); err != nil {
		return err
	}
	// QR is a nicety; skip silently if the bot username is unknown.
	if b.Username() != "" {
		if err := b.sendReferralQR(c, link); err != nil {
			b.logger.Warn("referral qr not sent", zap.Error(err))
		}
	}
	return nil
}

func (b *Bot) handleLanguage(c telebot.Context) error {
	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	lang := b.lang(user, c)

	m := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	for _, code := range i18n.Supported() {
		label := i18n.T(code, "LANGUAGE_BUTTON_"+strings.ToUpper(code))
		rows = append(rows, m.Row(m.Data(label, "lang", code)))
	}
	m.Inline(rows...)
	return c.Send(i18n.T(lang, "LANGUAGE_MENU_TITLE"), m)
}

func (b *Bot) handleLanguagePick(c telebot.Context) error {
	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	code := i18n.Normalize(strings.TrimSpace(c.Data()))

	ctx, cancel := b.ctx()
	defer cancel()
	if err := b.svc.SetLanguage(ctx, user.TelegramID, code); err != nil {
		return b.replyErr(c, code, err)
	}
	if err := c.Respond(); err != nil {
		b.logger.Debug("callback ack failed", zap.Error(err))
	}
	confirm := i18n.T(code, "LANGUAGE_SET_CONFIRM")
	if err := c.Edit(confirm); err != nil {
		return c.Send(confirm)
	}
	return nil
}

func (b *Bot) handlePing(c telebot.Context) error {
	return c.Send("pong 🏓 – SLH gateway is alive.")
}

// comingSoon covers roadmap modules that have a command but no
// implementation yet.
func (b *Bot) comingSoon(moduleKey string) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		user, _, err := b.ensureUser(c)
		if err != nil {
			return b.replyErr(c, b.cfg.DefaultLanguage, err)
		}
		lang := b.lang(user, c)
		body := i18n.Render(i18n.T(lang, "COMING_SOON_BODY"), map[string]string{
			"module": i18n.T(lang, moduleKey),
		})
		return c.Send(i18n.T(lang, "COMING_SOON_TITLE") + "\n\n" + body)
	}
}

// handleText drives the multi-step flows; free text outside a flow
// gets the unknown-command hint.
func (b *Bot) handleText(c telebot.Context) error {
	user, _, err := b.ensureUser(c)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	lang := b.lang(user, c)
	text := strings.TrimSpace(c.Text())

	switch b.getState(user.TelegramID) {
	case stateAwaitingBNBAddress:
		return b.saveAddress(c, lang, user.TelegramID, text)

	case stateAwaitingTransferTarget:
		toID, err := b.resolveTarget(c, text)
		if err != nil {
			return b.replyErr(c, lang, err)
		}
		b.setTempData(user.TelegramID, "transfer_to", strconv.FormatInt(toID, 10))
		b.setState(user.TelegramID, stateAwaitingTransferAmount)
		return c.Send(fmt.Sprintf("How much SLH should go to %d?\nSend a number, e.g. 25.5", toID))

	case stateAwaitingTransferAmount:
		toID, err := strconv.ParseInt(b.getTempData(user.TelegramID, "transfer_to"), 10, 64)
		if err != nil {
			b.setState(user.TelegramID, stateNone)
			return c.Send("The transfer flow expired. Start again with /transfer.")
		}
		return b.doTransfer(c, lang, user.TelegramID, toID, text)
	}

	return c.Send(i18n.T(lang, "GENERIC_UNKNOWN_COMMAND"))
}

// ensureUser registers the sender on first contact and keeps the
// stored username fresh afterwards.
func (b *Bot) ensureUser(c telebot.Context) (store.User, bool, error) {
	ctx, cancel := b.ctx()
	defer cancel()

	sender := c.Sender()
	var username *string
	if sender.Username != "" {
		u := sender.Username
		username = &u
	}
	return b.svc.GetOrCreateUser(ctx, sender.ID, username)
}

// lang resolves the reply language: stored preference, then the
// Telegram client locale, then the configured default.
func (b *Bot) lang(user store.User, c telebot.Context) string {
	if user.Language != nil && *user.Language != "" {
		return i18n.Normalize(*user.Language)
	}
	if sender := c.Sender(); sender != nil && sender.LanguageCode != "" {
		return i18n.Normalize(sender.LanguageCode)
	}
	return i18n.Normalize(b.cfg.DefaultLanguage)
}

// replyErr renders ledger errors for chat. Validation and business
// errors get specific guidance; infrastructure errors are logged and
// answered with a generic apology.
func (b *Bot) replyErr(c telebot.Context, lang string, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return c.Send("Amount must be a positive number with at most 6 decimal places.\nExample: 25.5")
	case errors.Is(err, ledger.ErrSelfTransfer):
		return c.Send("You cannot transfer SLH to yourself.")
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return c.Send("Insufficient SLH balance for this transfer. Check /balance.")
	case errors.Is(err, ledger.ErrUnknownRecipient):
		return c.Send("That user is not registered in the investor ledger.\nThey need to open the bot and send /start once.")
	case errors.Is(err, ledger.ErrSelfReferral):
		return c.Send("You cannot refer yourself.")
	}
	if ledger.KindOf(err) != ledger.KindInfrastructure {
		return c.Send(err.Error())
	}
	b.logger.Error("handler failed", zap.Error(err))
	return c.Send(i18n.T(lang, "GENERIC_ERROR"))
}
