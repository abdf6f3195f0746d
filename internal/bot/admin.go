package bot

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"slhgateway/internal/chain"
	"slhgateway/internal/money"
	"slhgateway/internal/validator"

	"github.com/shopspring/decimal"
	"gopkg.in/telebot.v3"
)

func (b *Bot) handleAdminMenu(c telebot.Context) error {
	return c.Send("Admin panel – operational shortcuts:", adminMenu)
}

// handleAdminCredit adjusts an investor's off-chain balance. A
// positive amount credits, a negative amount debits.
func (b *Bot) handleAdminCredit(c telebot.Context) error {
	args := c.Args()
	if len(args) < 2 {
		return c.Send("Usage: /admin_credit <telegram_id> <amount>\nA negative amount debits.\nExample: /admin_credit 123456789 1000")
	}
	telegramID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("The first argument must be a numeric Telegram ID.")
	}
	delta, err := money.ParseAmount(args[1])
	if err != nil {
		return c.Send("The amount must be a decimal number, e.g. 1000 or -250.5")
	}
	var note *string
	if len(args) > 2 {
		n := strings.Join(args[2:], " ")
		if err := validator.ValidateNote(n); err != nil {
			return c.Send("The note is too long (200 characters max).")
		}
		note = &n
	}

	ctx, cancel := b.ctx()
	defer cancel()
	entry, err := b.svc.AdminAdjust(ctx, telegramID, delta, note)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}

	verb := "Credited"
	if delta.IsNegative() {
		verb = "Debited"
	}
	return c.Send(fmt.Sprintf("✅ %s %s SLH for user %d (entry id %d, type %s).",
		verb, money.FormatSLH(entry.AmountSLH), telegramID, entry.ID, entry.TxType))
}

func (b *Bot) handleAdminListUsers(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	users, err := b.svc.TopUsers(ctx, 50)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	if len(users) == 0 {
		return c.Send("No registered investors yet.")
	}

	lines := []string{fmt.Sprintf("Top %d investors by SLH balance:", len(users)), ""}
	for i, u := range users {
		lines = append(lines, fmt.Sprintf("%2d. %d %s – %s SLH [%s]",
			i+1, u.TelegramID, displayUsername(u.Username),
			money.FormatSLH(u.BalanceSLH), investorTier(u.BalanceSLH)))
	}
	return c.Send(strings.Join(lines, "\n"))
}

func (b *Bot) handleAdminLedger(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	entries, err := b.svc.GlobalLedger(ctx, 50)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	if len(entries) == 0 {
		return c.Send("The ledger is empty.")
	}

	lines := []string{fmt.Sprintf("Last %d ledger entries:", len(entries)), ""}
	for _, entry := range entries {
		lines = append(lines, formatLedgerLine(entry))
	}
	return c.Send(strings.Join(lines, "\n"))
}

func (b *Bot) handleAdminSelfTest(c telebot.Context) error {
	ctx, cancel := b.ctx()
	defer cancel()

	report := b.selftest.Run(ctx, false)

	lines := []string{fmt.Sprintf("Self-test result: %s", statusBadge(string(report.Status))), ""}
	for name, check := range report.Checks {
		switch {
		case check.Skipped:
			lines = append(lines, fmt.Sprintf("⚪ %s: skipped", name))
		case check.OK:
			line := fmt.Sprintf("✅ %s: ok", name)
			if len(check.Detail) > 0 {
				var parts []string
				for k, v := range check.Detail {
					parts = append(parts, k+"="+v)
				}
				sort.Strings(parts)
				line += " (" + strings.Join(parts, ", ") + ")"
			}
			lines = append(lines, line)
		default:
			line := fmt.Sprintf("❌ %s: %s", name, check.Error)
			if len(check.Missing) > 0 {
				line = fmt.Sprintf("❌ %s: missing %s", name, strings.Join(check.Missing, ", "))
			}
			lines = append(lines, line)
		}
	}
	return c.Send(strings.Join(lines, "\n"))
}

func statusBadge(status string) string {
	switch status {
	case "ok":
		return "✅ ok"
	case "degraded":
		return "⚠️ degraded"
	default:
		return "❌ error"
	}
}

// handleAdminVerify cross-checks a stored balance against the signed
// sum of that user's ledger entries.
func (b *Bot) handleAdminVerify(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Usage: /admin_verify <telegram_id>")
	}
	telegramID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("The argument must be a numeric Telegram ID.")
	}

	ctx, cancel := b.ctx()
	defer cancel()
	stored, computed, ok, err := b.svc.VerifyBalance(ctx, telegramID)
	if err != nil {
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	if ok {
		return c.Send(fmt.Sprintf("✅ Ledger consistent for %d: %s SLH", telegramID, money.FormatSLH(stored)))
	}
	return c.Send(fmt.Sprintf("❌ Mismatch for %d: stored %s SLH, ledger sum %s SLH",
		telegramID, money.FormatSLH(stored), money.FormatSLH(computed)))
}

func (b *Bot) handleAdminSendBNB(c telebot.Context) error {
	return b.adminSend(c, "BNB", b.chain.SendBNB)
}

func (b *Bot) handleAdminSendToken(c telebot.Context) error {
	return b.adminSend(c, "SLH", b.chain.SendToken)
}

func (b *Bot) adminSend(c telebot.Context, asset string, send func(ctx context.Context, to string, amount decimal.Decimal) (string, error)) error {
	args := c.Args()
	if len(args) != 2 {
		return c.Send(fmt.Sprintf("Usage: /admin_send_%s <0x_address> <amount>", strings.ToLower(asset)))
	}
	to := strings.TrimSpace(args[0])
	if !chain.ValidAddress(to) {
		return c.Send("The destination must be a valid BSC address starting with 0x.")
	}
	amount, err := money.ParsePositiveAmount(args[1])
	if err != nil {
		return c.Send("The amount must be a positive decimal number.")
	}

	ctx, cancel := b.ctx()
	defer cancel()
	txHash, err := send(ctx, to, amount)
	if err != nil {
		switch {
		case errors.Is(err, chain.ErrChainUnavailable):
			return c.Send("On-chain transfers are unavailable (no RPC connection).")
		case errors.Is(err, chain.ErrWalletNotLoaded):
			return c.Send("The community wallet key is not configured on this deployment.")
		case errors.Is(err, chain.ErrTokenNotConfigured):
			return c.Send("The SLH token address is not configured on this deployment.")
		}
		return b.replyErr(c, b.cfg.DefaultLanguage, err)
	}
	return c.Send(fmt.Sprintf("✅ Sent %s %s to %s\nTx: %s",
		amount.String(), asset, to, b.chain.TxURL(txHash)))
}

func (b *Bot) handleAdminCreditHelp(c telebot.Context) error {
	text := strings.Join([]string{
		"Admin credit / debit",
		"",
		"/admin_credit <telegram_id> <amount> [note]",
		"",
		"A positive amount credits the investor, a negative amount debits.",
		"Every adjustment writes a ledger entry, so /admin_ledger shows the full audit trail.",
	}, "\n")
	if err := c.Respond(); err == nil {
		if err := c.Edit(text); err == nil {
			return nil
		}
	}
	return c.Send(text)
}

func (b *Bot) handleAdminLedgerHelp(c telebot.Context) error {
	text := strings.Join([]string{
		"Ledger overview",
		"",
		"/admin_ledger – last 50 entries across all investors",
		"/admin_list_users – top investors by SLH balance",
		"/admin_selftest – database, env, Telegram and BSC health",
		"/admin_verify <id> – stored balance vs ledger sum",
	}, "\n")
	if err := c.Respond(); err == nil {
		if err := c.Edit(text); err == nil {
			return nil
		}
	}
	return c.Send(text)
}
