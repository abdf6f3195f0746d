package bot

import (
	"fmt"
	"strings"

	"slhgateway/internal/chain"
	"slhgateway/internal/config"
	"slhgateway/internal/i18n"
	"slhgateway/internal/money"
	"slhgateway/internal/store"

	"github.com/shopspring/decimal"
)

// Investor tiers by off-chain SLH balance.
var (
	tierUltraStrategic = decimal.NewFromInt(500000)
	tierStrategic      = decimal.NewFromInt(100000)
	tierCore           = decimal.NewFromInt(10000)
)

func investorTier(balance decimal.Decimal) string {
	switch {
	case balance.GreaterThanOrEqual(tierUltraStrategic):
		return "Ultra Strategic"
	case balance.GreaterThanOrEqual(tierStrategic):
		return "Strategic"
	case balance.GreaterThanOrEqual(tierCore):
		return "Core"
	case balance.IsPositive():
		return "Early"
	default:
		return "—"
	}
}

func webhookEndpoint(base string) string {
	return strings.TrimRight(base, "/") + "/webhook/telegram"
}

func referralLink(botUsername string, telegramID int64) string {
	if botUsername == "" {
		return "Unavailable – bot username not resolved yet."
	}
	return fmt.Sprintf("https://t.me/%s?start=ref_%d", botUsername, telegramID)
}

// entryDirection labels a ledger entry from one user's point of view.
func entryDirection(entry store.Entry, telegramID int64) string {
	from := entry.FromUser != nil && *entry.FromUser == telegramID
	to := entry.ToUser != nil && *entry.ToUser == telegramID
	switch {
	case from && to:
		return "SELF"
	case from:
		return "OUT"
	case to:
		return "IN"
	default:
		return "OTHER"
	}
}

func formatEntryLine(entry store.Entry, telegramID int64) string {
	return fmt.Sprintf("[%s] %s – %s SLH (type=%s, id=%d)",
		entry.CreatedAt.Format("2006-01-02 15:04"),
		entryDirection(entry, telegramID),
		money.FormatSLH(entry.AmountSLH),
		entry.TxType,
		entry.ID,
	)
}

func formatLedgerLine(entry store.Entry) string {
	return fmt.Sprintf("[%s] %s – %s SLH | from=%s -> to=%s | id=%d",
		entry.CreatedAt.Format("2006-01-02 15:04"),
		entry.TxType,
		money.FormatSLH(entry.AmountSLH),
		optionalID(entry.FromUser),
		optionalID(entry.ToUser),
		entry.ID,
	)
}

func optionalID(id *int64) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *id)
}

func displayUsername(username *string) string {
	if username == nil || *username == "" {
		return "N/A"
	}
	return "@" + *username
}

func startText(lang string, user store.User, cfg config.Config) string {
	var lines []string
	lines = append(lines, i18n.T(lang, "START_TITLE"), "")
	lines = append(lines, i18n.Render(i18n.T(lang, "START_MIN_INVEST_LINE"), map[string]string{
		"min_invest": "100000",
	}))
	lines = append(lines, "",
		i18n.T(lang, "START_FEATURES_INTRO"),
		i18n.T(lang, "START_FEATURE_1"),
		i18n.T(lang, "START_FEATURE_2"),
		i18n.T(lang, "START_FEATURE_3"),
		i18n.T(lang, "START_FEATURE_4"),
		"",
		i18n.T(lang, "START_NEXT_STEPS_TITLE"),
	)
	if user.BNBAddress == nil || *user.BNBAddress == "" {
		lines = append(lines, i18n.T(lang, "START_STEP_1_NO_WALLET"))
	} else {
		lines = append(lines, i18n.Render(i18n.T(lang, "START_STEP_1_HAS_WALLET"), map[string]string{
			"address": *user.BNBAddress,
		}))
	}
	if user.BalanceSLH.IsZero() {
		lines = append(lines, i18n.T(lang, "START_STEP_2_NO_BALANCE"))
	} else {
		lines = append(lines, i18n.Render(i18n.T(lang, "START_STEP_2_HAS_BALANCE"), map[string]string{
			"balance": money.FormatSLH(user.BalanceSLH),
		}))
	}
	lines = append(lines,
		i18n.T(lang, "START_STEP_3"),
		i18n.T(lang, "START_STEP_4"),
		i18n.T(lang, "START_STEP_5"),
		i18n.T(lang, "START_STEP_6"),
		"",
		i18n.T(lang, "START_MENU_HINT"),
		i18n.T(lang, "START_LANGUAGE_HINT"),
	)
	return strings.Join(lines, "\n")
}

func walletText(user store.User, cfg config.Config) string {
	userAddr := "You have not linked a BNB address yet (see /link_wallet)."
	if user.BNBAddress != nil && *user.BNBAddress != "" {
		userAddr = *user.BNBAddress
	}

	var lines []string
	lines = append(lines,
		"SLH Wallet Overview",
		"",
		"Your BNB address (BSC):",
		userAddr,
		"",
		"Community wallet address (for deposits / tracking):",
		cfg.CommunityWalletAddress,
		"",
		"SLH token address:",
		cfg.TokenAddress,
		"",
		fmt.Sprintf("Each SLH nominally represents %s ILS.", cfg.SLHPriceNIS.StringFixed(0)),
	)
	base := strings.TrimRight(cfg.BSCScanBase, "/")
	if base != "" && cfg.CommunityWalletAddress != "" {
		lines = append(lines, "", "View community wallet on BscScan:",
			fmt.Sprintf("%s/address/%s", base, cfg.CommunityWalletAddress))
	}
	if base != "" && cfg.TokenAddress != "" {
		lines = append(lines, "", "View SLH token on BscScan:",
			fmt.Sprintf("%s/token/%s", base, cfg.TokenAddress))
	}
	if cfg.BuyBNBURL != "" {
		lines = append(lines, "", "External BNB purchase link (optional):", cfg.BuyBNBURL)
	}
	if cfg.StakingInfoURL != "" {
		lines = append(lines, "", "BNB staking info:", cfg.StakingInfoURL)
	}
	return strings.Join(lines, "\n")
}

func balanceText(user store.User, cfg config.Config, onchain *chain.Balances) string {
	price := cfg.SLHPriceNIS
	valueNIS := user.BalanceSLH.Mul(price)

	var lines []string
	lines = append(lines,
		"SLH Off-Chain Balance",
		"",
		fmt.Sprintf("Current balance: %s SLH", money.FormatSLH(user.BalanceSLH)),
		fmt.Sprintf("Nominal value: %s ILS (at %s ILS per SLH)", valueNIS.StringFixed(2), price.StringFixed(0)),
		"",
		"On-Chain view (BNB Chain):",
	)
	if onchain != nil {
		lines = append(lines, fmt.Sprintf("- BNB: %s BNB", onchain.BNB.StringFixed(6)))
		if onchain.TokenAvailable {
			lines = append(lines, fmt.Sprintf("- SLH: %s SLH", onchain.Token.StringFixed(6)))
		} else {
			lines = append(lines, "- SLH: unavailable (token / RPC / node error)")
		}
	} else {
		lines = append(lines,
			"- BNB: unavailable (RPC / address / node error)",
			"- SLH: unavailable (token / RPC / node error)",
		)
	}
	lines = append(lines, "",
		"This reflects allocations recorded for you inside the system.",
		"There is no redemption yet – only future usage inside the ecosystem.",
	)
	return strings.Join(lines, "\n")
}

func whoamiText(user store.User, slha decimal.Decimal) string {
	address := "Not linked yet (use /link_wallet)"
	if user.BNBAddress != nil && *user.BNBAddress != "" {
		address = *user.BNBAddress
	}
	var lines []string
	lines = append(lines,
		"Your SLH Investor Profile",
		"",
		fmt.Sprintf("Telegram ID: %d", user.TelegramID),
		fmt.Sprintf("Username: %s", displayUsername(user.Username)),
		fmt.Sprintf("BNB address: %s", address),
		fmt.Sprintf("SLH balance: %s SLH", money.FormatSLH(user.BalanceSLH)),
		fmt.Sprintf("Internal SLHA points: %s SLHA", money.FormatSLHA(slha)),
		"",
		"SLH = off-chain allocation units in the investor ledger.",
		"SLHA = internal reward points for referrals, activity and future modules.",
		"",
		"You can see your referral link and stats via /referrals.",
	)
	return strings.Join(lines, "\n")
}

func summaryText(user store.User, slha decimal.Decimal, cfg config.Config, onchain *chain.Balances) string {
	price := cfg.SLHPriceNIS
	valueNIS := user.BalanceSLH.Mul(price)
	yield := user.BalanceSLH.Mul(decimal.NewFromFloat(0.10))
	userAddr := "Not linked yet (use /link_wallet)."
	if user.BNBAddress != nil && *user.BNBAddress != "" {
		userAddr = *user.BNBAddress
	}

	var lines []string
	lines = append(lines,
		"SLH Investor Dashboard",
		"",
		"Profile:",
		fmt.Sprintf("- Telegram ID: %d", user.TelegramID),
		fmt.Sprintf("- Username: %s", displayUsername(user.Username)),
		fmt.Sprintf("- Investor tier: %s", investorTier(user.BalanceSLH)),
		"",
		"Wallets:",
		fmt.Sprintf("- Your BNB (BSC): %s", userAddr),
		fmt.Sprintf("- Community wallet: %s", cfg.CommunityWalletAddress),
		fmt.Sprintf("- SLH token: %s", cfg.TokenAddress),
		"",
		"Balance (Off-Chain System Ledger):",
		fmt.Sprintf("- SLH: %s SLH", money.FormatSLH(user.BalanceSLH)),
		fmt.Sprintf("- Nominal ILS value: %s ILS (at %s ILS per SLH)", valueNIS.StringFixed(2), price.StringFixed(0)),
		fmt.Sprintf("- Hypothetical yearly yield (10%%): %s SLH", money.FormatSLH(yield)),
		fmt.Sprintf("- Internal SLHA points: %s SLHA", money.FormatSLHA(slha)),
		"",
		"SLH = off-chain allocation units that mirror investor deposits.",
		"SLHA = internal reward points for referrals, activity and future staking / AI modules.",
		"",
	)
	if onchain != nil {
		lines = append(lines, "On-Chain (BNB Chain) – based on your BNB address:")
		lines = append(lines, fmt.Sprintf("- BNB: %s BNB", onchain.BNB.StringFixed(6)))
		if onchain.TokenAvailable {
			lines = append(lines, fmt.Sprintf("- SLH: %s SLH", onchain.Token.StringFixed(6)))
		} else {
			lines = append(lines, "- SLH: unavailable (token or RPC error)")
		}
		lines = append(lines, "")
	}
	base := strings.TrimRight(cfg.BSCScanBase, "/")
	if base != "" && cfg.CommunityWalletAddress != "" {
		lines = append(lines, "On BscScan:",
			fmt.Sprintf("- Community wallet: %s/address/%s", base, cfg.CommunityWalletAddress))
	}
	if base != "" && cfg.TokenAddress != "" {
		lines = append(lines, fmt.Sprintf("- SLH token: %s/token/%s", base, cfg.TokenAddress))
	}
	if cfg.DocsURL != "" {
		lines = append(lines, "", fmt.Sprintf("Investor Docs: %s", cfg.DocsURL))
	}
	lines = append(lines, "",
		"Key commands: /menu, /wallet, /balance, /history, /transfer, /docs, /help, /language, /referrals")
	return strings.Join(lines, "\n")
}

func referralsText(link string, referrals int64, slha, rewardPer decimal.Decimal) string {
	var lines []string
	lines = append(lines,
		"Referral Program – SLH Global Investments",
		"",
		"Your personal invite link (share with friends, family, clients):",
		link,
		"",
		fmt.Sprintf("Referrals detected via your link: %d", referrals),
		fmt.Sprintf("Current internal SLHA balance: %s SLHA", money.FormatSLHA(slha)),
		"",
		fmt.Sprintf("Each new investor via your link currently grants %s SLHA (≈ 1 ILS nominal value), credited both to you and to the new investor.", money.FormatSLHA(rewardPer)),
		"",
		"These points are off-chain and will be used later for staking tiers, bonuses and access to advanced AI trading modules.",
		"",
		"The more you share and onboard investors, the more you unlock inside the SLH ecosystem.",
	)
	return strings.Join(lines, "\n")
}
