package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramWebhook accepts update posts from the Telegram API. The
// shared secret set during setWebhook must match, and group chatter is
// dropped so the bot only reacts in private conversations.
func (h *Handler) TelegramWebhook(w http.ResponseWriter, r *http.Request) {
	if h.cfg.WebhookSecret != "" && r.Header.Get(secretTokenHeader) != h.cfg.WebhookSecret {
		respondError(w, http.StatusForbidden, "invalid webhook secret")
		return
	}

	var update telebot.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "malformed update")
		return
	}

	if update.Message != nil && update.Message.Chat != nil && update.Message.Chat.Type != telebot.ChatPrivate {
		h.logger.Debug("dropping non-private update",
			zap.Int64("chat", update.Message.Chat.ID),
			zap.String("type", string(update.Message.Chat.Type)))
		respondJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}

	h.bot.ProcessUpdate(update)
	respondJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}
