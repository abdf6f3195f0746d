package bot

import (
	"bytes"

	qrcode "github.com/skip2/go-qrcode"
	"gopkg.in/telebot.v3"
)

// sendReferralQR renders the invite link as a QR image so investors
// can show it at in-person events.
func (b *Bot) sendReferralQR(c telebot.Context, link string) error {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return err
	}
	photo := &telebot.Photo{
		File:    telebot.FromReader(bytes.NewReader(png)),
		Caption: "Scan to open your invite link.",
	}
	return c.Send(photo)
}
