// Package telegram alerts the staff chat about negotiation activity through the
// Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"hotelchat/backend/internal/models"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier posts staff alerts into a single Telegram chat.
type Notifier struct {
	bot         Sender
	staffChatID int64
}

func NewNotifier(bot Sender, staffChatID int64) *Notifier {
	return &Notifier{bot: bot, staffChatID: staffChatID}
}

// NewBotNotifier authorizes the bot token against Telegram.
func NewBotNotifier(token string, staffChatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	bot.Debug = false
	slog.Info("telegram bot authorized", slog.String("account", bot.Self.UserName))

	return NewNotifier(bot, staffChatID), nil
}

// OfferOpened tells the staff that requester started negotiating in room.
func (n *Notifier) OfferOpened(ctx context.Context, room *models.ChatRoom, requester *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.staffChatID, FormatOfferOpened(room, requester))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send offer notice for %s: %w", room.ID, err)
	}
	return nil
}

// FormatOfferOpened renders the staff alert in Telegram's legacy Markdown.
func FormatOfferOpened(room *models.ChatRoom, requester *models.User) string {
	var b strings.Builder
	b.WriteString("🏨 *New offer*\n")
	fmt.Fprintf(&b, "Hotel: %s\n", escapeMarkdown(room.Hotel.Name))
	if room.Hotel.FormattedAddress != "" {
		fmt.Fprintf(&b, "Address: %s\n", escapeMarkdown(room.Hotel.FormattedAddress))
	}
	fmt.Fprintf(&b, "From: %s (%s)\n", escapeMarkdown(requester.Username), escapeMarkdown(requester.Email))
	fmt.Fprintf(&b, "Room: `%s`", strings.ReplaceAll(room.ID, "`", "'"))
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
