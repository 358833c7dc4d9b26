package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// maxListed caps how many hackathons one alert names.
const maxListed = 20

type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or admin chat is empty, admin alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramAlerter) AlertInvalidWindows(ctx context.Context, records []domain.RecordError) {
	if len(records) == 0 {
		return
	}
	n.send(ctx, invalidWindowsText(records))
}

func invalidWindowsText(records []domain.RecordError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Hackathons with invalid windows: %d*\n\n", len(records))

	for i, r := range records {
		if i == maxListed {
			fmt.Fprintf(&b, "...and %d more", len(records)-maxListed)
			break
		}
		fmt.Fprintf(&b, "- `%s`: %s\n", r.Slug, r.Err.Error())
	}

	return b.String()
}

func (n *TelegramAlerter) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("admin alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("admin alert skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram admin alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
