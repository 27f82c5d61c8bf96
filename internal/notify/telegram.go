package notify

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// TelegramNotifier sends notifications to users that linked a Telegram chat
type TelegramNotifier struct {
	bot    *bot.Bot
	logger *zap.Logger
}

func NewTelegramNotifier(token string, logger *zap.Logger, opts ...bot.Option) (*TelegramNotifier, error) {
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    b,
		logger: logger,
	}, nil
}

// Notify sends text to the user's chat. Users without a chat are skipped.
func (n *TelegramNotifier) Notify(ctx context.Context, user *model.User, text string) error {
	if user.TelegramID == nil {
		n.logger.Debug("User has no telegram chat, skipping notification",
			zap.Int64("user_id", user.ID))
		return nil
	}

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: *user.TelegramID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	n.logger.Info("Notification sent",
		zap.Int64("user_id", user.ID),
		zap.Int64("chat_id", *user.TelegramID))

	return nil
}
