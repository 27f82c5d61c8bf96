package notify

import (
	"context"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"go.uber.org/zap"
)

// NopNotifier only logs. Used when no Telegram token is configured.
type NopNotifier struct {
	logger *zap.Logger
}

func NewNopNotifier(logger *zap.Logger) *NopNotifier {
	return &NopNotifier{logger: logger}
}

func (n *NopNotifier) Notify(ctx context.Context, user *model.User, text string) error {
	n.logger.Debug("Notification dropped, notifier disabled",
		zap.Int64("user_id", user.ID))
	return nil
}
