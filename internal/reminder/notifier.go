package reminder

import (
	"context"
	"fmt"

	"smart-todo/config"
	"smart-todo/internal/model"
	"smart-todo/pkg/telegram"
)

// TelegramNotifier pushes notifications to a single platform chat.
type TelegramNotifier struct {
	bot    *telegram.Bot
	chatID int64
}

func NewTelegramNotifier(bot *telegram.Bot, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (t *TelegramNotifier) Notify(ctx context.Context, n model.Notification) error {
	// Plain text: titles are user input and would break Markdown parsing.
	text := fmt.Sprintf("%s\n\n%s", n.Title, n.Message)
	if err := t.bot.SendMessage(ctx, t.chatID, text); err != nil {
		return fmt.Errorf("telegram notify %s: %w", n.ID, err)
	}
	return nil
}

// PlatformNotifiers returns the alert sinks enabled by configuration. The
// Telegram sink needs reminder.platform_alerts plus a bot token and chat id.
func PlatformNotifiers(rc config.ReminderConfig, tc config.TelegramConfig) []Notifier {
	if !rc.PlatformAlerts || tc.BotToken == "" || tc.ChatID == 0 {
		return nil
	}
	return []Notifier{NewTelegramNotifier(telegram.NewBot(tc.BotToken), tc.ChatID)}
}
