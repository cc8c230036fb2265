package logic

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"post_sentinel/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notifier.go -package mocks post_sentinel/logic INotifier

// INotifier is the outbound notification transport. It owns no retry policy;
// retries belong to the alert dispatcher.
type INotifier interface {
	SendMessage(ctx context.Context, chatId int64, text string) error
}

type telegramNotifier struct {
	logger shared.ILogger
	bot    *tgbotapi.BotAPI
}

func NewTelegramNotifier(cfg *shared.Config, logger shared.ILogger) INotifier {

	if cfg.Secrets.TelegramToken == "" {
		logger.Warn("Telegram token not configured; alerts will be dropped")
		return &disabledNotifier{logger: logger}
	}
	bot, err := tgbotapi.NewBotAPI(cfg.Secrets.TelegramToken)
	if err != nil {
		logger.Errorf("Failed to initialize Telegram bot; alerts will be dropped: %v", err)
		return &disabledNotifier{logger: logger}
	}
	logger.Infof("Telegram notifier ready as @%s", bot.Self.UserName)
	return &telegramNotifier{logger: logger, bot: bot}
}

func (tn *telegramNotifier) SendMessage(ctx context.Context, chatId int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatId, text)
	msg.DisableWebPagePreview = true
	_, err := tn.bot.Send(msg)
	return err
}

type disabledNotifier struct {
	logger shared.ILogger
}

func (dn *disabledNotifier) SendMessage(_ context.Context, chatId int64, _ string) error {
	dn.logger.Debugf("Notifier disabled; dropping message to chat %d", chatId)
	return nil
}
