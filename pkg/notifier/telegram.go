package notifier

import (
	"fmt"
	"time"

	"carconnect/config"
	"carconnect/pkg/logger"
	"carconnect/pkg/models"

	tele "gopkg.in/telebot.v3"
)

type telegramNotifier struct {
	bot    *tele.Bot
	chatID int64
	log    logger.ILogger
}

// NewTelegram sends each new lead to the dealership's admin chat. The bot
// only sends, it never polls for updates.
func NewTelegram(cfg *config.Config, log logger.ILogger) (LeadNotifier, error) {
	if cfg.TelegramBotToken == "" || cfg.TelegramAdminChatID == 0 {
		log.Info("telegram notifier disabled, token or chat id not set")
		return NewNop(), nil
	}

	pref := tele.Settings{
		Token: cfg.TelegramBotToken,
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &telegramNotifier{
		bot:    b,
		chatID: cfg.TelegramAdminChatID,
		log:    log,
	}, nil
}

func (n *telegramNotifier) NewLead(inq *models.Inquiry) {
	subject := "General Inquiry"
	if inq.CarName != "" {
		subject = inq.CarName
	}

	text := fmt.Sprintf(
		"New lead: %s\nName: %s\nPhone: %s\nMessage: %s\nReceived: %s",
		subject,
		inq.Name,
		inq.Phone,
		inq.Message,
		inq.CreatedAt.Format(time.RFC1123),
	)

	if _, err := n.bot.Send(tele.ChatID(n.chatID), text); err != nil {
		n.log.Error("failed to send lead notification", logger.Error(err))
	}
}
