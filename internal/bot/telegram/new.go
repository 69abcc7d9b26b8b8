// Package telegram delivers the assistant over a Telegram bot webhook.
package telegram

import (
	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/chat"
	"plant-care-assistant/internal/diagnosis"
	"plant-care-assistant/internal/reminder"
	pkgLog "plant-care-assistant/pkg/log"
	pkgTelegram "plant-care-assistant/pkg/telegram"
)

// Handler is the public interface for the Telegram delivery layer.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	bot         *pkgTelegram.Bot
	diagnosisUC diagnosis.UseCase
	chatUC      chat.UseCase
	reminderUC  reminder.UseCase
}

// New creates the Telegram webhook handler.
func New(l pkgLog.Logger, bot *pkgTelegram.Bot, diagnosisUC diagnosis.UseCase, chatUC chat.UseCase, reminderUC reminder.UseCase) Handler {
	return &handler{
		l:           l,
		bot:         bot,
		diagnosisUC: diagnosisUC,
		chatUC:      chatUC,
		reminderUC:  reminderUC,
	}
}
