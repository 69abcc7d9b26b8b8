package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/chat"
	"plant-care-assistant/internal/diagnosis"
	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/response"
	pkgTelegram "plant-care-assistant/pkg/telegram"
)

const processTimeout = 90 * time.Second

// HandleWebhook accepts a Telegram update, acknowledges immediately and
// processes the message in the background. Telegram retries non-200
// responses, so slow LLM calls must not block the ack.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "failed to parse telegram update: %v", err)
		response.Error(c, err)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		response.OK(c, gin.H{"status": "ignored"})
		return
	}

	go h.processUpdate(update)

	response.OK(c, gin.H{"status": "accepted"})
}

// processUpdate runs detached from the request context.
func (h *handler) processUpdate(update pkgTelegram.Update) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	msg := update.Message
	chatID := msg.Chat.ID
	sc := scopeFrom(msg)

	switch {
	case len(msg.Photo) > 0:
		h.handlePhoto(ctx, sc, chatID, msg)
	case strings.HasPrefix(msg.Text, "/"):
		h.handleCommand(ctx, sc, chatID, msg.Text)
	case strings.TrimSpace(msg.Text) != "":
		h.handleQuestion(ctx, sc, chatID, msg.Text)
	default:
		h.reply(ctx, chatID, "Send me a plant photo to diagnose, or ask a gardening question.")
	}
}

// handlePhoto downloads the largest photo size and runs it through the
// diagnosis flow.
func (h *handler) handlePhoto(ctx context.Context, sc model.Scope, chatID int64, msg *pkgTelegram.Message) {
	// Telegram orders sizes smallest-first.
	largest := msg.Photo[len(msg.Photo)-1]

	file, err := h.bot.GetFile(largest.FileID)
	if err != nil {
		h.l.Errorf(ctx, "telegram getFile: %v", err)
		h.reply(ctx, chatID, "I could not fetch that photo, please try again.")
		return
	}

	data, err := h.bot.DownloadFile(file.FilePath)
	if err != nil {
		h.l.Errorf(ctx, "telegram download: %v", err)
		h.reply(ctx, chatID, "I could not fetch that photo, please try again.")
		return
	}

	out, err := h.diagnosisUC.Analyze(ctx, sc, diagnosis.AnalyzeInput{
		ImageData:      data,
		MediaType:      "image/jpeg",
		ImageReference: file.FilePath,
	})
	if err == diagnosis.ErrAnalysisInFlight {
		h.reply(ctx, chatID, "I'm still analyzing your previous photo, one moment.")
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.reply(ctx, chatID, "Analysis failed, please try again in a minute.")
		return
	}

	h.replyMarkdown(ctx, chatID, formatDiagnosis(out.Profile))
}

// handleQuestion routes free text to the gardening chat.
func (h *handler) handleQuestion(ctx context.Context, sc model.Scope, chatID int64, text string) {
	out, err := h.chatUC.Send(ctx, sc, chat.SendInput{Message: text})
	if err == chat.ErrChatBusy {
		h.reply(ctx, chatID, "I'm still answering your previous question, one moment.")
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		h.reply(ctx, chatID, "I could not answer that right now, please try again.")
		return
	}

	h.reply(ctx, chatID, out.Answer.Content)
}

func (h *handler) handleCommand(ctx context.Context, sc model.Scope, chatID int64, text string) {
	fields := strings.Fields(text)
	// Group chats append "@botname" to commands.
	command := strings.SplitN(fields[0], "@", 2)[0]

	switch command {
	case "/start", "/help":
		h.replyMarkdown(ctx, chatID, helpText)
	case "/library":
		query := strings.Join(fields[1:], " ")
		h.replyMarkdown(ctx, chatID, formatLibrary(query))
	case "/history":
		h.replyMarkdown(ctx, chatID, formatHistory(h.diagnosisUC.History(ctx)))
	case "/reminders":
		h.replyMarkdown(ctx, chatID, formatReminders(h.reminderUC.List(ctx)))
	default:
		h.reply(ctx, chatID, "Unknown command. Try /help.")
	}
}

func (h *handler) reply(ctx context.Context, chatID int64, text string) {
	if err := h.bot.SendMessage(chatID, text); err != nil {
		h.l.Errorf(ctx, "telegram send: %v", err)
	}
}

func (h *handler) replyMarkdown(ctx context.Context, chatID int64, text string) {
	if err := h.bot.SendMessageWithMode(chatID, text, "Markdown"); err != nil {
		h.l.Errorf(ctx, "telegram send: %v", err)
	}
}

func scopeFrom(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{}
	if msg.From != nil {
		sc.UserID = strconv.FormatInt(msg.From.ID, 10)
		sc.Username = msg.From.Username
	}
	return sc
}
