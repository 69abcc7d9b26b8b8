package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	botTelegram "plant-care-assistant/internal/bot/telegram"
	chatHTTP "plant-care-assistant/internal/chat/delivery/http"
	diagnosisHTTP "plant-care-assistant/internal/diagnosis/delivery/http"
	libraryHTTP "plant-care-assistant/internal/library/delivery/http"
	"plant-care-assistant/internal/middleware"
	reminderHTTP "plant-care-assistant/internal/reminder/delivery/http"
	pkgLog "plant-care-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	diagnosisHandler diagnosisHTTP.Handler
	chatHandler      chatHTTP.Handler
	reminderHandler  reminderHTTP.Handler
	libraryHandler   libraryHTTP.Handler

	// telegramHandler is optional; nil disables the webhook route.
	telegramHandler botTelegram.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	DiagnosisHandler diagnosisHTTP.Handler
	ChatHandler      chatHTTP.Handler
	ReminderHandler  reminderHTTP.Handler
	LibraryHandler   libraryHTTP.Handler
	TelegramHandler  botTelegram.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                cfg.Logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		middleware:       cfg.Middleware,
		diagnosisHandler: cfg.DiagnosisHandler,
		chatHandler:      cfg.ChatHandler,
		reminderHandler:  cfg.ReminderHandler,
		libraryHandler:   cfg.LibraryHandler,
		telegramHandler:  cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.diagnosisHandler == nil {
		return errors.New("diagnosis handler is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	if srv.reminderHandler == nil {
		return errors.New("reminder handler is required")
	}
	if srv.libraryHandler == nil {
		return errors.New("library handler is required")
	}
	return nil
}
