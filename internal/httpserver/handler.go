package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "plant-care-assistant/internal/chat/delivery/http"
	diagnosisHTTP "plant-care-assistant/internal/diagnosis/delivery/http"
	libraryHTTP "plant-care-assistant/internal/library/delivery/http"
	reminderHTTP "plant-care-assistant/internal/reminder/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
	srv.gin.Use(srv.middleware.RateLimit())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	diagnosisHTTP.RegisterRoutes(api.Group("/diagnosis"), srv.diagnosisHandler)
	chatHTTP.RegisterRoutes(api.Group("/chat"), srv.chatHandler)
	reminderHTTP.RegisterRoutes(api.Group("/reminders"), srv.reminderHandler)
	libraryHTTP.RegisterRoutes(api.Group("/library"), srv.libraryHandler)

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
