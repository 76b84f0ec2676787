package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, catalogHandler *api.CatalogHandler, chatHandler *api.ChatHandler, clientIdentity *middleware.ClientIdentity) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, catalogHandler, chatHandler, clientIdentity)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, catalogHandler *api.CatalogHandler, chatHandler *api.ChatHandler, clientIdentity *middleware.ClientIdentity) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/catalog", catalogHandler.Search)
		apiGroup.GET("/admin/contacts", chatHandler.ListContacts)

		booking := apiGroup.Group("/booking")
		booking.Use(clientIdentity.Require())
		{
			addRoutes(booking, []route{
				{Method: http.MethodPut, Path: "/draft", Handler: bookingHandler.SaveDraft},
				{Method: http.MethodGet, Path: "/draft", Handler: bookingHandler.GetDraft},
				{Method: http.MethodDelete, Path: "/draft", Handler: bookingHandler.CancelDraft},
				{Method: http.MethodPost, Path: "/confirm", Handler: bookingHandler.ConfirmBooking},
				{Method: http.MethodGet, Path: "/confirmation", Handler: bookingHandler.GetConfirmation},
			})
		}

		chat := apiGroup.Group("/chat")
		chat.Use(clientIdentity.Require())
		{
			addRoutes(chat, []route{
				{Method: http.MethodPost, Path: "/messages", Handler: chatHandler.SendMessage},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
