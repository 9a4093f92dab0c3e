package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"offer-landing/internal/handler/api"
	"offer-landing/internal/handler/middleware"
	"offer-landing/internal/handler/web"
	"offer-landing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, pageHandler *web.PageHandler, offerHandler *api.OfferHandler, viewHandler *api.ViewHandler) error {
	tmpl, err := web.ParseTemplates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, pageHandler, offerHandler, viewHandler)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, pageHandler *web.PageHandler, offerHandler *api.OfferHandler, viewHandler *api.ViewHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	page := engine.Group("")
	{
		addRoutes(page, []route{
			{Method: http.MethodGet, Path: "/", Handler: pageHandler.Index, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodGet, Path: "/events", Handler: pageHandler.Events},
			{Method: http.MethodPost, Path: "/checkout/open", Handler: pageHandler.OpenCheckout},
			{Method: http.MethodPost, Path: "/checkout/submit", Handler: pageHandler.SubmitCheckout},
			{Method: http.MethodPost, Path: "/checkout/cancel", Handler: pageHandler.CancelCheckout},
		})
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/offer", Handler: offerHandler.Get},
		})

		views := apiGroup.Group("/views")
		{
			addRoutes(views, []route{
				{Method: http.MethodPost, Path: "", Handler: viewHandler.Mount},
				{Method: http.MethodGet, Path: "/:id", Handler: viewHandler.Get, Mw: []gin.HandlerFunc{middleware.NoStore()}},
				{Method: http.MethodDelete, Path: "/:id", Handler: viewHandler.Unmount},
				{Method: http.MethodGet, Path: "/:id/events", Handler: viewHandler.Events},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: viewHandler.OpenCheckout},
				{Method: http.MethodPost, Path: "/:id/checkout/submit", Handler: viewHandler.SubmitCheckout},
				{Method: http.MethodDelete, Path: "/:id/checkout", Handler: viewHandler.CancelCheckout},
			})
		}
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Not found"}})
	})
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
