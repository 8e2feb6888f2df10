// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/emulatorgames/rom-catalog/internal/config"
	"github.com/emulatorgames/rom-catalog/internal/handlers"
	"github.com/emulatorgames/rom-catalog/internal/i18n"
	"github.com/emulatorgames/rom-catalog/internal/metrics"
	"github.com/emulatorgames/rom-catalog/internal/middleware"
	"github.com/emulatorgames/rom-catalog/internal/services"
	"github.com/emulatorgames/rom-catalog/internal/utils"
)

// Dependencies are the long-lived collaborators built by main. The
// caller owns RateLimiter and stops it on shutdown; nil disables rate
// limiting.
type Dependencies struct {
	Source      services.RomDataSource
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
	Logger      logrus.FieldLogger
	Version     string
}

func Initialize(cfg *config.Config, deps Dependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	// Initialize services
	catalogService := services.NewCatalogService(deps.Source)
	redirectService := services.NewRedirectService(services.DefaultRedirects)
	articleService := services.NewArticleService(cfg.Catalog.ArticlesDir)
	romArticleService := services.NewArticleService(cfg.Catalog.RomArticlesDir)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	articleHandler := handlers.NewArticleHandler(articleService, romArticleService)
	healthHandler := handlers.NewHealthHandler(deps.Version)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.Redirects(redirectService))
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware())
	}

	// Health check
	r.GET("/health", healthHandler.GetHealth)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/rom-data", catalogHandler.GetRomData)

		api.GET("/categories", catalogHandler.GetCategories)
		api.GET("/categories/:id", catalogHandler.GetCategory)

		api.GET("/games", catalogHandler.GetGames)
		api.GET("/games/:id", catalogHandler.GetGame)
		api.GET("/popular", catalogHandler.GetPopularGames)
		api.GET("/consoles", catalogHandler.GetConsoles)

		api.GET("/roms", catalogHandler.GetRoms)
		api.GET("/roms/:console/:slug", catalogHandler.GetRomBySlug)
	}

	// Pre-rendered pages
	r.GET("/articles/*path", articleHandler.GetArticle)
	r.GET("/roms/*path", articleHandler.GetRomArticle)

	r.NoRoute(func(c *gin.Context) {
		utils.NotFoundResponse(c, i18n.KeyRouteNotFound)
	})

	return r
}
