package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tompettersson/reparatur-formular/internal/config"
	"github.com/tompettersson/reparatur-formular/internal/http/handlers"
	adminhandlers "github.com/tompettersson/reparatur-formular/internal/http/handlers/admin"
	"github.com/tompettersson/reparatur-formular/internal/http/middleware"
	"github.com/tompettersson/reparatur-formular/internal/modules/catalog"
	"github.com/tompettersson/reparatur-formular/internal/modules/email"
	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
	"github.com/tompettersson/reparatur-formular/internal/modules/users"
	"github.com/tompettersson/reparatur-formular/internal/storage"
)

// NewRouter wires middleware, services and routes.
func NewRouter(cfg config.Config, logger *slog.Logger, db *gorm.DB, store storage.Storage) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// ErrorHandler must sit outside Recovery so a recovered panic still gets
	// rendered as a JSON 500.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))

	sessionCfg := middleware.SessionCfg{
		DB:         db,
		CookieName: cfg.SessionCookie,
		Secure:     cfg.SecureCookies,
		TTL:        cfg.SessionTTL,
	}
	r.Use(middleware.SessionMiddleware(sessionCfg))

	ruleset := pricing.ByName(cfg.PricingRuleset)
	notifier := email.NewNotifier(email.NewMailerFromConfig(cfg), cfg.Mail)

	orderSvc := orders.NewService(db, ruleset, notifier, logger)
	adminSvc := orders.NewAdminService(db, ruleset, notifier, logger)
	repo := orders.NewRepo(db)
	userSvc := users.NewService(db)
	shopClient := catalog.NewClient(cfg.Shopware, logger)

	health := handlers.NewHealthHandler(db)
	ordersH := handlers.NewOrdersHandler(orderSvc, repo)
	suggestionsH := handlers.NewSuggestionsHandler(shopClient)
	optionsH := handlers.NewOptionsHandler(ruleset)
	authH := handlers.NewAuthHandler(userSvc, sessionCfg)
	uploadsH := handlers.NewUploadsHandler(store)
	adminOrdersH := adminhandlers.NewOrdersHandler(repo, adminSvc)

	r.GET("/health", health.Get)

	// Local photo storage is served straight from disk; S3 serves its own.
	if cfg.Upload.Driver == "" || cfg.Upload.Driver == "local" {
		r.Static(strings.TrimRight(cfg.Upload.LocalURLPrefix, "/"), cfg.Upload.LocalDir)
	}

	api := r.Group("/api")
	{
		api.POST("/orders", ordersH.Create)
		api.POST("/orders/draft", ordersH.Draft)
		api.GET("/orders/:id", ordersH.Get)
		api.GET("/suggestions", suggestionsH.Get)
		api.GET("/form-options", optionsH.Get)
		api.POST("/uploads", uploadsH.Create)

		api.POST("/admin/login", authH.Login)
		api.POST("/admin/logout", authH.Logout)

		admin := api.Group("/admin", middleware.RequireStaff())
		{
			admin.GET("/me", authH.Me)
			admin.GET("/orders", adminOrdersH.List)
			admin.GET("/orders/:id", adminOrdersH.Detail)
			admin.POST("/orders/:id/status", adminOrdersH.Transition)
			admin.PUT("/orders/:id", adminOrdersH.Update)
			admin.GET("/orders/:id/print", adminOrdersH.Print)
		}
	}

	return r
}
