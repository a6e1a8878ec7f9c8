package api

import (
	"fmt"
	"log/slog"

	"mandir/internal/cache"
	"mandir/internal/config"
	"mandir/internal/database"
	"mandir/internal/handlers"
	"mandir/internal/logger"
	"mandir/internal/mailer"
	"mandir/internal/metrics"
	"mandir/internal/middleware"
	"mandir/internal/models"
	"mandir/internal/repository"
	"mandir/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Server wires the HTTP API
type Server struct {
	router    *gin.Engine
	config    *config.Config
	db        *database.DB
	respCache *cache.ResponseCache
	services  *service.Services
	repos     *repository.Repositories
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// The Redis tier is optional: without it the hot public lists are
	// served straight from the in-process store.
	var respCache *cache.ResponseCache
	if cfg.RedisEnabled {
		respCache, err = cache.NewResponseCache(cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, continuing without response cache", "error", err)
			respCache = nil
		}
	}

	metrics.Register()

	repos := repository.NewRepositories(db)
	store := cache.NewStore(cfg.CacheTTL)
	services := service.NewServices(repos, store, cfg)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())

	server := &Server{
		router:    router,
		config:    cfg,
		db:        db,
		respCache: respCache,
		services:  services,
		repos:     repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.respCache)

	notify := handlers.NewNotificationsHandler(
		handlers.VerifyWithSecret(s.config.JWTSecret),
		s.services.Auth,
		mailer.NewDispatcher(s.config.Mail),
	)
	notifyLimiter := rate.NewLimiter(rate.Limit(s.config.NotifyRPS), s.config.NotifyBurst)

	staffOnly := middleware.RequireRole(s.services.Auth, models.RoleAdmin, models.RoleStaff)

	api := s.router.Group("/api")
	api.Use(middleware.Authenticate(s.config.JWTSecret))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}

		// Public reads; user panels resolve to empty when anonymous
		api.GET("/poojas", h.ListPoojas)
		api.GET("/festivals", h.ListFestivals)
		api.GET("/campaigns", h.ListCampaigns)
		api.GET("/community/posts", h.ListPosts)
		api.GET("/darshan/slots", h.ListDarshanSlots)
		api.GET("/dashboard", h.Dashboard)

		// Signed-in endpoints
		user := api.Group("")
		user.Use(middleware.RequireUser())
		{
			user.GET("/bookings/mine", h.ListMyBookings)
			user.POST("/donations", h.CreateDonation)
			user.GET("/subscriptions", h.ListMySubscriptions)
			user.POST("/subscriptions", h.CreateSubscription)
			user.PATCH("/subscriptions/:id/cancel", h.CancelSubscription)
			user.POST("/community/posts", h.CreatePost)
			user.GET("/darshan/bookings", h.ListMyDarshanBookings)
			user.POST("/darshan/bookings", h.BookDarshan)
		}

		// Staff screens
		staff := api.Group("")
		staff.Use(middleware.RequireUser(), staffOnly)
		{
			staff.GET("/devotees", h.ListDevotees)
			staff.POST("/devotees", h.CreateDevotee)
			staff.DELETE("/devotees/:id", h.DeleteDevotee)
			staff.GET("/bookings", h.ListBookings)
			staff.POST("/bookings", h.CreateBooking)
			staff.GET("/transactions", h.ListTransactions)
			staff.POST("/transactions", h.CreateTransaction)
			staff.GET("/inventory", h.ListInventory)
			staff.POST("/inventory", h.CreateInventoryItem)
		}

		// The notification endpoint runs its own auth pipeline; only the
		// rate limit sits in front of it.
		api.POST("/notifications/email", middleware.RateLimit(notifyLimiter), notify.SendEmail)
	}

	s.router.GET("/health", h.Health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) Cleanup() error {
	if s.respCache != nil {
		if err := s.respCache.Close(); err != nil {
			slog.Error("Error closing Redis connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
