package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/labkeep-dev/labkeep/internal/auth"
	"github.com/labkeep-dev/labkeep/internal/config"
	"github.com/labkeep-dev/labkeep/internal/handlers"
	"github.com/labkeep-dev/labkeep/internal/middleware"
	"github.com/labkeep-dev/labkeep/internal/store"
	"github.com/labkeep-dev/labkeep/internal/ws"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New wires the stores, session service and handlers together and
// returns the configured engine.
func New(cfg *config.Config, gormDB *gorm.DB, logger *zap.Logger) (*gin.Engine, error) {
	tokens, err := auth.NewService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	users := store.NewUserStore(gormDB)
	labs := store.NewLabStore(gormDB)
	bookings := store.NewBookingStore(gormDB)
	physical := store.NewPhysicalResourceStore(gormDB)
	virtual := store.NewVirtualResourceStore(gormDB)

	hub := ws.NewHub(cfg.AllowedOrigins, logger)

	authHandler := handlers.NewAuthHandler(users, tokens, logger)
	labsHandler := handlers.NewLabsHandler(labs, logger)
	bookingsHandler := handlers.NewBookingsHandler(bookings, hub, logger)
	physicalHandler := handlers.NewPhysicalHandler(physical, logger)
	virtualHandler := handlers.NewVirtualHandler(virtual, logger)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.GET("/healthz", handlers.HealthCheck)

	r.GET("/", authHandler.Index)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/signup", authHandler.ShowSignup)
	r.POST("/signup", authHandler.Signup)

	authed := r.Group("/", middleware.RequireAuth(tokens, users))
	{
		authed.GET("/dashboard", authHandler.Dashboard)
		authed.GET("/logout", authHandler.Logout)

		authed.GET("/labs", labsHandler.Show)
		authed.POST("/labs", labsHandler.Create)
		authed.POST("/labs/delete", labsHandler.Delete)

		authed.GET("/bookings", bookingsHandler.Show)
		authed.POST("/bookings", bookingsHandler.Create)
		authed.POST("/bookings/delete", bookingsHandler.Delete)

		authed.GET("/physical", physicalHandler.Show)
		authed.POST("/physical", physicalHandler.Create)
		authed.POST("/physical/delete", physicalHandler.Delete)

		authed.GET("/virtual", virtualHandler.Show)
		authed.POST("/virtual", virtualHandler.Create)
		authed.POST("/virtual/delete", virtualHandler.Delete)

		authed.GET("/calendar", handlers.Calendar)
		authed.GET("/settings", handlers.Settings)
		authed.GET("/profile", handlers.Profile)

		authed.GET("/ws", hub.Handle)
	}

	r.NoRoute(handlers.NotFound)

	return r, nil
}
