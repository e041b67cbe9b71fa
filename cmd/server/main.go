package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"core/internal/catalog"
	"core/internal/config"
	"core/internal/dialog"
	"core/internal/handler"
	"core/internal/logger"
	"core/internal/service"
	"core/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	log.Info("Water Filter Shopping Assistant",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit))

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	// Catalog source: optional PostgreSQL, built-in dataset otherwise
	var provider catalog.Provider
	if cfg.PostgreSQL.Enabled {
		pg, err := catalog.NewPostgresCatalog(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Warn("catalog database unavailable, using built-in dataset", zap.Error(err))
		} else {
			defer pg.Close()
			provider = pg
		}
	}
	products := catalog.Load(ctx, provider, log)

	// Session store: redis for multi-instance deployments, memory otherwise
	var store session.Store
	switch cfg.Session.Backend {
	case "redis":
		redisStore, err := session.NewRedisStore(ctx,
			cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB, cfg.Session.TTL)
		if err != nil {
			log.Fatal("Failed to connect to redis session store", zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
		log.Info("using redis session store", zap.String("addr", cfg.Session.RedisAddr))
	default:
		store = session.NewMemoryStore()
		log.Info("using in-memory session store")
	}

	// Optional marketplace augmentation
	var market *catalog.Marketplace
	if cfg.Marketplace.Enabled {
		market = catalog.NewMarketplace(
			cfg.Marketplace.BaseURL,
			cfg.Marketplace.Timeout,
			cfg.Marketplace.MaxResults,
			log,
		)
		log.Info("marketplace augmentation enabled", zap.String("base_url", cfg.Marketplace.BaseURL))
	}

	// Initialize services
	controller := dialog.NewController()
	chatService := service.NewChatService(store, controller, products, market, cfg.Chat.TopN, log)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	recommendHandler := handler.NewRecommendHandler(chatService, cfg.Chat.MaxTopN)
	productsHandler := handler.NewProductsHandler(chatService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = strings.Split(cfg.Server.AllowedMethods, ",")
	corsConfig.AllowHeaders = strings.Split(cfg.Server.AllowedHeaders, ",")
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "water-filter-assistant",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.GET("/conversations/:id/requirements", chatHandler.Requirements)
		apiV1.DELETE("/conversations/:id", chatHandler.EndConversation)

		apiV1.POST("/recommend", recommendHandler.Recommend)
		apiV1.POST("/compare", recommendHandler.Compare)

		apiV1.GET("/products", productsHandler.List)
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, log)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", zap.String("addr", addr))

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
}
