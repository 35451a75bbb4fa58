package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	v1 "github.com/sevahub-simple/api/v1"
	"github.com/sevahub-simple/config"
	"github.com/sevahub-simple/database"
	"github.com/sevahub-simple/dto"
	"github.com/sevahub-simple/middleware"
	"github.com/sevahub-simple/repositories"
	"github.com/sevahub-simple/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Fatal("register validators", zap.Error(err))
	}

	users := repositories.NewUserRepository(db)
	profiles := repositories.NewSellerProfileRepository(db)
	sessions := repositories.NewSessionRepository(db)

	verifier := services.NewFirebaseVerifier(cfg.FirebaseProjectID, nil, logger)
	authService := services.NewAuthService(users, sessions, verifier, cfg.SessionTTL, logger)
	sellerService := services.NewSellerService(profiles, users, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	authCtrl := v1.NewAuthController(authService, cfg.CookieSecure)
	sellerCtrl := v1.NewSellerController(sellerService)
	api := router.Group("/api")
	v1.RegisterRoutes(api, authCtrl, sellerCtrl, middleware.AuthMiddleware(authService))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	logger.Info("starting server", zap.String("port", cfg.Port))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
