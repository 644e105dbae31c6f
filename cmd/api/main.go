package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/viajamais/viajamais-backend/internal/handlers/dto"
	httphandlers "github.com/viajamais/viajamais-backend/internal/handlers/http"
	"github.com/viajamais/viajamais-backend/internal/handlers/middleware"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/auth"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/config"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/email"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/i18n"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/logging"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/persistence/postgres"
	"github.com/viajamais/viajamais-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting viajamais backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	packageRepo := postgres.NewTravelPackageRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infraestrutura de apoio
	mailer := email.NewSMTPMailer(&cfg.SMTP, i18nService)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Inicializar services
	userService := services.NewUserService(userRepo, logger)
	packageService := services.NewTravelPackageService(packageRepo, logger)
	reservationService := services.NewReservationService(
		reservationRepo, userRepo, packageRepo, paymentRepo, uow, mailer, logger,
	)
	paymentService := services.NewPaymentService(paymentRepo, reservationRepo, logger)
	ratingService := services.NewRatingService(ratingRepo, reservationRepo, logger)
	authzService := services.NewAuthorizationService(userRepo, reservationService, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(userService, tokens, logger)
	userHandler := httphandlers.NewUserHandler(userService, authzService, logger)
	packageHandler := httphandlers.NewTravelPackageHandler(packageService, authzService, logger)
	reservationHandler := httphandlers.NewReservationHandler(reservationService, authzService, logger)
	paymentHandler := httphandlers.NewPaymentHandler(paymentService, authzService, logger)
	ratingHandler := httphandlers.NewRatingHandler(ratingService, authzService, logger)

	// Validadores customizados (cpf)
	if err := dto.RegisterValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "" || cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação: popula as claims quando há token,
	// segue como anônimo quando não há
	router.Use(middleware.BearerAuth(tokens))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		v1.POST("/auth/login", authHandler.Login)

		// Users
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", middleware.RequireAuth(), userHandler.GetUser)
			users.GET("", middleware.RequireAuth(), userHandler.ListUsers)
			users.PUT("/:id", middleware.RequireAuth(), userHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireAuth(), userHandler.DeleteUser)
		}

		// Travel packages (leitura pública)
		packages := v1.Group("/travel-packages")
		{
			packages.GET("", packageHandler.ListPackages)
			packages.GET("/:id", packageHandler.GetPackage)
			packages.GET("/:id/dates", packageHandler.ListPackageDates)
			packages.GET("/:id/ratings", ratingHandler.ListPackageRatings)
			packages.POST("", middleware.RequireAuth(), packageHandler.CreatePackage)
			packages.PUT("/:id", middleware.RequireAuth(), packageHandler.UpdatePackage)
			packages.DELETE("/:id", middleware.RequireAuth(), packageHandler.DeletePackage)
			packages.POST("/:id/dates", middleware.RequireAuth(), packageHandler.AddPackageDate)
		}

		// Reservations
		reservations := v1.Group("/reservations", middleware.RequireAuth())
		{
			reservations.POST("", reservationHandler.CreateReservation)
			reservations.GET("", reservationHandler.ListReservations)
			reservations.GET("/export", reservationHandler.ExportReservations)
			reservations.GET("/:id", reservationHandler.GetReservation)
			reservations.PUT("/:id", reservationHandler.UpdateReservation)
			reservations.DELETE("/:id", reservationHandler.DeleteReservation)
			reservations.POST("/:id/payment", paymentHandler.CreateReservationPayment)
			reservations.GET("/:id/payment", paymentHandler.GetReservationPayment)
			reservations.GET("/:id/rating", ratingHandler.GetReservationRating)
		}

		// Ratings
		ratings := v1.Group("/ratings", middleware.RequireAuth())
		{
			ratings.POST("", ratingHandler.CreateRating)
		}

		// Payments
		payments := v1.Group("/payments", middleware.RequireAuth())
		{
			payments.PATCH("/:id/status", paymentHandler.UpdatePaymentStatus)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
