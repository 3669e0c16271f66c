package main

import (
	"net/http"
	"os"
	"time"

	"getexposure/api/handler"
	"getexposure/api/middleware"
	"getexposure/api/routes"
	"getexposure/config"
	"getexposure/internal/repository"
	"getexposure/internal/service"
	"getexposure/internal/upload"
	"getexposure/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	db := config.ConnectionDb()
	if err := config.Migrate(db); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "getexposure"
	}
	jwtManager := &utils.JWTManager{
		Secret:     []byte(secret),
		Issuer:     issuer,
		SessionTTL: 7 * 24 * time.Hour,
	}

	validate := validator.New()

	adminRepo := repository.NewAdminRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	homeRepo := repository.NewHomeContentRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	studyRepo := repository.NewCaseStudyRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	contactContentRepo := repository.NewContactContentRepository(db)
	contactInfoRepo := repository.NewContactInfoRepository(db)
	statsContentRepo := repository.NewStatsContentRepository(db)
	statItemRepo := repository.NewStatItemRepository(db)
	logoRepo := repository.NewLogoRepository(db)
	imageRepo := repository.NewImageRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	authService := service.NewAuthService(adminRepo, auditRepo, service.BcryptPasswordHasher{}, jwtManager)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	store := upload.NewStore(uploadDir)

	authHandler := handler.NewAuthHandler(authService, validate, logger)
	authHandler.SecureCookies = os.Getenv("COOKIE_SECURE") != "false"

	guard := middleware.SessionGuard{JWT: jwtManager}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
			} else {
				entry.Info("request")
			}
			return nil
		},
	}))

	router := &routes.Router{
		Echo:      e,
		Guard:     guard,
		Auth:      authHandler,
		Home:      handler.NewHomeHandler(homeRepo, validate, logger),
		Positions: handler.NewPositionHandler(positionRepo, validate, logger),
		Studies:   handler.NewCaseStudyHandler(studyRepo, validate, logger),
		Solutions: handler.NewSolutionHandler(solutionRepo, validate, logger),
		Contact:   handler.NewContactHandler(contactContentRepo, contactInfoRepo, validate, logger),
		Stats:     handler.NewStatsHandler(statsContentRepo, statItemRepo, validate, logger),
		Logos:     handler.NewLogoHandler(logoRepo, store, validate, logger),
		Images:    handler.NewImageHandler(imageRepo, store, logger),
		Settings:  handler.NewSettingsHandler(settingsRepo, store, validate, logger),
		WebDir:    os.Getenv("WEB_DIR"),
		UploadDir: uploadDir,
	}
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.WithField("addr", addr).Info("server starting")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("server stopped")
	}
}
