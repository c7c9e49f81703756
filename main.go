package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acnescan/config"
	_ "acnescan/docs"
	"acnescan/internal/classifier"
	"acnescan/internal/notify"
	"acnescan/internal/repository"
	"acnescan/internal/service"
	"acnescan/internal/storage"
	"acnescan/internal/transport/rest"
	"acnescan/pkg/database"
	"acnescan/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title AcneScan API
// @version 1.0
// @description API for skin scan analysis, treatment suggestions and dermatologist appointments

// @contact.name API Support
// @contact.email support@acnescan.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running database migrations")
	if err := database.RunMigrations(db, "./migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("migrations applied")

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, log)
		if err != nil {
			log.Fatal("failed to initialize S3 storage", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("S3 storage initialized", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("S3 storage is not configured, scan uploads will be unavailable")
	}

	classifierClient := classifier.NewClient(cfg.Classifier)

	var emailSender notify.EmailSender
	if sender := notify.NewSendGridSender(cfg.Email, log); sender != nil {
		emailSender = sender
		log.Info("SendGrid email sender initialized", zap.String("from", cfg.Email.FromEmail))
	} else {
		emailSender = notify.NewStubSender(log)
		log.Warn("SendGrid API key is not set, confirmation emails will be logged only")
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: fileStorage,
		Classifier:  classifierClient,
		EmailSender: emailSender,
	})

	handler := rest.NewHandler(services, log, cfg)

	router := gin.Default()

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	router.GET("/swagger.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.File("./docs/swagger.json")
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("failed to stop server", zap.Error(err))
	}

	log.Info("server stopped")
}
