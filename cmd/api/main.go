package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-backend/config"
	_ "go-jobportal-backend/docs" // Important for Swagger
	v1 "go-jobportal-backend/internal/delivery/http/v1"
	"go-jobportal-backend/internal/delivery/ws"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/redis"
	"go-jobportal-backend/pkg/upload"

	"github.com/go-playground/validator/v10"
)

// @title           Job Portal Backend API
// @version         1.0
// @description     HR/job-portal backend: users, courses, collections, enrollments, resume intake.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	courseRepo := postgres.NewCourseRepository(dbPool)
	collectionRepo := postgres.NewCollectionRepository(dbPool)
	enrollmentRepo := postgres.NewEnrollmentRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	resolver := usecase.NewUserResolver(userRepo)
	userUC := usecase.NewUserUsecase(userRepo, validate)
	courseUC := usecase.NewCourseUsecase(courseRepo, resolver)
	collectionUC := usecase.NewCollectionUsecase(collectionRepo, resolver)
	enrollmentUC := usecase.NewEnrollmentUsecase(enrollmentRepo, courseRepo, resolver)
	resumeStorage := upload.NewStorage(cfg.UploadDir, cfg.MaxUploadSizeMB)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, resumeStorage)

	// 7. Setup Notification Hub
	hub := ws.NewHub()

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:       userUC,
		CourseUC:     courseUC,
		CollectionUC: collectionUC,
		EnrollmentUC: enrollmentUC,
		ResumeUC:     resumeUC,
		Hub:          hub,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
