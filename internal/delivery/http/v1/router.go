package v1

import (
	"net/http"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/delivery/ws"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC       domain.UserUsecase
	CourseUC     domain.CourseUsecase
	CollectionUC domain.CollectionUsecase
	EnrollmentUC domain.EnrollmentUsecase
	ResumeUC     domain.ResumeUsecase
	Hub          *ws.Hub
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public CRUD routes
	NewUserHandler(v1, deps.UserUC)
	NewCourseHandler(v1, deps.CourseUC, deps.EnrollmentUC, deps.Hub)
	NewCollectionHandler(v1, deps.CollectionUC)

	// Protected routes (HR resume intake)
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window))
		NewResumeHandler(protected, deps.ResumeUC, deps.Config.MaxUploadFiles, uploadLimiter, deps.Hub)
	}

	// Notification channel does its own token handshake (browsers
	// cannot set headers on websocket upgrades).
	r.GET("/ws", ws.Handler(deps.Hub, deps.Config))

	return r
}
