package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acnescan/config"
	"acnescan/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.PUT("/me", h.updateCurrentUser)
			users.PUT("/me/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createUser)
				admin.GET("/", h.getUsers)
				admin.GET("/:id", h.getUserByID)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		dermatologists := api.Group("/dermatologists")
		{
			dermatologists.GET("/", h.getDermatologists)
			dermatologists.GET("/:id", h.getDermatologistByID)
		}

		suggestions := api.Group("/suggestions")
		{
			suggestions.GET("/:acneType", h.getSuggestions)
		}

		scans := api.Group("/scans")
		scans.Use(h.authMiddleware())
		{
			scans.POST("/", h.createScan)
			scans.GET("/", h.getScans)
			scans.GET("/:id", h.getScanByID)
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.DELETE("/:id", h.cancelAppointment)
		}
	}
}
