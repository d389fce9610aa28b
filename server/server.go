package server

import (
	"smarthome-server/db"
	"smarthome-server/handlers"
	httpHandler "smarthome-server/handlers/http"
	"smarthome-server/repositories"
	"smarthome-server/usecases"
	"smarthome-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

// Handler wires repositories, use cases and routes onto the gin engine and
// returns it. Split from Start so tests can drive the engine directly.
func (s *Server) Handler() *gin.Engine {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Informational routes
	s.app.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to the Smart Home API. Use /api for API endpoint information.",
		})
	})
	s.app.GET("/api", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "This is the API endpoint",
		})
	})
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserGormRepository(s.db)
	deviceRepo := repositories.NewDeviceGormRepository(s.db)
	eventRepo := repositories.NewSecurityEventGormRepository(s.db)
	feedbackRepo := repositories.NewFeedbackGormRepository(s.db)
	usageRepo := repositories.NewDeviceUsageGormRepository(s.db)

	// Initialize use cases
	recordUseCase := usecases.NewRecordUseCase(userRepo, deviceRepo, eventRepo, feedbackRepo, usageRepo)
	reportUseCase := usecases.NewReportUseCase(repositories.NewReportGormRepository(s.db))

	// WebSocket manager for the live security-event feed
	manager := ws.NewManager()
	feedHandler := handlers.NewEventFeedHandler(manager)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(recordUseCase)
	deviceHandler := httpHandler.NewDeviceHandler(recordUseCase)
	eventHandler := httpHandler.NewSecurityEventHandler(recordUseCase, manager)
	feedbackHandler := httpHandler.NewFeedbackHandler(recordUseCase)
	usageHandler := httpHandler.NewDeviceUsageHandler(recordUseCase)
	reportHandler := httpHandler.NewReportHandler(reportUseCase)

	// User routes
	users := s.app.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.GetAllUsers)
		users.GET("/house_areas", userHandler.GetAllHouseAreas)
		users.GET("/:user_id/house_area", userHandler.GetUserHouseArea)
	}

	// Device routes
	devices := s.app.Group("/devices")
	{
		devices.POST("", deviceHandler.CreateDevice)
		devices.GET("", deviceHandler.GetAllDevices)
	}

	// Security event routes
	events := s.app.Group("/security_events")
	{
		events.POST("", eventHandler.CreateSecurityEvent)
		events.GET("", eventHandler.GetAllSecurityEvents)
	}

	// Feedback routes
	feedback := s.app.Group("/feedback")
	{
		feedback.POST("", feedbackHandler.CreateFeedback)
		feedback.GET("", feedbackHandler.GetAllFeedback)
	}

	// Device usage and report routes
	deviceUsage := s.app.Group("/device_usage")
	{
		deviceUsage.POST("", usageHandler.CreateDeviceUsage)
		deviceUsage.GET("", usageHandler.GetAllDeviceUsage)
		deviceUsage.GET("/summary", reportHandler.GetUsageSummary)
		deviceUsage.GET("/time_distribution", reportHandler.GetUsageTimeDistribution)
	}
	s.app.GET("/usage_by_house_area", reportHandler.GetUsageByHouseArea)

	// Live event feed
	s.app.GET("/ws", feedHandler.HandleEventFeedWS)
	s.app.GET("/ws/subscribers", feedHandler.GetSubscribers)

	return s.app
}

func (s *Server) Start() {
	app := s.Handler()
	if err := app.Run("0.0.0.0:8000"); err != nil {
		panic(err)
	}
}
