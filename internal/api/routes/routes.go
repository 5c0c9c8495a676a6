package routes

import (
	"apollo-survey-backend/internal/api/handlers"
	"apollo-survey-backend/internal/api/middleware"
	"apollo-survey-backend/internal/config"
	"apollo-survey-backend/internal/repository"
	"apollo-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	topicUserRepo := repository.NewTopicUserRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	contextRepo := repository.NewSurveyContextRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, roleRepo, userRoleRepo, validator)
	roleService := service.NewRoleService(roleRepo, validator)
	topicService := service.NewTopicService(topicRepo, topicUserRepo, userRepo, surveyRepo, validator)
	surveyService := service.NewSurveyService(surveyRepo, topicRepo, validator)
	contextService := service.NewSurveyContextService(contextRepo, surveyRepo, validator)
	questionService := service.NewQuestionService(questionRepo, surveyService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	roleHandler := handlers.NewRoleHandler(roleService)
	topicHandler := handlers.NewTopicHandler(topicService)
	surveyHandler := handlers.NewSurveyHandler(surveyService, topicService)
	contextHandler := handlers.NewContextHandler(contextService)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/me", userHandler.GetUserInfo)
			users.GET("/search", userHandler.SearchUsers) // Requires q parameter
			users.GET("/by-name/:name", userHandler.GetUserByName)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.POST("/:id/roles/:roleId", userHandler.AddUserRole)
			users.DELETE("/:id/roles/:roleId", userHandler.DeleteUserRole)
		}

		// Role routes
		roles := v1.Group("/roles")
		{
			roles.GET("", roleHandler.ListRoles)
			roles.POST("", roleHandler.CreateRole)
			roles.GET("/by-name/:name", roleHandler.GetRoleByName)
			roles.GET("/:id", roleHandler.GetRole)
		}

		// Topic routes
		topics := v1.Group("/topics")
		{
			topics.GET("", topicHandler.ListTopics)
			topics.POST("", topicHandler.CreateTopic)
			topics.GET("/:id", topicHandler.GetTopic)
			topics.PUT("/:id", topicHandler.UpdateTopic)
			topics.DELETE("/:id", topicHandler.DeleteTopic)
			topics.POST("/:id/surveys", surveyHandler.CreateSurveyRequest)
		}

		// Survey routes
		surveys := v1.Group("/surveys")
		{
			surveys.GET("", surveyHandler.ListSurveys)
			surveys.POST("", surveyHandler.CreateSurvey)
			surveys.GET("/:id", surveyHandler.GetSurvey)
			surveys.DELETE("/:id", surveyHandler.DeleteSurvey)
			surveys.GET("/:id/questions", questionHandler.GetQuestionsBySurvey)
		}

		// Survey context routes
		contexts := v1.Group("/contexts")
		{
			contexts.GET("", contextHandler.ListContexts)
			contexts.POST("", contextHandler.CreateContext)
			contexts.GET("/:id", contextHandler.GetContext)
			contexts.DELETE("/:id", contextHandler.DeleteContext)
		}

		// Question routes
		questions := v1.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.GET("/:id", questionHandler.GetQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
