package app

import (
	"quizify_backend/docs"
	"quizify_backend/internal/config"
	"quizify_backend/internal/middleware"
	"quizify_backend/internal/model"
	"quizify_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	prefix := cfg.Server.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}

	docs.SwaggerInfo.BasePath = prefix
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group(prefix)

	api.GET("/health", c.health.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.auth.Register)
		auth.POST("", c.auth.Login)
		auth.GET("", middleware.TryAuthMiddleware(cfg), c.auth.Whoami)
		auth.DELETE("", c.auth.Logout)
	}

	users := api.Group("/users")
	{
		users.GET("/leaderboard", middleware.TryAuthMiddleware(cfg), c.user.Leaderboard)

		staff := users.Group("")
		staff.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.StaffRoles()...))
		{
			staff.GET("", c.user.List)
			staff.POST("", c.user.Create)
			staff.GET("/:username", c.user.Get)
			staff.PUT("/:username", c.user.Update)
			staff.DELETE("/:username", c.user.Delete)
		}
	}

	quizzes := api.Group("/quizzes")
	{
		quizzes.GET("", middleware.TryAuthMiddleware(cfg), c.quiz.List)
		quizzes.GET("/difficulties", c.quiz.Difficulties)
		quizzes.GET("/difficulty-stats", middleware.TryAuthMiddleware(cfg), c.quiz.DifficultyStats)
		quizzes.GET("/:id", middleware.TryAuthMiddleware(cfg), c.quiz.Get)
		quizzes.GET("/:id/questions", c.quiz.Questions)

		authorized := quizzes.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("", c.quiz.Create)
			authorized.GET("/my-stats", c.quiz.MyStats)
			authorized.PUT("/:id", c.quiz.Update)
			authorized.DELETE("/:id", c.quiz.Delete)
			authorized.POST("/:id/submit", c.quiz.Submit)
			authorized.GET("/:id/leaderboard", c.quiz.Leaderboard)
			authorized.POST("/:id/like", c.quiz.Like)
		}
	}

	questions := api.Group("/questions")
	questions.Use(middleware.AuthMiddleware(cfg))
	{
		questions.PUT("/:id", c.question.Update)
		questions.DELETE("/:id", c.question.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", c.category.List)

		staff := categories.Group("")
		staff.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.StaffRoles()...))
		{
			staff.POST("", c.category.Create)
			staff.PUT("/:id", c.category.Update)
			staff.DELETE("/:id", c.category.Delete)
		}
	}

	suggestions := api.Group("/suggestions")
	suggestions.Use(middleware.AuthMiddleware(cfg))
	{
		suggestions.POST("", c.suggestion.Submit)

		staff := suggestions.Group("")
		staff.Use(middleware.RoleMiddleware(model.StaffRoles()...))
		{
			staff.GET("", c.suggestion.List)
			staff.PATCH("/:id/status", c.suggestion.SetStatus)
		}
	}

	api.POST("/upload", middleware.AuthMiddleware(cfg), c.upload.Upload)
}
