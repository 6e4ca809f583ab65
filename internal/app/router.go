package app

import (
	"kidquest_backend/docs"
	"kidquest_backend/internal/config"
	"kidquest_backend/internal/middleware"
	"kidquest_backend/internal/model"
	"kidquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerParentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerParentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	// Child profiles
	rg.GET("/children", c.child.List)
	rg.POST("/children", c.child.Create)
	rg.PUT("/children/:id", c.child.Update)
	rg.DELETE("/children/:id", c.child.Delete)
	rg.GET("/children/:id/badges", c.achievement.ChildBadges)

	// Catalog
	rg.GET("/catalog/age-groups", c.catalog.ListAgeGroups)
	rg.GET("/catalog/modules", c.catalog.ListModules)
	rg.GET("/catalog/modules/:id/games", c.catalog.ListGames)

	// Level map
	rg.GET("/games/:id/levels", c.game.ListLevels)

	// Play flow
	rg.POST("/attempts/start", c.attempt.Start)
	rg.POST("/attempts/:id/answer", c.attempt.Answer)
	rg.POST("/attempts/:id/finish", c.attempt.Finish)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/age-groups", c.catalog.CreateAgeGroup)
		admin.PUT("/age-groups/:id", c.catalog.UpdateAgeGroup)
		admin.DELETE("/age-groups/:id", c.catalog.DeleteAgeGroup)

		admin.POST("/modules", c.catalog.CreateModule)
		admin.PUT("/modules/:id", c.catalog.UpdateModule)
		admin.DELETE("/modules/:id", c.catalog.DeleteModule)

		admin.GET("/games/:id", c.game.GetGame)
		admin.POST("/games", c.game.CreateGame)
		admin.PUT("/games/:id", c.game.UpdateGame)
		admin.DELETE("/games/:id", c.game.DeleteGame)
		admin.POST("/games/cover/upload", c.game.UploadCover)

		admin.POST("/games/:id/levels", c.game.CreateLevel)
		admin.PUT("/levels/:id", c.game.UpdateLevel)
		admin.DELETE("/levels/:id", c.game.DeleteLevel)

		admin.GET("/tasks", c.task.ListTasks)
		admin.POST("/tasks", c.task.CreateTask)
		admin.PUT("/tasks/:id", c.task.UpdateTask)
		admin.DELETE("/tasks/:id", c.task.DeleteTask)
		admin.GET("/tasks/:id/versions", c.task.ListVersions)
		admin.POST("/tasks/:id/versions", c.task.CreateVersion)
		admin.PUT("/tasks/:id/versions/:versionId/current", c.task.SetCurrentVersion)

		admin.GET("/badges", c.achievement.ListBadges)
		admin.POST("/badges", c.achievement.CreateBadge)
		admin.PUT("/badges/:id", c.achievement.UpdateBadge)
		admin.DELETE("/badges/:id", c.achievement.DeleteBadge)
		admin.POST("/badges/icon/upload", c.achievement.UploadBadgeIcon)
	}
}
