package router

import (
	"aichat/api"
	"aichat/config"
	_ "aichat/docs"
	"aichat/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API 路由组
	apiGroup := r.Group("/api")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		apiGroup.POST("/register", authHandler.Register)
		apiGroup.POST("/login", authHandler.Login)

		// 密码重置
		apiGroup.POST("/password/request-reset", authHandler.RequestPasswordReset)
		apiGroup.POST("/password/verify-code", authHandler.VerifyResetCode)
		apiGroup.POST("/password/reset", authHandler.ResetPassword)

		// 需要 JWT 认证的路由
		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/profile", authHandler.GetProfile)
			authorized.PUT("/password", authHandler.ChangePassword)

			// 聊天相关
			chatHandler := api.NewChatHandler(cfg)
			authorized.GET("/chats", chatHandler.List)
			authorized.POST("/chat", chatHandler.Relay)
			authorized.GET("/chat/:chatId", chatHandler.Get)
			authorized.DELETE("/chat/:chatId", chatHandler.Delete)

			// AI模型配置相关
			modelHandler := api.NewAIModelHandler()
			authorized.POST("/models", modelHandler.Create)
			authorized.GET("/models", modelHandler.List)
			authorized.PUT("/models/:modelId", modelHandler.Update)
			authorized.DELETE("/models/:modelId", modelHandler.Delete)

			// 导出相关
			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
