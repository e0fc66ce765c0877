package router

import (
	"strings"

	"github.com/bolder-electric/internal/config"
	adminhandlers "github.com/bolder-electric/internal/http/handlers/admin"
	publichandlers "github.com/bolder-electric/internal/http/handlers/public"
	"github.com/bolder-electric/internal/logger"
	"github.com/bolder-electric/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按公开/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图库图片）
	uploadDir := strings.TrimSpace(cfg.Upload.Dir)
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/services", publicHandler.GetServices)
			public.GET("/contact", publicHandler.GetContactInfo)
			public.GET("/gallery", publicHandler.GetGallery)
			public.GET("/time-slots", publicHandler.GetTimeSlots)
			public.GET("/captcha/image", publicHandler.GetCaptchaImage)
		}

		// 预约提交（公开）
		apiV1.POST("/bookings", publicHandler.CreateBooking)

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminUserRepo))
			{
				authorized.POST("/logout", adminHandler.AdminLogout)
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)
				authorized.GET("/access-logs", adminHandler.GetAccessLogs)

				// 服务项目管理
				authorized.GET("/services", adminHandler.GetAdminServices)
				authorized.POST("/services", adminHandler.CreateService)
				authorized.PUT("/services/:id", adminHandler.UpdateService)
				authorized.DELETE("/services/:id", adminHandler.DeleteService)

				// 时段与可约状态管理
				authorized.GET("/time-slots", adminHandler.GetTimeSlots)
				authorized.GET("/availability/:date", adminHandler.GetAvailability)
				authorized.POST("/availability", adminHandler.SetAvailability)

				// 预约管理
				authorized.GET("/bookings", adminHandler.GetBookings)

				// 联系信息管理
				authorized.GET("/contact", adminHandler.GetContactInfo)
				authorized.POST("/contact", adminHandler.SaveContactInfo)

				// 图库管理
				authorized.GET("/gallery", adminHandler.GetAdminGallery)
				authorized.POST("/gallery/upload", adminHandler.UploadGalleryPhoto)
				authorized.PUT("/gallery/:id", adminHandler.UpdateGalleryPhoto)
				authorized.DELETE("/gallery/:id", adminHandler.DeleteGalleryPhoto)
				authorized.PUT("/gallery/order", adminHandler.UpdateGalleryOrder)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
