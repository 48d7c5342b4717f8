package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jhorsb/moodmatcher-backend/internal/handler"
	"github.com/jhorsb/moodmatcher-backend/internal/middleware"
	"github.com/jhorsb/moodmatcher-backend/internal/mood"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 注册心情校验器，供推荐接口的查询参数绑定使用
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			return mood.Known(fl.Field().String())
		})
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 静态页面 ====================
	r.Static("/static", "./web/static")
	r.StaticFile("/", "./web/static/index.html")
	r.StaticFile("/favorites", "./web/static/favorites.html")
	r.StaticFile("/login", "./web/static/login.html")
	r.StaticFile("/register", "./web/static/register.html")

	// ==================== 认证接口 ====================
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireAuth(h.Config.AppSecret), h.Me)
	}

	// ==================== 业务 API ====================
	api := r.Group("/api")
	{
		api.GET("/moods", h.Moods)
		api.GET("/recommendations", h.Recommendations)

		favorites := api.Group("/favorites")
		favorites.Use(middleware.RequireAuth(h.Config.AppSecret))
		{
			favorites.GET("", h.ListFavorites)
			favorites.POST("", h.AddFavorite)
			favorites.DELETE("", h.RemoveFavorite)
		}
	}
}
