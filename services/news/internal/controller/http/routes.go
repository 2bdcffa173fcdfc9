package http

import (
	"newsboard/pkg/jwt"
	"newsboard/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every news service route on api. Reads are public
// but still reject a malformed token; writes need a bearer token whose user
// still exists.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, jwtService *jwt.Service) {
	api.Use(middleware.OptionalAuth(jwtService))
	auth := []gin.HandlerFunc{middleware.AuthMiddleware(jwtService), h.ResolvePrincipal()}
	with := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, auth...), handler)
	}

	accounts := api.Group("/accounts")
	{
		accounts.GET("/:username", h.GetUser)
		accounts.PUT("/:username", with(h.UpdateUser)...)
		accounts.DELETE("/:username", with(h.DeleteUser)...)
		accounts.GET("/:username/my", h.Authored)
		accounts.GET("/:username/like", h.Liked)
	}

	news := api.Group("/news")
	{
		news.GET("", h.ListNews)
		news.POST("", with(h.CreateNews)...)
		news.GET("/search/:search", h.SearchNews)
		news.GET("/latest", h.LatestNews)
		news.GET("/liked", h.PopularNews)
		news.GET("/comment", h.MostCommentedNews)

		news.GET("/:newsId", h.GetNews)
		news.PUT("/:newsId", with(h.UpdateNews)...)
		news.DELETE("/:newsId", with(h.DeleteNews)...)

		news.GET("/:newsId/like", h.NewsLikers)
		news.POST("/:newsId/like", with(h.LikeNews)...)
		news.DELETE("/:newsId/like", with(h.UnlikeNews)...)

		news.GET("/:newsId/comment", h.ListComments)
		news.POST("/:newsId/comment", with(h.CreateComment)...)

		news.GET("/comment/search/:search", h.SearchComments)
		news.GET("/comment/:commentId", h.GetComment)
		news.PUT("/comment/:commentId", with(h.UpdateComment)...)
		news.DELETE("/comment/:commentId", with(h.DeleteComment)...)

		news.GET("/comment/:commentId/like", h.CommentLikers)
		news.POST("/comment/:commentId/like", with(h.LikeComment)...)
		news.DELETE("/comment/:commentId/like", with(h.UnlikeComment)...)
	}
}
