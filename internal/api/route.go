package api

import (
	"Inkwell/internal/api/config"
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/logger"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Warn("invalid trusted proxies", "err", err)
	}

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, cfg.Logstash.Index, cfg.Logstash.Token)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "pong"})
	})

	postGroup := r.Group("/posts")
	{
		postGroup.GET("", group.PostHandler.GetPostList)
		postGroup.GET("/:postId", group.PostHandler.GetPost)
		postGroup.GET("/:postId/comments", group.CommentHandler.GetComments)

		authGroup := postGroup.Group("")
		authGroup.Use(group.Auth)
		{
			authGroup.POST("", group.PostHandler.CreatePost)
			authGroup.GET("/likes", group.PostHandler.GetLikedPosts)
			authGroup.PUT("/:postId", group.PostHandler.UpdatePost)
			authGroup.DELETE("/:postId", group.PostHandler.DeletePost)

			authGroup.POST("/:postId/comments", group.CommentHandler.CreateComment)
			authGroup.PUT("/:postId/comments/:commentId", group.CommentHandler.UpdateComment)
			authGroup.DELETE("/:postId/comments/:commentId", group.CommentHandler.DeleteComment)

			authGroup.PUT("/:postId/likes", group.LikeHandler.ToggleLike)
		}
	}

	return r
}
