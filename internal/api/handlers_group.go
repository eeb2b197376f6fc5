package api

import (
	"Inkwell/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	LikeHandler    *handler.LikeHandler

	// Auth 鉴权中间件，依赖用户仓储，由容器注入
	Auth gin.HandlerFunc
}
