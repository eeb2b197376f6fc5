package handler

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgLikeAdded   = "좋아요 등록에 성공하였습니다."
	msgLikeRemoved = "좋아요 취소가 정상적으로 완료되었습니다."
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleLike 点赞/取消点赞
func (s *LikeHandler) ToggleLike(c *gin.Context) {
	user, ok := authUser(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	liked, err := s.likeService.ToggleLike(c.Request.Context(), user, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if liked {
		response.Success(c, response.Ok, msgLikeAdded)
		return
	}
	response.Success(c, response.Ok, msgLikeRemoved)
}
