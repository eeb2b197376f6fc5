package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgCommentCreated = "댓글 작성에 성공하였습니다"
	msgCommentUpdated = "댓글 수정에 성공하였습니다."
	msgCommentDeleted = "성공적으로 댓글을 삭제하였습니다."
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment 发表评论；帖子存在性先于内容校验
func (s *CommentHandler) CreateComment(c *gin.Context) {
	user, ok := authUser(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	// 请求体无法解析时交给服务层在确认帖子存在后返回 ErrDataFormat
	req := &dto.CommentBaseDTO{}
	if _, err := util.DecodeBody(c, req); err != nil {
		req = nil
	}

	if err := s.commentService.CreateComment(c.Request.Context(), user, postID, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.Ok, msgCommentCreated)
}

func (s *CommentHandler) GetComments(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	list, err := s.commentService.GetComments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.Ok, list)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	user, ok := authUser(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	req := &dto.CommentBaseDTO{}
	if _, err := util.DecodeBody(c, req); err != nil {
		response.Error(c, service.ErrDataFormat)
		return
	}

	if err := s.commentService.UpdateComment(c.Request.Context(), user, postID, commentID, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.Ok, msgCommentUpdated)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	user, ok := authUser(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := s.commentService.DeleteComment(c.Request.Context(), user, postID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.Ok, msgCommentDeleted)
}
