package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgPostCreated = "게시글이 성공적으로 작성되었습니다."
	msgPostUpdated = "게시글을 성공적으로 수정하였습니다."
	msgPostDeleted = "게시글을 성공적으로 삭제하였습니다."
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost 发布帖子
func (s *PostHandler) CreatePost(c *gin.Context) {
	user, ok := authUser(c)
	if !ok {
		return
	}

	req := &dto.PostBaseDTO{}
	empty, err := util.DecodeBody(c, req)
	if err != nil || empty {
		response.Error(c, service.ErrDataFormat)
		return
	}

	if err = s.postService.CreatePost(c.Request.Context(), user, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.Created, msgPostCreated)
}

// GetPostList 全部帖子，按创建时间倒序
func (s *PostHandler) GetPostList(c *gin.Context) {
	list, err := s.postService.GetPostList(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, response.Ok, list)
}

// GetPost 帖子详情，不存在时返回 null
func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	post, err := s.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if post == nil {
		response.Data(c, response.Ok, nil)
		return
	}
	response.Data(c, response.Ok, post)
}

// UpdatePost 修改帖子
func (s *PostHandler) UpdatePost(c *gin.Context) {
	user, ok := authUser(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	req := &dto.PostBaseDTO{}
	empty, err := util.DecodeBody(c, req)
	if err != nil || empty {
		response.Error(c, service.ErrDataFormat)
		return
	}

	if err = s.postService.UpdatePost(c.Request.Context(), user, postID, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.Created, msgPostUpdated)
}

// DeletePost 删除帖子
func (s *PostHandler) DeletePost(c *gin.Context) {
	user, ok := authUser(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	if err := s.postService.DeletePost(c.Request.Context(), user, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.Ok, msgPostDeleted)
}

// GetLikedPosts 当前用户点赞过的帖子
func (s *PostHandler) GetLikedPosts(c *gin.Context) {
	user, ok := authUser(c)
	if !ok {
		return
	}

	list, err := s.postService.GetLikedPosts(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, response.Ok, list)
}
