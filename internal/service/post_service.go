package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, user dto.AuthUser, req *dto.PostBaseDTO) error
	GetPostList(ctx context.Context) ([]*dto.PostSummaryDTO, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, user dto.AuthUser, postID uint64, req *dto.PostBaseDTO) error
	DeletePost(ctx context.Context, user dto.AuthUser, postID uint64) error
	GetLikedPosts(ctx context.Context, user dto.AuthUser) ([]*dto.LikedPostDTO, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	likeService LikeService
}

func NewPostService(postRepo repository.PostRepo, likeService LikeService) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		likeService: likeService,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, user dto.AuthUser, req *dto.PostBaseDTO) error {
	if util.IsBlank(req.Title) {
		return ErrPostTitleFormat
	}
	if util.IsBlank(req.Content) {
		return ErrPostContentFormat
	}

	post := &model.Post{
		UserID:   user.UserID,
		Nickname: user.Nickname,
		Title:    *req.Title,
		Content:  *req.Content,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		log.ErrorContext(ctx, "create post error", "user_id", user.UserID, "err", err)
		return ErrPostCreateFailed
	}
	return nil
}

func (s *postServiceImpl) GetPostList(ctx context.Context) ([]*dto.PostSummaryDTO, error) {
	posts, err := s.postRepo.GetPostList(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list posts error", "err", err)
		return nil, ErrPostListFailed
	}

	list := make([]*dto.PostSummaryDTO, 0, len(posts))
	for _, post := range posts {
		item := &dto.PostSummaryDTO{}
		if err = copier.Copy(item, post); err != nil {
			return nil, err
		}
		item.Date = util.DatePrefix(post.CreatedAt)
		item.Update = util.DatePrefix(post.UpdatedAt)

		// 与详情一致，取缓存中的实时点赞数
		if item.LikesCount, err = s.likeService.GetPostLikeCount(ctx, post.ID); err != nil {
			log.ErrorContext(ctx, "get post like count error", "post_id", post.ID, "err", err)
			return nil, ErrPostListFailed
		}
		list = append(list, item)
	}
	return list, nil
}

// GetPost 帖子不存在时返回 nil, nil
func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", postID, "err", err)
		return nil, ErrPostGetFailed
	}
	if post == nil {
		return nil, nil
	}

	postDTO := &dto.PostDTO{}
	if err = copier.Copy(postDTO, post); err != nil {
		return nil, err
	}

	likes, err := s.likeService.GetPostLikeCount(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post like count error", "post_id", postID, "err", err)
		return nil, ErrPostGetFailed
	}
	postDTO.LikesCount = likes
	return postDTO, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, user dto.AuthUser, postID uint64, req *dto.PostBaseDTO) error {
	if util.IsBlank(req.Title) {
		return ErrTitleFormat
	}
	if util.IsBlank(req.Content) {
		return ErrContentFormat
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", postID, "err", err)
		return ErrPostUpdateFailed
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != user.UserID {
		return ErrPostUpdateForbidden
	}

	if err = s.postRepo.UpdatePostContent(ctx, postID, user.UserID, *req.Title, *req.Content); err != nil {
		log.ErrorContext(ctx, "update post error", "post_id", postID, "err", err)
		return ErrPostUpdateFailed
	}
	return nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, user dto.AuthUser, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", postID, "err", err)
		return ErrPostDeleteFailed
	}
	if post == nil {
		return ErrPostDeleteNotFound
	}
	if post.UserID != user.UserID {
		return ErrPostDeleteForbidden
	}

	affected, err := s.postRepo.DeletePost(ctx, postID, user.UserID)
	if err != nil {
		log.ErrorContext(ctx, "delete post error", "post_id", postID, "err", err)
		return ErrPostDeleteFailed
	}
	if affected == 0 {
		return ErrPostDeleteNotFound
	}
	return nil
}

func (s *postServiceImpl) GetLikedPosts(ctx context.Context, user dto.AuthUser) ([]*dto.LikedPostDTO, error) {
	posts, err := s.postRepo.GetLikedPosts(ctx, user.UserID)
	if err != nil {
		log.ErrorContext(ctx, "list liked posts error", "user_id", user.UserID, "err", err)
		return nil, ErrLikedPostListFailed
	}

	list := make([]*dto.LikedPostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, &dto.LikedPostDTO{
			PostID:   post.PostID,
			UserID:   post.UserID,
			Nickname: post.Nickname,
			Title:    post.Title,
			Date:     util.DatePrefix(post.CreatedAt),
			Likes:    post.Likes,
		})
	}
	return list, nil
}
