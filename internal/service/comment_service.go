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

type CommentService interface {
	// CreateComment req 为 nil 表示请求体无法解析
	CreateComment(ctx context.Context, user dto.AuthUser, postID uint64, req *dto.CommentBaseDTO) error
	GetComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, user dto.AuthUser, postID, commentID uint64, req *dto.CommentBaseDTO) error
	DeleteComment(ctx context.Context, user dto.AuthUser, postID, commentID uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, user dto.AuthUser, postID uint64, req *dto.CommentBaseDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", postID, "err", err)
		return ErrCommentCreateFailed
	}
	if post == nil {
		return ErrCommentPostNotFound
	}
	if req == nil {
		return ErrDataFormat
	}
	if util.IsEmpty(req.Content) {
		return ErrCommentContentEmpty
	}

	comment := &model.Comment{
		UserID:  user.UserID,
		PostID:  postID,
		Content: *req.Content,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		log.ErrorContext(ctx, "create comment error", "post_id", postID, "err", err)
		return ErrCommentCreateFailed
	}
	return nil
}

func (s *commentServiceImpl) GetComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "get post error", "post_id", postID, "err", err)
		return nil, ErrCommentListFailed
	}
	if post == nil {
		return nil, ErrCommentPostNotFound
	}

	comments, err := s.commentRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "list comments error", "post_id", postID, "err", err)
		return nil, ErrCommentListFailed
	}

	list := make([]*dto.CommentDTO, 0, len(comments))
	if err = copier.Copy(&list, &comments); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *commentServiceImpl) UpdateComment(ctx context.Context, user dto.AuthUser, postID, commentID uint64, req *dto.CommentBaseDTO) error {
	if util.IsEmpty(req.Content) {
		return ErrCommentContentEmpty
	}

	comment, err := s.getOwnComment(ctx, user, postID, commentID, ErrCommentUpdateForbidden)
	if err != nil {
		if err == errCommentLookup {
			return ErrCommentUpdateFailed
		}
		return err
	}

	if err = s.commentRepo.UpdateCommentContent(ctx, comment.ID, user.UserID, *req.Content); err != nil {
		log.ErrorContext(ctx, "update comment error", "comment_id", commentID, "err", err)
		return ErrCommentUpdateFailed
	}
	return nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, user dto.AuthUser, postID, commentID uint64) error {
	comment, err := s.getOwnComment(ctx, user, postID, commentID, ErrCommentDeleteForbidden)
	if err != nil {
		if err == errCommentLookup {
			return ErrCommentDeleteFailed
		}
		return err
	}

	affected, err := s.commentRepo.DeleteComment(ctx, comment.ID, user.UserID)
	if err != nil {
		log.ErrorContext(ctx, "delete comment error", "comment_id", commentID, "err", err)
		return ErrCommentDeleteFailed
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// getOwnComment 评论必须属于路径中的帖子且由当前用户发表
func (s *commentServiceImpl) getOwnComment(ctx context.Context, user dto.AuthUser, postID, commentID uint64, forbidden error) (*model.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		log.ErrorContext(ctx, "get comment error", "comment_id", commentID, "err", err)
		return nil, errCommentLookup
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != user.UserID {
		return nil, forbidden
	}
	return comment, nil
}
