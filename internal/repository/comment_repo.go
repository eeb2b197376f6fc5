package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error)
	UpdateCommentContent(ctx context.Context, commentID, userID uint64, content string) error
	DeleteComment(ctx context.Context, commentID, userID uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// GetCommentByID 不存在时返回 nil, nil
func (s *CommentRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Order("comment_id DESC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) UpdateCommentContent(ctx context.Context, commentID, userID uint64, content string) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Update("content", content).Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, commentID, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.Comment{})
	return result.RowsAffected, result.Error
}
