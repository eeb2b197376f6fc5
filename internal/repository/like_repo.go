package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepo interface {
	ToggleLike(ctx context.Context, like *model.Like) (bool, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db}
}

// ToggleLike 在同一事务中锁定帖子行后删除或插入点赞，返回操作后是否为点赞状态。
// 帖子不存在时返回 gorm.ErrRecordNotFound。
func (s *LikeRepoImpl) ToggleLike(ctx context.Context, like *model.Like) (bool, error) {
	liked := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("post_id").
			Where("post_id = ?", like.PostID).
			First(&post).Error
		if err != nil {
			return err
		}

		result := tx.Where("user_id = ? AND post_id = ?", like.UserID, like.PostID).Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		if err = tx.Create(like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (s *LikeRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
