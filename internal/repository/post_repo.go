package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostList(ctx context.Context) ([]*model.Post, error)
	GetLikedPosts(ctx context.Context, userID uint64) ([]*model.LikedPost, error)
	UpdatePostContent(ctx context.Context, postID, userID uint64, title, content string) error
	UpdateLikesCount(ctx context.Context, postID uint64, count int64) error
	DeletePost(ctx context.Context, postID, userID uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// GetPost 按主键查询，不存在时返回 nil, nil
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Where("post_id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostList 全量列表，按创建时间倒序
func (s *PostRepoImpl) GetPostList(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Select("post_id", "user_id", "nickname", "title", "content", "likes", "created_at", "updated_at").
		Order("created_at DESC").
		Order("post_id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetLikedPosts 用户点赞过的帖子，按实时点赞数倒序
func (s *PostRepoImpl) GetLikedPosts(ctx context.Context, userID uint64) ([]*model.LikedPost, error) {
	posts := make([]*model.LikedPost, 0)
	err := s.db.WithContext(ctx).
		Table("Posts AS p").
		Select("p.post_id, p.user_id, p.nickname, p.title, p.created_at, COUNT(al.like_id) AS likes").
		Joins("JOIN Likes AS ml ON ml.post_id = p.post_id AND ml.user_id = ?", userID).
		Joins("LEFT JOIN Likes AS al ON al.post_id = p.post_id").
		Group("p.post_id, p.user_id, p.nickname, p.title, p.created_at").
		Order("likes DESC").
		Order("p.created_at DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePostContent 只更新作者本人的那一条
func (s *PostRepoImpl) UpdatePostContent(ctx context.Context, postID, userID uint64, title, content string) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Updates(map[string]any{"title": title, "content": content}).Error
}

func (s *PostRepoImpl) UpdateLikesCount(ctx context.Context, postID uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ?", postID).
		UpdateColumn("likes", count).Error
}

// DeletePost 条件删除，返回受影响行数；评论与点赞由 fk_comments_post、fk_likes_post 级联删除
func (s *PostRepoImpl) DeletePost(ctx context.Context, postID, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Post{})
	return result.RowsAffected, result.Error
}
