package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const likeCountExpiration = 7 * 24 * time.Hour

type LikeService interface {
	ToggleLike(ctx context.Context, user dto.AuthUser, postID uint64) (bool, error)
	GetPostLikeCount(ctx context.Context, postID uint64) (int64, error)
	SyncLikesCount(ctx context.Context, postID uint64) (int64, error)
}

type likeServiceImpl struct {
	likeRepo repository.LikeRepo
	postRepo repository.PostRepo
}

func NewLikeService(likeRepo repository.LikeRepo, postRepo repository.PostRepo) LikeService {
	return &likeServiceImpl{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// ToggleLike 已点赞则取消，否则点赞；返回操作后是否为点赞状态
func (s *likeServiceImpl) ToggleLike(ctx context.Context, user dto.AuthUser, postID uint64) (bool, error) {
	liked, err := s.likeRepo.ToggleLike(ctx, &model.Like{
		UserID:   user.UserID,
		PostID:   postID,
		Nickname: user.Nickname,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrLikePostNotFound
		}
		if isDuplicateError(err) {
			log.WarnContext(ctx, "concurrent like insert rejected", "post_id", postID, "user_id", user.UserID)
			return false, ErrLikeFailed
		}
		log.ErrorContext(ctx, "toggle like error", "post_id", postID, "user_id", user.UserID, "err", err)
		return false, ErrLikeFailed
	}

	MarkLikeDirty(ctx, postID)
	return liked, nil
}

// GetPostLikeCount 优先读缓存，未命中时回源数据库
func (s *likeServiceImpl) GetPostLikeCount(ctx context.Context, postID uint64) (int64, error) {
	key := consts.PostLikeKey + strconv.FormatUint(postID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, redisv9.Nil) {
		log.WarnContext(ctx, "read like count cache error", "key", key, "err", err)
	}

	count, err = s.likeRepo.GetLikeCountByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if err = redis.SetWithExpiration(ctx, key, count, likeCountExpiration); err != nil {
		log.WarnContext(ctx, "write like count cache error", "key", key, "err", err)
	}
	return count, nil
}

// SyncLikesCount 以 Likes 表为准回写 Posts.likes 并刷新缓存
func (s *likeServiceImpl) SyncLikesCount(ctx context.Context, postID uint64) (int64, error) {
	count, err := s.likeRepo.GetLikeCountByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if err = s.postRepo.UpdateLikesCount(ctx, postID, count); err != nil {
		return 0, err
	}
	key := consts.PostLikeKey + strconv.FormatUint(postID, 10)
	if err = redis.SetWithExpiration(ctx, key, count, likeCountExpiration); err != nil {
		log.WarnContext(ctx, "write like count cache error", "key", key, "err", err)
	}
	return count, nil
}

// MarkLikeDirty 失效点赞数缓存并标记帖子待同步
func MarkLikeDirty(ctx context.Context, postID uint64) {
	id := strconv.FormatUint(postID, 10)
	if err := redis.DeleteKey(ctx, consts.PostLikeKey+id); err != nil {
		log.WarnContext(ctx, "invalidate like count cache error", "post_id", postID, "err", err)
	}
	if err := redis.SAdd(ctx, consts.PostLikeDirtyKey, id); err != nil {
		log.WarnContext(ctx, "mark like dirty error", "post_id", postID, "err", err)
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
