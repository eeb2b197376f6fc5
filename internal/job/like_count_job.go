package job

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/logger"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/service"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// LikeCountJob 将脏集合中的帖子点赞数回写到 Posts.likes
type LikeCountJob struct {
	likeSvc service.LikeService
}

func NewLikeCountJob(likeSvc service.LikeService) *LikeCountJob {
	return &LikeCountJob{
		likeSvc: likeSvc,
	}
}

func (s *LikeCountJob) Run() {
	ctx := logger.WithTraceID(context.Background(), "job-like-"+uuid.NewString())

	processingKey := consts.PostLikeDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.PostLikeDirtyKey, processingKey); err != nil {
		// 没有待同步的帖子
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get like dirty set error", "err", err)
		return
	}

	postIDs, err := util.StrSliceToUInt64Slice(members)
	if err != nil {
		log.ErrorContext(ctx, "convert like dirty set error", "err", err)
		_ = redis.DeleteKey(ctx, processingKey)
		return
	}

	log.InfoContext(ctx, "start syncing post likes count", "count", len(postIDs))

	successCount := 0
	for _, pid := range postIDs {
		if _, err = s.likeSvc.SyncLikesCount(ctx, pid); err != nil {
			log.ErrorContext(ctx, "sync post likes count error", "post_id", pid, "err", err)
			_ = redis.SAdd(ctx, consts.PostLikeDirtyKey, strconv.FormatUint(pid, 10))
			continue
		}
		successCount++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete like processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync post likes count done",
		"total_count", len(postIDs),
		"success_count", successCount)
}
