package kafka

import (
	"Inkwell/internal/pkg/logger"
	"Inkwell/internal/service"
	"context"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
)

// LikesHandler 消费 Likes 表 binlog，保证库外写入同样会失效点赞数缓存
type LikesHandler struct{}

func NewLikesHandler() *LikesHandler {
	return &LikesHandler{}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("likes consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("likes consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("likes consume claim", "topic", claim.Topic(), "partition", claim.Partition())
	return pullMessageBatch(session, claim, s.logic)
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	ctx = logger.WithTraceID(ctx, fmt.Sprintf("kafka-likes-%d-%d", msg.Partition, msg.Offset))

	canalMsg, err := ToCanalMessage(msg, "Likes")
	if err != nil {
		return err
	}

	postIDs := make(map[uint64]struct{})
	switch canalMsg.Type {
	case INSERT, DELETE:
		for _, row := range canalMsg.Data {
			postIDs[StrToUint64(row["post_id"])] = struct{}{}
		}
	case UPDATE:
		for i, row := range canalMsg.Data {
			postIDs[StrToUint64(row["post_id"])] = struct{}{}
			if i < len(canalMsg.Old) {
				if old, ok := canalMsg.Old[i]["post_id"]; ok {
					postIDs[StrToUint64(old)] = struct{}{}
				}
			}
		}
	default:
		return nil
	}

	for postID := range postIDs {
		if postID == 0 {
			continue
		}
		service.MarkLikeDirty(ctx, postID)
	}
	log.InfoContext(ctx, "likes binlog processed", "type", canalMsg.Type, "posts", len(postIDs))
	return nil
}
