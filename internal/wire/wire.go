package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/config"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/job"
	"Inkwell/internal/pkg/cron"
	"Inkwell/internal/pkg/kafka"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
	// KafkaManager 未启用 kafka 时为 nil
	KafkaManager *kafka.ConsumerManager
}

// Repositories 仓储集合，测试时可替换为内存实现
type Repositories struct {
	User    repository.UserRepo
	Post    repository.PostRepo
	Comment repository.CommentRepo
	Like    repository.LikeRepo
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		User:    repository.NewUserRepo(db),
		Post:    repository.NewPostRepository(db),
		Comment: repository.NewCommentRepo(db),
		Like:    repository.NewLikeRepo(db),
	}
}

// BuildRouter 组装 service 与 handler
func BuildRouter(repos Repositories, cfg *config.Config) (*gin.Engine, service.LikeService) {
	likeService := service.NewLikeService(repos.Like, repos.Post)
	postService := service.NewPostService(repos.Post, likeService)
	commentService := service.NewCommentService(repos.Comment, repos.Post)

	handlers := &api.HandlersGroup{
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		LikeHandler:    handler.NewLikeHandler(likeService),
		Auth:           middleware.AuthMiddleware(repos.User),
	}

	return api.SetupRouter(handlers, cfg), likeService
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	router, likeService := BuildRouter(NewRepositories(db), cfg)

	cronMgr := cron.NewCronManager(cfg.Cron, job.NewLikeCountJob(likeService))

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
