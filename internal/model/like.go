package model

import (
	"time"
)

// Like 同一用户对同一帖子至多一条，由唯一索引 idx_user_post 保证
type Like struct {
	ID        uint64    `gorm:"column:like_id;primaryKey;autoIncrement" json:"likeId"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_user_post" json:"UserId"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:idx_user_post;index:idx_post_id" json:"PostId"`
	Nickname  string    `gorm:"column:nickname;type:varchar(50);not null" json:"Nickname"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Like) TableName() string {
	return "Likes"
}

// LikedPost 用户点赞过的帖子及其实时点赞数
type LikedPost struct {
	PostID    uint64    `gorm:"column:post_id"`
	UserID    uint64    `gorm:"column:user_id"`
	Nickname  string    `gorm:"column:nickname"`
	Title     string    `gorm:"column:title"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Likes     int64     `gorm:"column:likes"`
}
