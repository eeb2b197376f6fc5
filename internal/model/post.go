package model

import (
	"time"
)

type Post struct {
	ID         uint64    `gorm:"column:post_id;primaryKey;autoIncrement" json:"postId"`
	UserID     uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"UserId"`
	Nickname   string    `gorm:"column:nickname;type:varchar(50);not null" json:"nickname"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	LikesCount int64     `gorm:"column:likes;not null;default:0" json:"likes"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Post) TableName() string {
	return "Posts"
}
