package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"column:comment_id;primaryKey;autoIncrement" json:"commentId"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"UserId"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_id" json:"PostId"`
	Content   string    `gorm:"column:content;type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "Comments"
}
