package dto

import "time"

type CommentBaseDTO struct {
	Content *string `json:"content"`
}

type CommentDTO struct {
	ID        uint64    `json:"commentId"`
	UserID    uint64    `json:"UserId"`
	PostID    uint64    `json:"PostId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
