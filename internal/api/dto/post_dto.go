package dto

import "time"

// PostBaseDTO 帖子 - 新增或修改，字段缺失与空串需要区分
type PostBaseDTO struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// PostDTO 帖子详情
type PostDTO struct {
	ID         uint64    `json:"postId"`
	UserID     uint64    `json:"UserId"`
	Nickname   string    `json:"nickname"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	LikesCount int64     `json:"likes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PostSummaryDTO 帖子列表项，date/update 为 YYYY-MM-DD
type PostSummaryDTO struct {
	ID         uint64 `json:"postId"`
	UserID     uint64 `json:"UserId"`
	Nickname   string `json:"nickname"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	LikesCount int64  `json:"likes"`
	Date       string `json:"date"`
	Update     string `json:"update"`
}

// LikedPostDTO 点赞过的帖子
type LikedPostDTO struct {
	PostID   uint64 `json:"postId"`
	UserID   uint64 `json:"UserId"`
	Nickname string `json:"nickname"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Likes    int64  `json:"likes"`
}
