package model

import (
	"time"
)

// User 只由账号服务写入，这里用于鉴权时解析昵称以及外键级联
type User struct {
	ID        uint64 `gorm:"column:user_id;primaryKey;autoIncrement" json:"userId"`
	Nickname  string `gorm:"column:nickname;type:varchar(50);not null;uniqueIndex:idx_nickname" json:"nickname"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "Users"
}
