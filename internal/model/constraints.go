package model

// ForeignKey 子表上的外键约束，迁移后由 database.Migrate 显式创建
type ForeignKey struct {
	Name      string
	Table     string
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  string
	OnUpdate  string
}

const Cascade = "CASCADE"

// ForeignKeys 全部外键，删除用户或帖子时其评论与点赞随之删除，修改昵称时点赞冗余昵称随之更新
func ForeignKeys() []ForeignKey {
	return []ForeignKey{
		{Name: "fk_posts_user", Table: "Posts", Column: "user_id", RefTable: "Users", RefColumn: "user_id", OnDelete: Cascade},
		{Name: "fk_comments_user", Table: "Comments", Column: "user_id", RefTable: "Users", RefColumn: "user_id", OnDelete: Cascade},
		{Name: "fk_comments_post", Table: "Comments", Column: "post_id", RefTable: "Posts", RefColumn: "post_id", OnDelete: Cascade},
		{Name: "fk_likes_user", Table: "Likes", Column: "user_id", RefTable: "Users", RefColumn: "user_id", OnDelete: Cascade},
		{Name: "fk_likes_post", Table: "Likes", Column: "post_id", RefTable: "Posts", RefColumn: "post_id", OnDelete: Cascade},
		{Name: "fk_likes_nickname", Table: "Likes", Column: "nickname", RefTable: "Users", RefColumn: "nickname", OnDelete: Cascade, OnUpdate: Cascade},
	}
}
