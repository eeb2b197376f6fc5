package consts

const (
	// CtxAuthUser gin.Context 中鉴权用户的键
	CtxAuthUser = "auth_user"
	// CtxUserID request context 中的用户 ID
	CtxUserID = "user_id"
)

const (
	DateLayout = "2006-01-02"
)
