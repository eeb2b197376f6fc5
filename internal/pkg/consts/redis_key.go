package consts

const (
	PostLikeKey      = "post:like:"
	PostLikeDirtyKey = "post:like:dirty"
)
