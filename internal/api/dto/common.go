package dto

// MessageResponse 成功响应 {message}
type MessageResponse struct {
	Message any `json:"message"`
}

// ErrorResponse 失败响应 {errorMessage}
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// AuthUser 鉴权中间件解析出的当前用户
type AuthUser struct {
	UserID   uint64
	Nickname string
}
