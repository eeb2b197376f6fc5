package middleware

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"
	"context"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将当前用户注入 Context
func AuthMiddleware(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		raw := c.GetHeader("Authorization")
		if raw == "" {
			raw, _ = c.Cookie("Authorization")
		}
		if raw == "" {
			abort(c, service.ErrLoginRequired)
			return
		}

		tokenString, ok := security.ParseBearer(raw)
		if !ok {
			abort(c, service.ErrLoginRequired)
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			abort(c, service.ErrAuthInvalid)
			return
		}

		revoked, err := redis.GetValue(ctx, signature)
		if err != nil {
			log.ErrorContext(ctx, "check token blacklist error", "err", err)
			abort(c, service.UnExpectedError)
			return
		}
		if revoked != "" {
			abort(c, service.ErrAuthInvalid)
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			abort(c, service.ErrAuthInvalid)
			return
		}

		user, err := userRepo.GetUserById(ctx, claims.UserID)
		if err != nil {
			log.ErrorContext(ctx, "load auth user error", "user_id", claims.UserID, "err", err)
			abort(c, service.ErrAuthInvalid)
			return
		}
		if user == nil {
			abort(c, service.ErrAuthInvalid)
			return
		}

		c.Set(consts.CtxAuthUser, dto.AuthUser{UserID: user.ID, Nickname: user.Nickname})
		c.Request = c.Request.WithContext(context.WithValue(ctx, consts.CtxUserID, user.ID))

		c.Next()
	}
}

// CurrentUser 读取鉴权中间件注入的用户
func CurrentUser(c *gin.Context) (dto.AuthUser, bool) {
	v, ok := c.Get(consts.CtxAuthUser)
	if !ok {
		return dto.AuthUser{}, false
	}
	user, ok := v.(dto.AuthUser)
	return user, ok
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}
