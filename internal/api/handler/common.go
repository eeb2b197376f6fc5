package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径参数，失败时已写入 412
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := util.ParseID(c.Param(name))
	if err != nil {
		response.Error(c, service.ErrDataFormat)
		return 0, false
	}
	return id, true
}

// authUser 读取鉴权用户，缺失时已写入 401
func authUser(c *gin.Context) (dto.AuthUser, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, service.ErrLoginRequired)
		return dto.AuthUser{}, false
	}
	return user, true
}
