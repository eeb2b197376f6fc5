package util

import (
	"Inkwell/internal/pkg/consts"
	"bytes"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID 解析路径中的正整数 ID
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// DecodeBody 解析 JSON 请求体到 dst；请求体为空或为不含任何字段的对象时 empty 为 true
func DecodeBody(c *gin.Context, dst any) (empty bool, err error) {
	raw, err := c.GetRawData()
	if err != nil {
		return false, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true, nil
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return true, nil
	}

	return false, json.Unmarshal(raw, dst)
}

// StrSliceToUInt64Slice 将 Redis 集合成员转换为 ID 列表
func StrSliceToUInt64Slice(values []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DatePrefix 返回 YYYY-MM-DD
func DatePrefix(t time.Time) string {
	return t.Format(consts.DateLayout)
}
