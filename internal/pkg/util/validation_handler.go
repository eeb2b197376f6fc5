package util

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
}

// IsBlank 字段缺失，或去掉首尾空白后为空
func IsBlank(s *string) bool {
	if s == nil {
		return true
	}
	return validate.Var(*s, "notblank") != nil
}

// IsEmpty 字段缺失或长度为 0，空白字符视为有内容
func IsEmpty(s *string) bool {
	if s == nil {
		return true
	}
	return validate.Var(*s, "min=1") != nil
}
