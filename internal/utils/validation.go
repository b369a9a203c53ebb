package utils

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// 订单号仅允许字母数字及 . - @ _
var orderIDPattern = regexp.MustCompile(`^[\w.\-@]+$`)

// IsValidOrderID 校验订单号格式
func IsValidOrderID(oid string) bool {
	return orderIDPattern.MatchString(oid)
}

// ValidationMsg 字段验证错误转可读提示
func ValidationMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段为必填项"
	case "email":
		return "邮箱格式不正确"
	case "url":
		return "URL格式不正确"
	case "oneof":
		return fmt.Sprintf("取值必须为 %s 之一", fe.Param())
	case "max":
		return fmt.Sprintf("长度不能超过 %s", fe.Param())
	default:
		return fmt.Sprintf("字段校验失败: %s", fe.Tag())
	}
}
