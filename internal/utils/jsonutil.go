package utils

import (
	"encoding/json"
	"strings"
)

// StringOrNumber 支持 JSON 中字段为 string 或 number 的场景
// 常用于网关响应中 code、status 等字段兼容解析。
type StringOrNumber string

// UnmarshalJSON 支持自动兼容 string 或 number
func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		*s = ""
		return nil
	}

	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = StringOrNumber(str)
		return nil
	}

	*s = StringOrNumber(strings.TrimSpace(string(b)))
	return nil
}

// MapToJSON 任意值转 json 字符串
func MapToJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
