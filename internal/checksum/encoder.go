package checksum

import (
	"fmt"
	"sort"
	"strings"
)

// ParamString 生成规范串：键名升序，取值按 | 拼接。
// 字面值 "null" 归一为空串。任一字段值包含 | 或 REFUND 时整体拒绝，
// 逐字段检查，不允许带歧义的值混入签名。
func ParamString(params map[string]string) (string, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		v := params[k]
		if strings.Contains(v, "|") || strings.Contains(v, "REFUND") {
			return "", fmt.Errorf("%w: field %s", ErrReservedContent, k)
		}
		if v == "null" {
			v = ""
		}
		values = append(values, v)
	}
	return strings.Join(values, "|"), nil
}
