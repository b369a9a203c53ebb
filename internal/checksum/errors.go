package checksum

import "errors"

var (
	// ErrReservedContent 字段值包含管道符或 REFUND 保留串，拼接后无法区分边界
	ErrReservedContent = errors.New("checksum: reserved content in field value")
	// ErrMalformedToken 令牌不是合法的 base64 密文（长度、填充或编码非法）
	ErrMalformedToken = errors.New("checksum: malformed token")
	// ErrKeyLength 商户密钥长度必须为 16/24/32 字节
	ErrKeyLength = errors.New("checksum: merchant key must be of length 16, 24 or 32")
)
