package constant

// 业务级错误码 (2xxx)

// 商户配置相关错误码
const (
	CodeConfigNotFound       = 2000 // 商户配置不存在，请检查商户编号是否正确
	CodeConfigInactive       = 2001 // 商户配置未激活，无法参与签名验签
	CodeConfigKeyInvalid     = 2002 // 商户密钥长度无效，必须为16/24/32字节
	CodeConfigAlreadyActive  = 2003 // 已存在激活的商户配置，请先停用当前配置
	CodeConfigMultipleActive = 2004 // 存在多个激活配置，服务端配置异常
)

// 交易请求相关错误码
const (
	CodeOrderNotFound      = 2100 // 交易请求不存在，请检查订单号是否正确
	CodeOrderAlreadyExist  = 2101 // 订单号已存在，请勿重复创建交易请求
	CodeOrderAmountInvalid = 2102 // 订单金额无效，请检查金额格式和范围
	CodeOrderIdInvalid     = 2103 // 订单号格式无效，仅允许字母数字及 . - @ _
)

// 校验和相关错误码
const (
	CodeChecksumMismatch  = 2200 // 校验和验证失败，响应数据可能被篡改
	CodeChecksumMalformed = 2201 // 校验和令牌格式错误，无法解码
	CodeReservedContent   = 2202 // 字段值包含保留内容，无法参与签名
	CodeCompanionMissing  = 2203 // 限定支付模式字段不完整，需同时提供关联字段
)

// 网关状态相关错误码
const (
	CodeGatewayError      = 2300 // 网关状态查询失败，请稍后重试
	CodeStatusNotMatch    = 2301 // 网关状态与本地响应不一致
	CodeResponseUnlinked  = 2302 // 响应未关联任何交易请求
	CodeResponseMidGone   = 2303 // 响应商户号无对应配置，拒绝受理
	CodeCallbackMalformed = 2304 // 回调数据格式错误，无法解析
)
