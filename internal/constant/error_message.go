package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:            {"操作成功", "Success"},
	CodeSystemError:        {"系统错误", "System error"},
	CodeDatabaseError:      {"数据库错误", "Database error"},
	CodeRedisError:         {"缓存服务错误", "Redis error"},
	CodeInternalError:      {"内部服务错误", "Internal error"},
	CodeServiceUnavailable: {"服务暂时不可用", "Service unavailable"},
	CodeTimeout:            {"请求处理超时", "Timeout"},

	// 参数错误
	CodeInvalidParams:     {"参数格式错误", "Invalid params"},
	CodeMissingParams:     {"缺少必要参数", "Missing params"},
	CodeParamsFormatError: {"参数格式错误", "Params format error"},
	CodeParamsTypeError:   {"参数类型错误", "Params type error"},
	CodeDuplicateRequest:  {"重复请求", "Duplicate request"},

	// 认证授权错误
	CodeUnauthorized:   {"未授权访问", "Unauthorized"},
	CodeSignatureError: {"签名验证失败", "Signature error"},
	CodeAccessDenied:   {"访问权限不足", "Access denied"},

	// 商户配置相关错误
	CodeConfigNotFound:       {"商户配置不存在", "Merchant configuration not found"},
	CodeConfigInactive:       {"商户配置未激活", "Merchant configuration inactive"},
	CodeConfigKeyInvalid:     {"商户密钥长度无效", "Merchant key must be of length 16, 24 or 32"},
	CodeConfigAlreadyActive:  {"已存在激活的商户配置", "Another configuration is active"},
	CodeConfigMultipleActive: {"存在多个激活配置", "Multiple configurations are active"},

	// 交易请求相关错误
	CodeOrderNotFound:      {"交易请求不存在", "Transaction request not found"},
	CodeOrderAlreadyExist:  {"订单号已存在", "Order already exists"},
	CodeOrderAmountInvalid: {"订单金额无效", "Order amount invalid"},
	CodeOrderIdInvalid:     {"订单号格式无效", "Order id invalid"},

	// 校验和相关错误
	CodeChecksumMismatch:  {"校验和验证失败", "Checksum verification failed"},
	CodeChecksumMalformed: {"校验和令牌格式错误", "Malformed checksum token"},
	CodeReservedContent:   {"字段值包含保留内容", "Reserved content in field value"},
	CodeCompanionMissing:  {"限定支付模式字段不完整", "Companion fields missing"},

	// 网关状态相关错误
	CodeGatewayError:      {"网关状态查询失败", "Gateway status query failed"},
	CodeStatusNotMatch:    {"网关状态与本地响应不一致", "Gateway status mismatch"},
	CodeResponseUnlinked:  {"响应未关联任何交易请求", "Response references no known request"},
	CodeResponseMidGone:   {"响应商户号无对应配置", "No configuration for response merchant id"},
	CodeCallbackMalformed: {"回调数据格式错误", "Malformed callback payload"},
}
