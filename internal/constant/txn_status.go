package constant

// 网关返回的交易状态
const (
	TxnSuccess = "TXN_SUCCESS"
	TxnFailure = "TXN_FAILURE"
	TxnPending = "PENDING"
)

// 交易请求生命周期状态
const (
	StateCreated          int8 = 1 // 请求已落库，未收到回调
	StateResponseReceived int8 = 2 // 已收到验签通过的回调
	StateCompleted        int8 = 3 // 回调状态为成功，终态
	StateFailed           int8 = 4 // 回调状态为失败，终态
)

// 渠道
const (
	ChannelWeb = "WEB"
	ChannelWap = "WAP"
)

// 支付方式
const (
	PayTypeCreditCard = "CC"
	PayTypeDebitCard  = "DC"
	PayTypeNetBanking = "NB"
	PayTypeUPI        = "UPI"
	PayTypeWallet     = "PPI"
)

// 认证模式
const (
	AuthModeCard   = "3D"     // 信用卡/借记卡
	AuthModeUsrPwd = "USRPWD" // 钱包/网银
)

// IsTerminalStatus 是否为网关终态
func IsTerminalStatus(status string) bool {
	return status == TxnSuccess || status == TxnFailure
}
