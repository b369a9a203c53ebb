package dto

import "time"

// CreateTxnReq 创建交易请求入参。
// order_id 为空时由系统生成；金额为字符串避免浮点误差。
type CreateTxnReq struct {
	OrderID        string `json:"order_id" binding:"omitempty,max=50"`
	IndustryTypeID string `json:"industry_type_id" binding:"required,max=20"`
	Website        string `json:"website" binding:"required,max=30"`
	Amount         string `json:"amount" binding:"required"`
	Channel        string `json:"channel" binding:"required,oneof=WEB WAP"`
	CustID         string `json:"cust_id" binding:"required,max=64"`

	Mobile *string `json:"mobile" binding:"omitempty,max=15"`
	Email  *string `json:"email" binding:"omitempty,email,max=254"`

	CallbackURL string `json:"callback_url" binding:"required,url,max=255"`

	PaymentModeOnly *string `json:"payment_mode_only" binding:"omitempty,max=3"`
	AuthMode        *string `json:"auth_mode" binding:"omitempty,oneof=3D USRPWD"`
	PaymentTypeID   *string `json:"payment_type_id" binding:"omitempty,oneof=CC DC NB UPI PPI"`
	BankCode        *string `json:"bank_code" binding:"omitempty,max=5"`
}

// CreateTxnResp 创建结果：网关字段表（含 CHECKSUMHASH）与跳转地址，
// 前端用它向网关提交
type CreateTxnResp struct {
	OrderID    string            `json:"order_id"`
	Params     map[string]string `json:"params"`
	GatewayURL string            `json:"gateway_url"`
	TraceID    string            `json:"trace_id,omitempty"`
}

// QueryTxnResp 交易请求查询结果
type QueryTxnResp struct {
	OrderID     string    `json:"order_id"`
	MID         string    `json:"mid"`
	Amount      string    `json:"amount"`
	Channel     string    `json:"channel"`
	Status      int8      `json:"status"`
	IsCompleted bool      `json:"is_completed"`
	CreateTime  time.Time `json:"create_time"`
}
