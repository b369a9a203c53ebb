package dto

import "paytm-txn-api/internal/utils"

// StatusQueryReq 网关交易状态查询出参体
type StatusQueryReq struct {
	OrderID  string `json:"ORDERID"`
	MID      string `json:"MID"`
	Checksum string `json:"CHECKSUMHASH"`
}

// StatusQueryResp 网关交易状态查询回包。
// code 字段上游可能给 string 或 number，兼容解析。
type StatusQueryResp struct {
	Status   string               `json:"STATUS"`
	TxnID    string               `json:"TXNID"`
	OrderID  string               `json:"ORDERID"`
	RespCode utils.StringOrNumber `json:"RESPCODE"`
	RespMsg  string               `json:"RESPMSG"`
}

// ConfirmResp 对账确认结果
type ConfirmResp struct {
	OrderID   string `json:"order_id"`
	Confirmed bool   `json:"confirmed"`
	TraceID   string `json:"trace_id,omitempty"`
}
