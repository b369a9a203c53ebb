package dto

import "time"

// TxnCompletedEvent 完成事件：某订单收到成功回调时发出，
// 一条响应最多触发一次，按响应行而非订单去重
type TxnCompletedEvent struct {
	ResponseID uint64    `json:"response_id"`
	OrderID    string    `json:"order_id"`
	MID        string    `json:"mid"`
	TxnID      string    `json:"txn_id"`
	BankTxnID  string    `json:"bank_txn_id"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	CreateTime time.Time `json:"create_time"`
}
