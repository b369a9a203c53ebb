package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnResponse 网关回调响应，每次回调各存一行，不做去重。
// request_id 关联同订单号的交易请求。
type TxnResponse struct {
	ID           uint64          `gorm:"column:id;primaryKey"`
	MID          string          `gorm:"column:mid;size:20"`
	TxnID        string          `gorm:"column:txn_id;size:64"`
	CustID       string          `gorm:"column:cust_id;size:64"`
	OrderID      string          `gorm:"column:order_id;index;size:50"`
	BankTxnID    string          `gorm:"column:bank_txn_id;type:text"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(15,3)"`
	Currency     string          `gorm:"column:currency;size:3"`
	Status       string          `gorm:"column:status;size:20"`
	RespCode     string          `gorm:"column:resp_code;size:10"`
	RespMsg      string          `gorm:"column:resp_msg;size:500"`
	TxnDate      *time.Time      `gorm:"column:txn_date"`
	GatewayName  *string         `gorm:"column:gateway_name;size:15"`
	BankName     *string         `gorm:"column:bank_name;size:500"`
	PaymentMode  *string         `gorm:"column:payment_mode;size:15"`
	Checksum     string          `gorm:"column:checksum;size:108"`
	BinNumber    *string         `gorm:"column:bin_number;size:6"`
	CardLastNums *string         `gorm:"column:card_last_nums;size:4"`
	RawResponse  string          `gorm:"column:raw_response;type:text"`
	RequestID    *uint64         `gorm:"column:request_id"`
	CreateTime   time.Time       `gorm:"column:create_time;autoCreateTime"`
}

func (TxnResponse) TableName() string { return "p_txn_response" }
