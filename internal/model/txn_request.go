package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnRequest 交易请求，创建后不可变更。checksum 在首次落库前计算，永不重算。
type TxnRequest struct {
	ID              uint64          `gorm:"column:id;primaryKey"`
	MID             string          `gorm:"column:mid;size:20"`
	IndustryTypeID  string          `gorm:"column:industry_type_id;size:20"`
	OrderID         string          `gorm:"column:order_id;uniqueIndex;size:50"`
	Website         string          `gorm:"column:website;size:30"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(15,3)"`
	Channel         string          `gorm:"column:channel;size:3"`
	CustID          string          `gorm:"column:cust_id;size:64"`
	Mobile          *string         `gorm:"column:mobile;size:15"`
	Email           *string         `gorm:"column:email;size:254"`
	CallbackURL     string          `gorm:"column:callback_url;size:255"`
	PaymentModeOnly *string         `gorm:"column:payment_mode_only;size:3"`
	AuthMode        *string         `gorm:"column:auth_mode;size:10"`
	PaymentTypeID   *string         `gorm:"column:payment_type_id;size:15"`
	BankCode        *string         `gorm:"column:bank_code;size:5"`
	Checksum        string          `gorm:"column:checksum;size:108"`
	Status          int8            `gorm:"column:status"`
	CreateTime      time.Time       `gorm:"column:create_time;autoCreateTime"`
}

func (TxnRequest) TableName() string { return "p_txn_request" }
