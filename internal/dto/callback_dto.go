package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnDateLayout 网关 TXNDATE 字段格式
const TxnDateLayout = "2006-01-02 15:04:05"

// CallbackParams 网关回调参数表，键为网关侧字段名。
// 验签必须基于实际收到的全部字段，所以以 map 形式承载。
type CallbackParams map[string]string

func (p CallbackParams) Get(key string) string { return p[key] }

func (p CallbackParams) optional(key string) *string {
	if v, ok := p[key]; ok && v != "" {
		return &v
	}
	return nil
}

// CallbackRecord 回调参数的结构化视图，供落库使用
type CallbackRecord struct {
	MID          string
	TxnID        string
	CustID       string
	OrderID      string
	BankTxnID    string
	Amount       decimal.Decimal
	Currency     string
	Status       string
	RespCode     string
	RespMsg      string
	TxnDate      *time.Time
	GatewayName  *string
	BankName     *string
	PaymentMode  *string
	Checksum     string
	BinNumber    *string
	CardLastNums *string
}

// ToRecord 解析回调参数为结构化记录。金额非法时返回错误。
func (p CallbackParams) ToRecord() (CallbackRecord, error) {
	amount, err := decimal.NewFromString(p.Get("TXNAMOUNT"))
	if err != nil {
		return CallbackRecord{}, err
	}

	rec := CallbackRecord{
		MID:          p.Get("MID"),
		TxnID:        p.Get("TXNID"),
		CustID:       p.Get("CUST_ID"),
		OrderID:      p.Get("ORDERID"),
		BankTxnID:    p.Get("BANKTXNID"),
		Amount:       amount,
		Currency:     p.Get("CURRENCY"),
		Status:       p.Get("STATUS"),
		RespCode:     p.Get("RESPCODE"),
		RespMsg:      p.Get("RESPMSG"),
		GatewayName:  p.optional("GATEWAYNAME"),
		BankName:     p.optional("BANKNAME"),
		PaymentMode:  p.optional("PAYMENTMODE"),
		Checksum:     p.Get("CHECKSUMHASH"),
		BinNumber:    p.optional("BIN_NUMBER"),
		CardLastNums: p.optional("CARD_LAST_NUMS"),
	}
	if v := p.Get("TXNDATE"); v != "" {
		if t, err := time.ParseInLocation(TxnDateLayout, v, time.Local); err == nil {
			rec.TxnDate = &t
		}
	}
	return rec, nil
}
