package checksum

import (
	"github.com/shopspring/decimal"
)

// ChecksumField 响应中携带令牌的字段名，验签前须从参数表剔除
const ChecksumField = "CHECKSUMHASH"

// RequestFields 请求侧参与签名的字段。
// 与网关的字段名映射是固定的，见 ParamMap。
type RequestFields struct {
	MID            string
	IndustryTypeID string
	OrderID        string
	Website        string
	Amount         decimal.Decimal
	Channel        string
	CustID         string
	CallbackURL    string

	Mobile *string
	Email  *string

	// 限定支付模式时三者同时出现，网银时追加银行编码
	PaymentModeOnly *string
	AuthMode        *string
	PaymentTypeID   *string
	BankCode        *string
}

// ParamMap 生成网关字段名到取值的映射。金额固定两位小数。
func (f RequestFields) ParamMap() map[string]string {
	p := map[string]string{
		"MID":              f.MID,
		"INDUSTRY_TYPE_ID": f.IndustryTypeID,
		"ORDER_ID":         f.OrderID,
		"WEBSITE":          f.Website,
		"TXN_AMOUNT":       f.Amount.StringFixed(2),
		"CHANNEL_ID":       f.Channel,
		"CUST_ID":          f.CustID,
		"CALLBACK_URL":     f.CallbackURL,
	}
	if f.Mobile != nil {
		p["MOBILE_NO"] = *f.Mobile
	}
	if f.Email != nil {
		p["EMAIL"] = *f.Email
	}
	if f.PaymentModeOnly != nil {
		p["PAYMENT_MODE_ONLY"] = *f.PaymentModeOnly
		if f.AuthMode != nil {
			p["AUTH_MODE"] = *f.AuthMode
		}
		if f.PaymentTypeID != nil {
			p["PAYMENT_TYPE_ID"] = *f.PaymentTypeID
		}
		if f.BankCode != nil {
			p["BANK_CODE"] = *f.BankCode
		}
	}
	return p
}

// Generate 对参数表生成校验和令牌（随机盐）
func Generate(params map[string]string, merchantKey string) (string, error) {
	return GenerateWithSalt(params, merchantKey, "")
}

// GenerateWithSalt 指定盐生成令牌，盐固定时结果完全确定
func GenerateWithSalt(params map[string]string, merchantKey, salt string) (string, error) {
	canonical, err := ParamString(params)
	if err != nil {
		return "", err
	}
	return GenerateToken(canonical, merchantKey, salt)
}

// GenerateForRequest 为交易请求生成校验和，落库前调用，此后不再重算
func GenerateForRequest(f RequestFields, merchantKey string) (string, error) {
	return Generate(f.ParamMap(), merchantKey)
}

// VerifyResponse 验证回调参数的校验和。
// 剔除 CHECKSUMHASH 后用令牌中恢复的盐重算比对，
// 任何解码失败都按验签失败处理，不向调用方抛错。
func VerifyResponse(params map[string]string, merchantKey, supplied string) bool {
	if supplied == "" {
		return false
	}
	salt, err := RecoverSalt(supplied, merchantKey)
	if err != nil {
		return false
	}

	cp := make(map[string]string, len(params))
	for k, v := range params {
		if k == ChecksumField {
			continue
		}
		cp[k] = v
	}
	calculated, err := GenerateWithSalt(cp, merchantKey, salt)
	if err != nil {
		return false
	}
	return calculated == supplied
}
