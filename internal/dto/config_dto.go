package dto

import "time"

// CreateConfigReq 商户配置新增入参（管理接口）
type CreateConfigReq struct {
	MID         string `json:"mid" binding:"required,max=20"`
	MKey        string `json:"mkey" binding:"required,max=32"`
	IsActive    bool   `json:"is_active"`
	GatewayURL  string `json:"gateway_url" binding:"omitempty,url,max=255"`
	StatusURL   string `json:"status_url" binding:"omitempty,url,max=255"`
	CompanyName string `json:"company_name" binding:"omitempty,max=254"`
}

// ConfigResp 商户配置出参，密钥不回显
type ConfigResp struct {
	ID          uint64    `json:"id"`
	MID         string    `json:"mid"`
	IsActive    bool      `json:"is_active"`
	CompanyName string    `json:"company_name"`
	CreateTime  time.Time `json:"create_time"`
}
