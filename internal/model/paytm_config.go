package model

import "time"

// PaytmConfig 商户配置。系统默认使用 is_active=1 的那一条，全表最多一条激活。
type PaytmConfig struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	MID         string    `gorm:"column:mid;uniqueIndex;size:20"`
	MKey        string    `gorm:"column:mkey;size:32"`
	IsActive    bool      `gorm:"column:is_active"`
	GatewayURL  string    `gorm:"column:gateway_url;size:255"`
	StatusURL   string    `gorm:"column:status_url;size:255"`
	CompanyName string    `gorm:"column:company_name;size:254"`
	CreateTime  time.Time `gorm:"column:create_time;autoCreateTime"`
	UpdateTime  time.Time `gorm:"column:update_time;autoUpdateTime"`
}

func (PaytmConfig) TableName() string { return "p_paytm_config" }
