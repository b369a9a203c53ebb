package model

import "time"

// RequestLog 请求审计日志
type RequestLog struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	TraceID      string    `gorm:"column:trace_id;size:36"`
	OrderID      string    `gorm:"column:order_id;size:50"`
	MID          string    `gorm:"column:mid;size:20"`
	RequestBody  string    `gorm:"column:request_body;type:text"`
	ResponseBody string    `gorm:"column:response_body;type:text"`
	Status       string    `gorm:"column:status;size:16"`
	ErrorMsg     string    `gorm:"column:error_msg;size:500"`
	IP           string    `gorm:"column:ip;size:45"`
	UserAgent    string    `gorm:"column:user_agent;size:255"`
	LatencyMs    int64     `gorm:"column:latency_ms"`
	CreateTime   time.Time `gorm:"column:create_time;autoCreateTime"`
}

func (RequestLog) TableName() string { return "p_request_log" }
