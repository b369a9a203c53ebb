package dto

import "time"

// AuditContextPayload 请求审计上下文，贯穿 middleware 与 handler
type AuditContextPayload struct {
	TraceID      string
	OrderID      string
	MID          string
	RequestBody  string
	ResponseBody string
	Status       string
	ErrorMsg     string
	IP           string
	UserAgent    string
	LatencyMs    int64
	StartTime    time.Time
	CreatedAt    time.Time
}
