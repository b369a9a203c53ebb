package logger

import (
	"log"

	"paytm-txn-api/internal/dal"
	"paytm-txn-api/internal/dto"
	"paytm-txn-api/internal/model"
)

// WriteRequestLog 异步写入请求审计日志，失败只记日志不影响主流程
func WriteRequestLog(payload *dto.AuditContextPayload) {
	if payload == nil {
		log.Printf("[AuditLogger] payload 为空，跳过写入")
		return
	}
	entry := model.RequestLog{
		TraceID:      payload.TraceID,
		OrderID:      payload.OrderID,
		MID:          payload.MID,
		RequestBody:  payload.RequestBody,
		ResponseBody: payload.ResponseBody,
		Status:       payload.Status,
		ErrorMsg:     payload.ErrorMsg,
		IP:           payload.IP,
		UserAgent:    payload.UserAgent,
		LatencyMs:    payload.LatencyMs,
	}

	go func(entry model.RequestLog) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[AuditLogger] goroutine panic: trace_id=%s, err=%v", entry.TraceID, r)
			}
		}()
		if err := dal.DB.Create(&entry).Error; err != nil {
			log.Printf("[AuditLogger] 写入失败: trace_id=%s, err=%v", entry.TraceID, err)
		}
	}(entry)
}
