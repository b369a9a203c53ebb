package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paytm-txn-api/internal/dto"
	"paytm-txn-api/internal/logger"
	"paytm-txn-api/internal/utils"
)

// AuditCtxKey handler 从 context 取审计上下文用的键
const AuditCtxKey = "audit_ctx"

// TraceAuditMiddleware 为每个请求生成 trace_id，请求结束后异步落审计日志
func TraceAuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := &dto.AuditContextPayload{
			TraceID:     traceID,
			RequestBody: string(bodyBytes),
			IP:          utils.GetRealClientIP(c),
			UserAgent:   c.GetHeader("User-Agent"),
			StartTime:   time.Now(),
		}
		c.Set(AuditCtxKey, ctx)
		c.Writer.Header().Set("X-Trace-ID", traceID)

		c.Next()

		ctx.LatencyMs = time.Since(ctx.StartTime).Milliseconds()
		logger.WriteRequestLog(ctx)
	}
}

// AuditCtx 取当前请求的审计上下文，middleware 未挂载时返回空载体
func AuditCtx(c *gin.Context) *dto.AuditContextPayload {
	if v, ok := c.Get(AuditCtxKey); ok {
		if ctx, ok := v.(*dto.AuditContextPayload); ok {
			return ctx
		}
	}
	return &dto.AuditContextPayload{}
}
