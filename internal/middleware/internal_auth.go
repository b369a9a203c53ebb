package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"paytm-txn-api/internal/config"
	"paytm-txn-api/internal/constant"
	"paytm-txn-api/internal/utils"
)

// 管理接口签名时间窗
const adminSignWindow = 5 * time.Minute

// InternalAuth 管理接口鉴权：HMAC-SHA256(timestamp + path, secret)。
// 请求头携带 X-Admin-Timestamp 与 X-Admin-Sign。
func InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.C.Security.AdminHMACSecret
		if secret == "" {
			c.JSON(http.StatusServiceUnavailable, utils.Error(constant.CodeServiceUnavailable))
			c.Abort()
			return
		}

		tsStr := c.GetHeader("X-Admin-Timestamp")
		sign := c.GetHeader("X-Admin-Sign")
		if tsStr == "" || sign == "" {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
			c.Abort()
			return
		}

		ts, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
			c.Abort()
			return
		}
		now := time.Now().Unix()
		if ts < now-int64(adminSignWindow.Seconds()) || ts > now+int64(adminSignWindow.Seconds()) {
			c.JSON(http.StatusForbidden, utils.Error(constant.CodeTimeout))
			c.Abort()
			return
		}

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(tsStr + c.Request.URL.Path))
		expected := hex.EncodeToString(mac.Sum(nil))
		if !hmac.Equal([]byte(expected), []byte(sign)) {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeSignatureError))
			c.Abort()
			return
		}

		c.Next()
	}
}
