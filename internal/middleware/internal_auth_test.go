package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"paytm-txn-api/internal/config"
)

func adminSign(secret, ts, path string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts + path))
	return hex.EncodeToString(mac.Sum(nil))
}

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/config", InternalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestInternalAuth(t *testing.T) {
	config.C.Security.AdminHMACSecret = "unit-test-secret"
	r := adminTestRouter()
	now := strconv.FormatInt(time.Now().Unix(), 10)

	cases := []struct {
		name     string
		ts       string
		sign     string
		wantCode int
	}{
		{"签名正确", now, adminSign("unit-test-secret", now, "/api/v1/config"), http.StatusOK},
		{"签名错误", now, "deadbeef", http.StatusUnauthorized},
		{"密钥不符", now, adminSign("wrong-secret", now, "/api/v1/config"), http.StatusUnauthorized},
		{"缺少请求头", "", "", http.StatusUnauthorized},
		{"时间戳过期", strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10), "", http.StatusForbidden},
		{"时间戳非法", "not-a-number", "x", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/config", nil)
			if tc.ts != "" {
				req.Header.Set("X-Admin-Timestamp", tc.ts)
			}
			if tc.sign != "" {
				req.Header.Set("X-Admin-Sign", tc.sign)
			} else if tc.ts != "" {
				// 过期分支也要带上签名头才能走到时间窗校验
				req.Header.Set("X-Admin-Sign", adminSign("unit-test-secret", tc.ts, "/api/v1/config"))
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantCode)
			}
		})
	}
}

func TestInternalAuthNoSecretConfigured(t *testing.T) {
	config.C.Security.AdminHMACSecret = ""
	r := adminTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", w.Code)
	}
}
