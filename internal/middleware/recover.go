package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"paytm-txn-api/internal/constant"
	"paytm-txn-api/internal/utils"
)

func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("handler panic: path=%s err=%v", c.Request.URL.Path, r)
				c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
				c.Abort()
			}
		}()
		c.Next()
	}
}
