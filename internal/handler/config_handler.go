package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"paytm-txn-api/internal/checksum"
	"paytm-txn-api/internal/constant"
	"paytm-txn-api/internal/dao"
	"paytm-txn-api/internal/dto"
	"paytm-txn-api/internal/middleware"
	"paytm-txn-api/internal/model"
	"paytm-txn-api/internal/utils"
)

// ConfigHandler 商户配置管理处理器，仅暴露核心流程需要的窄接口
type ConfigHandler struct {
	dao *dao.ConfigDao
}

func NewConfigHandler() *ConfigHandler {
	return &ConfigHandler{dao: dao.NewConfigDao()}
}

// Create 新增商户配置
func (h *ConfigHandler) Create(c *gin.Context) {
	var req dto.CreateConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}

	audit := middleware.AuditCtx(c)
	audit.MID = req.MID

	cfg := model.PaytmConfig{
		MID:         req.MID,
		MKey:        req.MKey,
		IsActive:    req.IsActive,
		GatewayURL:  req.GatewayURL,
		StatusURL:   req.StatusURL,
		CompanyName: req.CompanyName,
	}
	if err := h.dao.Create(&cfg); err != nil {
		audit.Status = "failed"
		audit.ErrorMsg = err.Error()
		log.Printf("[TraceId]: %v, 配置创建失败: %v", audit.TraceID, err)
		c.JSON(http.StatusOK, utils.ErrorWithTrace(configErrCode(err), audit.TraceID))
		return
	}
	audit.Status = "ok"
	c.JSON(http.StatusOK, utils.Success(dto.ConfigResp{
		ID:          cfg.ID,
		MID:         cfg.MID,
		IsActive:    cfg.IsActive,
		CompanyName: cfg.CompanyName,
		CreateTime:  cfg.CreateTime,
	}))
}

// Activate 激活指定商户配置，全表最多一条激活
func (h *ConfigHandler) Activate(c *gin.Context) {
	mid := c.Param("mid")
	audit := middleware.AuditCtx(c)
	audit.MID = mid

	if err := h.dao.Activate(mid); err != nil {
		audit.Status = "failed"
		audit.ErrorMsg = err.Error()
		log.Printf("[TraceId]: %v, 配置激活失败: mid=%s err=%v", audit.TraceID, mid, err)
		c.JSON(http.StatusOK, utils.ErrorWithTrace(configErrCode(err), audit.TraceID))
		return
	}
	audit.Status = "ok"
	c.JSON(http.StatusOK, utils.Success(gin.H{"mid": mid, "is_active": true}))
}

func configErrCode(err error) int {
	switch {
	case errors.Is(err, dao.ErrAnotherConfigActive):
		return constant.CodeConfigAlreadyActive
	case errors.Is(err, checksum.ErrKeyLength):
		return constant.CodeConfigKeyInvalid
	case errors.Is(err, gorm.ErrRecordNotFound):
		return constant.CodeConfigNotFound
	default:
		return constant.CodeDatabaseError
	}
}
