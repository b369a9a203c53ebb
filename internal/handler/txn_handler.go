package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"paytm-txn-api/internal/constant"
	"paytm-txn-api/internal/dto"
	"paytm-txn-api/internal/middleware"
	"paytm-txn-api/internal/mq"
	"paytm-txn-api/internal/service"
	"paytm-txn-api/internal/utils"
)

// TxnHandler 交易处理器
type TxnHandler struct {
	svc       *service.TxnService
	statusSvc *service.StatusService
}

func NewTxnHandler() *TxnHandler {
	pub := mq.NewPublisher()
	return &TxnHandler{
		svc:       service.NewTxnService(pub),
		statusSvc: service.NewStatusService(),
	}
}

// Create 创建交易请求，返回网关字段表（含 CHECKSUMHASH）
func (h *TxnHandler) Create(c *gin.Context) {
	var req dto.CreateTxnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			errFields := make([]map[string]string, 0)
			for _, fe := range ve {
				errFields = append(errFields, map[string]string{
					"field": fe.Field(),
					"error": utils.ValidationMsg(fe),
				})
			}
			c.JSON(http.StatusOK, utils.ErrorWithData(constant.CodeInvalidParams, errFields))
			return
		}
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}

	audit := middleware.AuditCtx(c)
	audit.CreatedAt = time.Now()

	resp, err := h.svc.Create(req)
	if err != nil {
		h.fail(c, audit, err)
		return
	}
	audit.OrderID = resp.OrderID
	audit.MID = resp.Params["MID"]
	audit.Status = "ok"
	resp.TraceID = audit.TraceID
	c.JSON(http.StatusOK, utils.Success(resp))
}

// Get 查询交易请求及完成标记
func (h *TxnHandler) Get(c *gin.Context) {
	orderID := c.Param("order_id")
	audit := middleware.AuditCtx(c)
	audit.OrderID = orderID

	resp, err := h.svc.Get(orderID)
	if err != nil {
		h.fail(c, audit, err)
		return
	}
	audit.Status = "ok"
	c.JSON(http.StatusOK, utils.Success(resp))
}

// Callback 网关回调入口，form 或 JSON 均受理
func (h *TxnHandler) Callback(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	params, err := parseCallbackBody(c.ContentType(), raw)
	if err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeCallbackMalformed))
		return
	}

	audit := middleware.AuditCtx(c)
	audit.OrderID = params.Get("ORDERID")
	audit.MID = params.Get("MID")

	row, err := h.svc.HandleCallback(params, string(raw))
	if err != nil {
		h.fail(c, audit, err)
		return
	}
	audit.Status = "ok"
	log.Printf("[TraceId]: %v, 回调已受理: orderID=%s status=%s", audit.TraceID, row.OrderID, row.Status)
	c.JSON(http.StatusOK, utils.Success(gin.H{
		"order_id":    row.OrderID,
		"status":      row.Status,
		"response_id": row.ID,
	}))
}

// Confirm 对账确认：拿最近一条本地应答向网关状态接口复核
func (h *TxnHandler) Confirm(c *gin.Context) {
	orderID := c.Param("order_id")
	audit := middleware.AuditCtx(c)
	audit.OrderID = orderID

	latest, err := h.svc.LatestResponse(orderID)
	if err != nil {
		h.fail(c, audit, err)
		return
	}
	if latest == nil {
		h.fail(c, audit, constant.NewError(constant.CodeOrderNotFound))
		return
	}

	confirmed, err := h.statusSvc.Confirm(orderID, latest.Status, latest.TxnID)
	if err != nil {
		h.fail(c, audit, err)
		return
	}
	audit.Status = "ok"
	c.JSON(http.StatusOK, utils.Success(dto.ConfirmResp{
		OrderID:   orderID,
		Confirmed: confirmed,
		TraceID:   audit.TraceID,
	}))
}

func (h *TxnHandler) fail(c *gin.Context, audit *dto.AuditContextPayload, err error) {
	audit.Status = "failed"
	audit.ErrorMsg = err.Error()
	log.Printf("[TraceId]: %v, 响应信息: %v", audit.TraceID, err)

	var ce constant.Error
	if errors.As(err, &ce) {
		c.JSON(http.StatusOK, utils.ErrorWithTrace(ce.Code(), audit.TraceID))
		return
	}
	c.JSON(http.StatusOK, utils.ErrorWithTrace(constant.CodeInternalError, audit.TraceID))
}

// parseCallbackBody 网关以 form 提交回调，联调工具常用 JSON，两种都解析
func parseCallbackBody(contentType string, raw []byte) (dto.CallbackParams, error) {
	params := dto.CallbackParams{}
	if strings.Contains(contentType, "json") {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, err
		}
		return params, nil
	}
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params, nil
}
