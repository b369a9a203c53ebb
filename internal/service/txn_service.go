package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"paytm-txn-api/internal/checksum"
	"paytm-txn-api/internal/config"
	"paytm-txn-api/internal/constant"
	"paytm-txn-api/internal/dao"
	"paytm-txn-api/internal/dto"
	"paytm-txn-api/internal/event"
	"paytm-txn-api/internal/idgen"
	"paytm-txn-api/internal/logger"
	"paytm-txn-api/internal/model"
	"paytm-txn-api/internal/notify"
	"paytm-txn-api/internal/utils"
)

// TxnService 交易生命周期：下单签名、回调验签入库、完成判定
type TxnService struct {
	cfgStore ConfigStore
	txnStore TxnStore
	guard    OrderGuard
	pub      event.Publisher
}

func NewTxnService(pub event.Publisher) *TxnService {
	return &TxnService{
		cfgStore: dao.NewConfigDao(),
		txnStore: dao.NewTxnDao(),
		guard:    redisOrderGuard{},
		pub:      pub,
	}
}

// NewTxnServiceWith 注入全部协作者，测试用
func NewTxnServiceWith(cfg ConfigStore, txn TxnStore, guard OrderGuard, pub event.Publisher) *TxnService {
	return &TxnService{cfgStore: cfg, txnStore: txn, guard: guard, pub: pub}
}

// Create 下单：校验参数 -> 取生效配置 -> 先算签名再落库
func (s *TxnService) Create(req dto.CreateTxnReq) (*dto.CreateTxnResp, error) {
	orderID := req.OrderID
	if orderID == "" {
		orderID = idgen.NewOrderID()
	} else if !utils.IsValidOrderID(orderID) {
		return nil, constant.NewError(constant.CodeOrderIdInvalid)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, constant.NewError(constant.CodeOrderAmountInvalid)
	}

	// 支付方式限定字段成对出现
	if req.PaymentModeOnly != nil && *req.PaymentModeOnly == "Yes" {
		if req.AuthMode == nil || req.PaymentTypeID == nil {
			return nil, constant.NewError(constant.CodeCompanionMissing)
		}
		if *req.PaymentTypeID == constant.PayTypeNetBanking && req.BankCode == nil {
			return nil, constant.NewError(constant.CodeCompanionMissing)
		}
	}

	cfg, err := s.activeConfig()
	if err != nil {
		return nil, err
	}

	ok, err := s.guard.Reserve(orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, constant.NewError(constant.CodeOrderAlreadyExist)
	}
	exist, err := s.txnStore.GetRequestByOrderID(orderID)
	if err != nil {
		s.guard.Release(orderID)
		return nil, err
	}
	if exist != nil {
		return nil, constant.NewError(constant.CodeOrderAlreadyExist)
	}

	fields := checksum.RequestFields{
		MID:             cfg.MID,
		IndustryTypeID:  req.IndustryTypeID,
		OrderID:         orderID,
		Website:         req.Website,
		Amount:          amount,
		Channel:         req.Channel,
		CustID:          req.CustID,
		CallbackURL:     req.CallbackURL,
		Mobile:          req.Mobile,
		Email:           req.Email,
		PaymentModeOnly: req.PaymentModeOnly,
		AuthMode:        req.AuthMode,
		PaymentTypeID:   req.PaymentTypeID,
		BankCode:        req.BankCode,
	}
	token, err := checksum.GenerateForRequest(fields, cfg.MKey)
	if err != nil {
		s.guard.Release(orderID)
		// 密钥长度错误是服务端配置故障，与客户端入参问题区分开
		if errors.Is(err, checksum.ErrKeyLength) {
			return nil, constant.NewError(constant.CodeConfigKeyInvalid)
		}
		return nil, constant.NewError(constant.CodeReservedContent)
	}

	row := model.TxnRequest{
		ID:              idgen.New(),
		MID:             cfg.MID,
		IndustryTypeID:  req.IndustryTypeID,
		OrderID:         orderID,
		Website:         req.Website,
		Amount:          amount,
		Channel:         req.Channel,
		CustID:          req.CustID,
		Mobile:          req.Mobile,
		Email:           req.Email,
		CallbackURL:     req.CallbackURL,
		PaymentModeOnly: req.PaymentModeOnly,
		AuthMode:        req.AuthMode,
		PaymentTypeID:   req.PaymentTypeID,
		BankCode:        req.BankCode,
		Checksum:        token,
		Status:          constant.StateCreated,
	}
	if err := s.txnStore.InsertRequest(&row); err != nil {
		s.guard.Release(orderID)
		log.Errorf("下单落库失败: orderID=%s err=%v", orderID, err)
		return nil, err
	}

	params := fields.ParamMap()
	params[checksum.ChecksumField] = token
	gatewayURL := cfg.GatewayURL
	if gatewayURL == "" {
		gatewayURL = config.C.Gateway.GatewayURL
	}
	return &dto.CreateTxnResp{
		OrderID:    orderID,
		Params:     params,
		GatewayURL: gatewayURL,
	}, nil
}

// HandleCallback 网关回调：验签通过才入库，MID 无配置一律拒绝
func (s *TxnService) HandleCallback(params dto.CallbackParams, raw string) (*model.TxnResponse, error) {
	mid := params.Get("MID")
	orderID := params.Get("ORDERID")

	cfg, err := s.cfgStore.GetByMID(mid)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		logger.Checksum.Warnf("回调 MID 无对应配置，拒绝: mid=%s orderID=%s", mid, orderID)
		return nil, constant.NewError(constant.CodeResponseMidGone)
	}

	if !checksum.VerifyResponse(params, cfg.MKey, params.Get(checksum.ChecksumField)) {
		logger.Checksum.Warnf("回调验签失败: mid=%s orderID=%s", mid, orderID)
		notify.SendOpsMessage("⚠️ 回调验签失败 orderID=" + orderID)
		return nil, constant.NewError(constant.CodeChecksumMismatch)
	}

	reqRow, err := s.txnStore.GetRequestByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if reqRow == nil {
		logger.Checksum.Warnf("回调订单号不存在: orderID=%s", orderID)
		return nil, constant.NewError(constant.CodeResponseUnlinked)
	}

	rec, err := params.ToRecord()
	if err != nil {
		return nil, constant.NewError(constant.CodeCallbackMalformed)
	}

	var row model.TxnResponse
	if err := copier.Copy(&row, rec); err != nil {
		return nil, err
	}
	row.ID = idgen.New()
	row.RequestID = &reqRow.ID
	row.RawResponse = raw
	if err := s.txnStore.InsertResponse(&row); err != nil {
		log.Errorf("回调落库失败: orderID=%s err=%v", orderID, err)
		return nil, err
	}

	if err := s.txnStore.UpdateRequestStatus(orderID, requestStateFor(rec.Status)); err != nil {
		log.Errorf("更新订单状态失败: orderID=%s err=%v", orderID, err)
	}

	// 每条成功应答各发一次事件，不做去重
	if rec.Status == constant.TxnSuccess {
		evt := dto.TxnCompletedEvent{
			ResponseID: row.ID,
			OrderID:    rec.OrderID,
			MID:        rec.MID,
			TxnID:      rec.TxnID,
			BankTxnID:  rec.BankTxnID,
			Amount:     rec.Amount.StringFixed(2),
			Currency:   rec.Currency,
			Status:     rec.Status,
			CreateTime: row.CreateTime,
		}
		if err := s.pub.Publish(event.TopicTxnCompleted, evt); err != nil {
			log.Errorf("完成事件发布失败: orderID=%s err=%v", orderID, err)
		}
	}
	return &row, nil
}

// LatestResponse 同订单号按时间最近的一条回调应答，没有时返回 nil
func (s *TxnService) LatestResponse(orderID string) (*model.TxnResponse, error) {
	list, err := s.txnStore.ListResponsesByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[len(list)-1], nil
}

// Completed 完成判定：存在成功应答即视为完成
func (s *TxnService) Completed(orderID string) (bool, error) {
	n, err := s.txnStore.CountSuccessResponses(orderID, constant.TxnSuccess)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *TxnService) Get(orderID string) (*dto.QueryTxnResp, error) {
	row, err := s.txnStore.GetRequestByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, constant.NewError(constant.CodeOrderNotFound)
	}
	done, err := s.Completed(orderID)
	if err != nil {
		return nil, err
	}
	return &dto.QueryTxnResp{
		OrderID:     row.OrderID,
		MID:         row.MID,
		Amount:      row.Amount.StringFixed(2),
		Channel:     row.Channel,
		Status:      row.Status,
		IsCompleted: done,
		CreateTime:  row.CreateTime,
	}, nil
}

func (s *TxnService) activeConfig() (*model.PaytmConfig, error) {
	cfg, err := s.cfgStore.GetActive()
	switch err {
	case nil:
		return cfg, nil
	case dao.ErrNoActiveConfig:
		return nil, constant.NewError(constant.CodeConfigNotFound)
	case dao.ErrMultipleActiveConfig:
		return nil, constant.NewError(constant.CodeConfigMultipleActive)
	default:
		return nil, err
	}
}

func requestStateFor(status string) int8 {
	switch status {
	case constant.TxnSuccess:
		return constant.StateCompleted
	case constant.TxnFailure:
		return constant.StateFailed
	default:
		return constant.StateResponseReceived
	}
}
