package service

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"paytm-txn-api/internal/checksum"
	"paytm-txn-api/internal/config"
	"paytm-txn-api/internal/constant"
	"paytm-txn-api/internal/dao"
	"paytm-txn-api/internal/dto"
	"paytm-txn-api/internal/utils"
)

// StatusService 网关侧对账：用签名过的状态查询接口复核本地记录
type StatusService struct {
	cfgStore ConfigStore
	postJSON func(url string, data interface{}) (string, error)
}

func NewStatusService() *StatusService {
	return &StatusService{
		cfgStore: dao.NewConfigDao(),
		postJSON: utils.HttpPostJson,
	}
}

// NewStatusServiceWith 注入协作者，测试用
func NewStatusServiceWith(cfg ConfigStore, postJSON func(string, interface{}) (string, error)) *StatusService {
	return &StatusService{cfgStore: cfg, postJSON: postJSON}
}

// Confirm 向网关查询订单状态，与期望的状态和交易号精确比对。
// 网络失败、回包不可解析都按未确认处理，不打断调用方；
// 配置缺失或多条激活属于服务端故障，返回错误。
func (s *StatusService) Confirm(orderID, expectStatus, expectTxnID string) (bool, error) {
	cfg, err := s.cfgStore.GetActive()
	switch err {
	case nil:
	case dao.ErrNoActiveConfig:
		return false, constant.NewError(constant.CodeConfigNotFound)
	case dao.ErrMultipleActiveConfig:
		return false, constant.NewError(constant.CodeConfigMultipleActive)
	default:
		return false, err
	}

	params := map[string]string{
		"ORDERID": orderID,
		"MID":     cfg.MID,
	}
	token, err := checksum.Generate(params, cfg.MKey)
	if err != nil {
		return false, err
	}

	statusURL := cfg.StatusURL
	if statusURL == "" {
		statusURL = config.C.Gateway.StatusURL
	}
	body, err := s.postJSON(statusURL, dto.StatusQueryReq{
		OrderID:  orderID,
		MID:      cfg.MID,
		Checksum: token,
	})
	if err != nil {
		log.Warnf("网关状态查询失败: orderID=%s err=%v", orderID, err)
		return false, nil
	}

	var resp dto.StatusQueryResp
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		log.Warnf("网关状态回包解析失败: orderID=%s err=%v", orderID, err)
		return false, nil
	}

	matched := resp.Status == expectStatus && resp.TxnID == expectTxnID
	if !matched {
		log.Infof("网关状态与本地不一致: orderID=%s 本地=%s/%s 网关=%s/%s",
			orderID, expectStatus, expectTxnID, resp.Status, resp.TxnID)
	}
	return matched, nil
}
