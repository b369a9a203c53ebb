package service

import (
	"fmt"
	"time"

	"paytm-txn-api/internal/config"
	"paytm-txn-api/internal/dal"
	"paytm-txn-api/internal/model"
)

// 外部协作者的窄接口：记录存储、防重守卫。
// 生命周期逻辑只见接口，存储细节留在 dao 层。

type ConfigStore interface {
	GetActive() (*model.PaytmConfig, error)
	GetByMID(mid string) (*model.PaytmConfig, error)
}

type TxnStore interface {
	InsertRequest(*model.TxnRequest) error
	GetRequestByOrderID(orderID string) (*model.TxnRequest, error)
	UpdateRequestStatus(orderID string, status int8) error
	InsertResponse(*model.TxnResponse) error
	CountSuccessResponses(orderID, successStatus string) (int64, error)
	ListResponsesByOrderID(orderID string) ([]model.TxnResponse, error)
}

// OrderGuard 订单号防重快路径，DB 唯一索引兜底
type OrderGuard interface {
	Reserve(orderID string) (bool, error)
	Release(orderID string)
}

type redisOrderGuard struct{}

func (redisOrderGuard) key(orderID string) string { return "txn:order:" + orderID }

func (g redisOrderGuard) Reserve(orderID string) (bool, error) {
	ttl := time.Duration(config.C.Gateway.OrderGuardSec) * time.Second
	ok, err := dal.RedisClient.SetNX(dal.RedisCtx, g.key(orderID), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("order guard failed: %w", err)
	}
	return ok, nil
}

func (g redisOrderGuard) Release(orderID string) {
	dal.RedisClient.Del(dal.RedisCtx, g.key(orderID))
}
