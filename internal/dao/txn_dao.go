package dao

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"paytm-txn-api/internal/dal"
	"paytm-txn-api/internal/model"
)

type TxnDao struct {
	DB *gorm.DB
}

func NewTxnDao() *TxnDao {
	if dal.DB == nil {
		log.Panic("[FATAL] dal.DB is nil - database not initialized")
	}
	return &TxnDao{DB: dal.DB}
}

func NewTxnDaoWithDB(db *gorm.DB) *TxnDao {
	return &TxnDao{DB: db}
}

// InsertRequest 插入交易请求，订单号唯一索引兜底防重
func (r *TxnDao) InsertRequest(m *model.TxnRequest) error {
	return r.DB.Create(m).Error
}

// GetRequestByOrderID 按订单号查询交易请求，不存在时返回 nil
func (r *TxnDao) GetRequestByOrderID(orderID string) (*model.TxnRequest, error) {
	var m model.TxnRequest
	err := r.DB.Where("order_id = ?", orderID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query request failed: %w", err)
	}
	return &m, nil
}

// UpdateRequestStatus 更新请求生命周期状态
func (r *TxnDao) UpdateRequestStatus(orderID string, status int8) error {
	return r.DB.Model(&model.TxnRequest{}).Where("order_id = ?", orderID).
		Update("status", status).Error
}

// InsertResponse 插入回调响应，一次回调一行
func (r *TxnDao) InsertResponse(m *model.TxnResponse) error {
	return r.DB.Create(m).Error
}

// CountSuccessResponses 统计同订单号的成功响应条数。
// 完成与否是从响应日志推导的，不落冗余状态。
func (r *TxnDao) CountSuccessResponses(orderID, successStatus string) (int64, error) {
	var n int64
	err := r.DB.Model(&model.TxnResponse{}).
		Where("order_id = ? AND status = ?", orderID, successStatus).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count responses failed: %w", err)
	}
	return n, nil
}

// ListResponsesByOrderID 查询同订单号的全部响应
func (r *TxnDao) ListResponsesByOrderID(orderID string) ([]model.TxnResponse, error) {
	var list []model.TxnResponse
	if err := r.DB.Where("order_id = ?", orderID).Order("create_time asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list responses failed: %w", err)
	}
	return list, nil
}
