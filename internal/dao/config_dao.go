package dao

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"paytm-txn-api/internal/checksum"
	"paytm-txn-api/internal/dal"
	"paytm-txn-api/internal/model"
)

var (
	ErrNoActiveConfig       = errors.New("no active merchant configuration")
	ErrMultipleActiveConfig = errors.New("multiple active merchant configurations")
	ErrAnotherConfigActive  = errors.New("another configuration is active")
)

type ConfigDao struct {
	DB *gorm.DB
}

func NewConfigDao() *ConfigDao {
	return &ConfigDao{DB: dal.DB}
}

func NewConfigDaoWithDB(db *gorm.DB) *ConfigDao {
	return &ConfigDao{DB: db}
}

// GetActive 查询唯一激活配置，0条或多条都视为服务端配置异常
func (r *ConfigDao) GetActive() (*model.PaytmConfig, error) {
	var list []model.PaytmConfig
	if err := r.DB.Where("is_active = ?", true).Limit(2).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("query active config failed: %w", err)
	}
	switch len(list) {
	case 0:
		return nil, ErrNoActiveConfig
	case 1:
		return &list[0], nil
	default:
		return nil, ErrMultipleActiveConfig
	}
}

// GetByMID 按商户号查询配置，不存在时返回 nil
func (r *ConfigDao) GetByMID(mid string) (*model.PaytmConfig, error) {
	var m model.PaytmConfig
	err := r.DB.Where("mid = ?", mid).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query config failed: %w", err)
	}
	return &m, nil
}

// Create 新增商户配置。密钥长度先行校验；若声明激活则走与 Activate 相同的互斥检查。
func (r *ConfigDao) Create(cfg *model.PaytmConfig) error {
	if err := checksum.ValidateKey(cfg.MKey); err != nil {
		return err
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if cfg.IsActive {
			if err := ensureNoOtherActive(tx, cfg.MID); err != nil {
				return err
			}
		}
		return tx.Create(cfg).Error
	})
}

// Activate 激活指定商户配置。
// 激活是低频管理操作，用行锁做先检后写，保证全表最多一条激活。
func (r *ConfigDao) Activate(mid string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureNoOtherActive(tx, mid); err != nil {
			return err
		}
		res := tx.Model(&model.PaytmConfig{}).Where("mid = ?", mid).Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Deactivate 停用指定商户配置
func (r *ConfigDao) Deactivate(mid string) error {
	return r.DB.Model(&model.PaytmConfig{}).Where("mid = ?", mid).Update("is_active", false).Error
}

func ensureNoOtherActive(tx *gorm.DB, mid string) error {
	q := tx.Where("is_active = ?", true)
	// sqlite 方言没有 FOR UPDATE 语法，行锁仅在 mysql 下生效
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var active []model.PaytmConfig
	if err := q.Find(&active).Error; err != nil {
		return err
	}
	for _, a := range active {
		if a.MID != mid {
			return ErrAnotherConfigActive
		}
	}
	return nil
}
