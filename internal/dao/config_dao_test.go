package dao

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"paytm-txn-api/internal/checksum"
	"paytm-txn-api/internal/model"
)

const testMKey = "1234567890123456"

// newTestDB 内存 sqlite，连接数压到1保证事务共用同一个库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.PaytmConfig{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, r *ConfigDao, mid string, active bool) {
	t.Helper()
	if err := r.Create(&model.PaytmConfig{MID: mid, MKey: testMKey, IsActive: active}); err != nil {
		t.Fatalf("create %s: %v", mid, err)
	}
}

func TestConfigCreateKeyLength(t *testing.T) {
	r := NewConfigDaoWithDB(newTestDB(t))

	err := r.Create(&model.PaytmConfig{MID: "M-BADKEY", MKey: "short"})
	if !errors.Is(err, checksum.ErrKeyLength) {
		t.Fatalf("want ErrKeyLength, got %v", err)
	}
	cfg, err := r.GetByMID("M-BADKEY")
	if err != nil || cfg != nil {
		t.Fatalf("密钥非法的配置不应落库: cfg=%v err=%v", cfg, err)
	}
}

func TestConfigActivateSecondRejected(t *testing.T) {
	r := NewConfigDaoWithDB(newTestDB(t))
	mustCreate(t, r, "M-A", true)
	mustCreate(t, r, "M-B", false)

	if err := r.Activate("M-B"); !errors.Is(err, ErrAnotherConfigActive) {
		t.Fatalf("want ErrAnotherConfigActive, got %v", err)
	}
	// 被拒后 B 不能变成激活态
	b, err := r.GetByMID("M-B")
	if err != nil {
		t.Fatalf("get M-B: %v", err)
	}
	if b.IsActive {
		t.Fatal("激活被拒后不应写入")
	}
}

func TestConfigDeactivateThenActivate(t *testing.T) {
	r := NewConfigDaoWithDB(newTestDB(t))
	mustCreate(t, r, "M-A", true)
	mustCreate(t, r, "M-B", false)

	if err := r.Deactivate("M-A"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if err := r.Activate("M-B"); err != nil {
		t.Fatalf("activate: %v", err)
	}
	active, err := r.GetActive()
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active.MID != "M-B" {
		t.Fatalf("active = %s", active.MID)
	}
}

func TestConfigActivateIdempotent(t *testing.T) {
	r := NewConfigDaoWithDB(newTestDB(t))
	mustCreate(t, r, "M-A", true)

	// 对已激活的同一商户再次激活不算冲突
	if err := r.Activate("M-A"); err != nil {
		t.Fatalf("re-activate: %v", err)
	}
}

func TestConfigActivateUnknownMid(t *testing.T) {
	r := NewConfigDaoWithDB(newTestDB(t))

	if err := r.Activate("M-GONE"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestConfigCreateActiveWhileAnotherActive(t *testing.T) {
	r := NewConfigDaoWithDB(newTestDB(t))
	mustCreate(t, r, "M-A", true)

	err := r.Create(&model.PaytmConfig{MID: "M-B", MKey: testMKey, IsActive: true})
	if !errors.Is(err, ErrAnotherConfigActive) {
		t.Fatalf("want ErrAnotherConfigActive, got %v", err)
	}
	cfg, _ := r.GetByMID("M-B")
	if cfg != nil {
		t.Fatal("事务应整体回滚，冲突配置不落库")
	}
}

func TestConfigGetActiveStates(t *testing.T) {
	r := NewConfigDaoWithDB(newTestDB(t))

	if _, err := r.GetActive(); !errors.Is(err, ErrNoActiveConfig) {
		t.Fatalf("空表 want ErrNoActiveConfig, got %v", err)
	}

	mustCreate(t, r, "M-A", true)
	active, err := r.GetActive()
	if err != nil || active.MID != "M-A" {
		t.Fatalf("单条激活: active=%v err=%v", active, err)
	}

	// 绕过 dao 直接制造两条激活，模拟脏数据
	mustCreate(t, r, "M-B", false)
	if err := r.DB.Model(&model.PaytmConfig{}).Where("mid = ?", "M-B").
		Update("is_active", true).Error; err != nil {
		t.Fatalf("force activate: %v", err)
	}
	if _, err := r.GetActive(); !errors.Is(err, ErrMultipleActiveConfig) {
		t.Fatalf("双激活 want ErrMultipleActiveConfig, got %v", err)
	}
}
