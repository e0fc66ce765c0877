package repository

import (
	"github.com/bolder-electric/internal/models"

	"gorm.io/gorm"
)

// AccessLogRepository 访问审计日志数据访问接口
type AccessLogRepository interface {
	Create(log *models.AccessLog) error
	ListRecent(limit int) ([]models.AccessLog, error)
}

// GormAccessLogRepository GORM 实现
type GormAccessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository 创建访问日志仓库
func NewAccessLogRepository(db *gorm.DB) *GormAccessLogRepository {
	return &GormAccessLogRepository{db: db}
}

// Create 追加一条访问日志
func (r *GormAccessLogRepository) Create(log *models.AccessLog) error {
	if log == nil {
		return nil
	}
	return r.db.Create(log).Error
}

// ListRecent 按时间倒序返回最近的访问日志
func (r *GormAccessLogRepository) ListRecent(limit int) ([]models.AccessLog, error) {
	if limit <= 0 {
		limit = 100
	}
	logs := make([]models.AccessLog, 0)
	err := r.db.
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
