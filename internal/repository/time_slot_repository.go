package repository

import (
	"errors"

	"github.com/bolder-electric/internal/models"

	"gorm.io/gorm"
)

// TimeSlotRepository 时段数据访问接口
type TimeSlotRepository interface {
	ListActive() ([]models.TimeSlot, error)
	GetByID(id uint) (*models.TimeSlot, error)
	Create(slot *models.TimeSlot) error
}

// GormTimeSlotRepository GORM 实现
type GormTimeSlotRepository struct {
	db *gorm.DB
}

// NewTimeSlotRepository 创建时段仓库
func NewTimeSlotRepository(db *gorm.DB) *GormTimeSlotRepository {
	return &GormTimeSlotRepository{db: db}
}

// ListActive 获取全部启用时段。
// 排序使用文本字典序，与现网展示顺序保持一致（"10:00 AM" 排在 "9:00 AM" 之前）。
func (r *GormTimeSlotRepository) ListActive() ([]models.TimeSlot, error) {
	slots := make([]models.TimeSlot, 0)
	err := r.db.
		Where("is_active = ?", true).
		Order("label ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// GetByID 根据 ID 获取时段
func (r *GormTimeSlotRepository) GetByID(id uint) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := r.db.First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// Create 创建时段
func (r *GormTimeSlotRepository) Create(slot *models.TimeSlot) error {
	return r.db.Create(slot).Error
}
