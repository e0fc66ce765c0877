package repository

import (
	"errors"

	"github.com/bolder-electric/internal/models"

	"gorm.io/gorm"
)

// SlotAvailabilityRow 某日期下单个时段的可约状态。
// IsAvailable 为空表示该时段无覆盖记录，调用方按默认可约处理。
type SlotAvailabilityRow struct {
	TimeSlotID  uint   `json:"time_slot_id"`
	Label       string `json:"label"`
	IsAvailable *bool  `json:"is_available"`
}

// AvailabilityRepository 时段覆盖数据访问接口
type AvailabilityRepository interface {
	ListForDate(date string) ([]SlotAvailabilityRow, error)
	Upsert(date string, timeSlotID uint, isAvailable bool) error
}

// GormAvailabilityRepository GORM 实现
type GormAvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository 创建时段覆盖仓库
func NewAvailabilityRepository(db *gorm.DB) *GormAvailabilityRepository {
	return &GormAvailabilityRepository{db: db}
}

// ListForDate 左连接覆盖表，返回指定日期全部启用时段的状态。
// 排序同时段列表一致，使用 label 文本字典序。
func (r *GormAvailabilityRepository) ListForDate(date string) ([]SlotAvailabilityRow, error) {
	rows := make([]SlotAvailabilityRow, 0)
	err := r.db.
		Table("time_slots").
		Select("time_slots.id AS time_slot_id, time_slots.label AS label, availability_overrides.is_available AS is_available").
		Joins("LEFT JOIN availability_overrides ON availability_overrides.time_slot_id = time_slots.id AND availability_overrides.date = ?", date).
		Where("time_slots.is_active = ?", true).
		Order("time_slots.label ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert 写入指定 (date, slot) 的覆盖记录，已存在则替换
func (r *GormAvailabilityRepository) Upsert(date string, timeSlotID uint, isAvailable bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.AvailabilityOverride
		err := tx.Where("date = ? AND time_slot_id = ?", date, timeSlotID).
			First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&models.AvailabilityOverride{
				Date:        date,
				TimeSlotID:  timeSlotID,
				IsAvailable: isAvailable,
			}).Error
		}
		existing.IsAvailable = isAvailable
		return tx.Save(&existing).Error
	})
}
