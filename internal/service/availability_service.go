package service

import (
	"strings"
	"time"

	"github.com/bolder-electric/internal/models"
	"github.com/bolder-electric/internal/repository"
)

// SlotState 某日期下单个时段的可约结论
type SlotState struct {
	TimeSlotID  uint   `json:"time_slot_id"`
	Label       string `json:"label"`
	IsAvailable bool   `json:"is_available"`
}

// AvailabilityService 时段可约状态服务
type AvailabilityService struct {
	availabilityRepo repository.AvailabilityRepository
	timeSlotRepo     repository.TimeSlotRepository
}

// NewAvailabilityService 创建可约状态服务实例
func NewAvailabilityService(availabilityRepo repository.AvailabilityRepository, timeSlotRepo repository.TimeSlotRepository) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo: availabilityRepo,
		timeSlotRepo:     timeSlotRepo,
	}
}

// ValidDate 校验日期入参格式（YYYY-MM-DD）
func ValidDate(date string) bool {
	if strings.TrimSpace(date) == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// GetAvailability 返回指定日期全部启用时段的可约状态
// 无覆盖记录的时段默认可约，结果仅供展示参考，预约落库不回查该状态。
func (s *AvailabilityService) GetAvailability(date string) ([]SlotState, error) {
	if !ValidDate(date) {
		return nil, ErrValidation
	}
	rows, err := s.availabilityRepo.ListForDate(date)
	if err != nil {
		return nil, err
	}
	states := make([]SlotState, 0, len(rows))
	for _, row := range rows {
		available := true
		if row.IsAvailable != nil {
			available = *row.IsAvailable
		}
		states = append(states, SlotState{
			TimeSlotID:  row.TimeSlotID,
			Label:       row.Label,
			IsAvailable: available,
		})
	}
	return states, nil
}

// SetAvailability 写入指定 (date, slot) 的覆盖记录
func (s *AvailabilityService) SetAvailability(date string, timeSlotID uint, isAvailable bool) error {
	if !ValidDate(date) || timeSlotID == 0 {
		return ErrValidation
	}
	slot, err := s.timeSlotRepo.GetByID(timeSlotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return ErrNotFound
	}
	return s.availabilityRepo.Upsert(date, timeSlotID, isAvailable)
}

// ListTimeSlots 返回全部启用时段
func (s *AvailabilityService) ListTimeSlots() ([]models.TimeSlot, error) {
	return s.timeSlotRepo.ListActive()
}
