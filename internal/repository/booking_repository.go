package repository

import (
	"errors"

	"github.com/bolder-electric/internal/models"

	"gorm.io/gorm"
)

// BookingWithService 预约记录及冗余的服务名称
type BookingWithService struct {
	models.Booking
	ServiceName string `json:"service_name"`
}

// BookingRepository 预约数据访问接口
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	List(date string) ([]BookingWithService, error)
}

// GormBookingRepository GORM 实现
type GormBookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository 创建预约仓库
func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Create 插入预约记录
func (r *GormBookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID 根据 ID 获取预约
func (r *GormBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// List 查询预约列表，date 非空时按日期过滤
func (r *GormBookingRepository) List(date string) ([]BookingWithService, error) {
	rows := make([]BookingWithService, 0)
	query := r.db.
		Table("bookings").
		Select("bookings.*, services.name AS service_name").
		Joins("LEFT JOIN services ON services.id = bookings.service_id")
	if date != "" {
		query = query.Where("bookings.service_date = ?", date).
			Order("bookings.service_date ASC, bookings.time_slot ASC")
	} else {
		query = query.Order("bookings.service_date DESC, bookings.time_slot ASC")
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
