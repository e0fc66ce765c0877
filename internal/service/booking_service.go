package service

import (
	"strings"

	"github.com/bolder-electric/internal/constants"
	"github.com/bolder-electric/internal/logger"
	"github.com/bolder-electric/internal/models"
	"github.com/bolder-electric/internal/queue"
	"github.com/bolder-electric/internal/repository"
)

// BookingService 预约服务
type BookingService struct {
	bookingRepo repository.BookingRepository
	queueClient *queue.Client
}

// NewBookingService 创建预约服务实例
func NewBookingService(bookingRepo repository.BookingRepository, queueClient *queue.Client) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		queueClient: queueClient,
	}
}

// RecordBookingInput 创建预约的入参
type RecordBookingInput struct {
	ServiceID       uint         `json:"service_id"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerEmail   string       `json:"customer_email"`
	CustomerAddress string       `json:"customer_address"`
	ServiceDate     string       `json:"service_date"`
	TimeSlot        string       `json:"time_slot"`
	Description     string       `json:"description"`
	TotalPrice      models.Money `json:"total_price"`
}

// Record 落库一条预约记录
// 纯插入：不回查时段可约状态，也不按服务基础价重算金额，
// 同一 (日期, 时段) 可以存在多条预约（时段不做硬性容量限制）。
func (s *BookingService) Record(input RecordBookingInput) (*models.Booking, error) {
	if input.ServiceID == 0 ||
		strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" ||
		strings.TrimSpace(input.TimeSlot) == "" ||
		!ValidDate(input.ServiceDate) {
		return nil, ErrValidation
	}

	booking := &models.Booking{
		ServiceID:       input.ServiceID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		ServiceDate:     input.ServiceDate,
		TimeSlot:        input.TimeSlot,
		Description:     input.Description,
		TotalPrice:      input.TotalPrice,
		Status:          constants.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	// 通知任务入队失败不影响预约创建
	if err := s.queueClient.EnqueueBookingNotify(queue.BookingNotifyPayload{BookingID: booking.ID}); err != nil {
		logger.Warnw("booking_notify_enqueue_failed",
			"booking_id", booking.ID,
			"error", err,
		)
	}

	return booking, nil
}

// Get 根据 ID 获取预约
func (s *BookingService) Get(id uint) (*models.Booking, error) {
	return s.bookingRepo.GetByID(id)
}

// List 查询预约列表，date 非空时按日期过滤
func (s *BookingService) List(date string) ([]repository.BookingWithService, error) {
	if date != "" && !ValidDate(date) {
		return nil, ErrValidation
	}
	return s.bookingRepo.List(date)
}
