package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/bolder-electric/internal/logger"
	"github.com/bolder-electric/internal/provider"
	"github.com/bolder-electric/internal/queue"
	"github.com/bolder-electric/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskBookingNotify, c.handleBookingNotify)
}

// handleBookingNotify 消费新预约通知任务
// 向联系信息中的业务邮箱发通知，并给留了邮箱的客户发确认。
// 邮件功能未启用时静默跳过，任务视为成功。
func (c *Consumer) handleBookingNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_booking_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.BookingNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_booking_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.BookingID == 0 {
		logger.Debugw("worker_booking_notify_skip_invalid_payload", "booking_id", payload.BookingID)
		return nil
	}

	booking, err := c.BookingRepo.GetByID(payload.BookingID)
	if err != nil {
		logger.Warnw("worker_booking_notify_fetch_booking_failed", "booking_id", payload.BookingID, "error", err)
		return err
	}
	if booking == nil {
		logger.Debugw("worker_booking_notify_skip_booking_not_found", "booking_id", payload.BookingID)
		return nil
	}

	serviceName := ""
	if svc, err := c.ServiceRepo.GetByID(booking.ServiceID); err == nil && svc != nil {
		serviceName = svc.Name
	}

	input := service.BookingNotifyInput{
		BookingID:     booking.ID,
		ServiceName:   serviceName,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		CustomerEmail: booking.CustomerEmail,
		Address:       booking.CustomerAddress,
		ServiceDate:   booking.ServiceDate,
		TimeSlot:      booking.TimeSlot,
		Description:   booking.Description,
		TotalPrice:    booking.TotalPrice,
	}

	businessEmail := ""
	if info, err := c.ContactInfoRepo.Get(); err == nil && info != nil {
		businessEmail = strings.TrimSpace(info.Email)
	}
	if businessEmail != "" {
		if err := c.EmailService.SendBookingNotification(businessEmail, input); err != nil {
			if errors.Is(err, service.ErrEmailDisabled) {
				logger.Debugw("worker_booking_notify_skip_email_disabled", "booking_id", booking.ID)
				return nil
			}
			logger.Warnw("worker_booking_notify_send_failed", "booking_id", booking.ID, "error", err)
			return err
		}
	}

	customerEmail := strings.TrimSpace(booking.CustomerEmail)
	if customerEmail != "" {
		if err := c.EmailService.SendBookingConfirmation(customerEmail, input); err != nil && !errors.Is(err, service.ErrEmailDisabled) {
			// 客户确认邮件失败仅告警，不重试整个任务
			logger.Warnw("worker_booking_confirmation_send_failed", "booking_id", booking.ID, "error", err)
		}
	}

	return nil
}
