package queue

import (
	"encoding/json"

	"github.com/bolder-electric/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskBookingNotify 新预约通知任务
	TaskBookingNotify = constants.TaskBookingNotify
)

// BookingNotifyPayload 新预约通知任务载荷
type BookingNotifyPayload struct {
	BookingID uint `json:"booking_id"`
}

// NewBookingNotifyTask 创建新预约通知任务
func NewBookingNotifyTask(payload BookingNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBookingNotify, body), nil
}
