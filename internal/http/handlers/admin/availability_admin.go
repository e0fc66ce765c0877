package admin

import (
	"errors"

	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
)

// GetTimeSlots 获取全部启用时段
func (h *Handler) GetTimeSlots(c *gin.Context) {
	slots, err := h.AvailabilityService.ListTimeSlots()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch time slots", err)
		return
	}
	response.Success(c, slots)
}

// GetAvailability 获取指定日期全部时段的可约状态
func (h *Handler) GetAvailability(c *gin.Context) {
	date := c.Param("date")
	states, err := h.AvailabilityService.GetAvailability(date)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(c, response.CodeBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to fetch availability", err)
		return
	}
	response.Success(c, states)
}

// SetAvailabilityRequest 设置可约状态请求
type SetAvailabilityRequest struct {
	Date        string `json:"date" binding:"required"`
	TimeSlotID  uint   `json:"time_slot_id" binding:"required"`
	IsAvailable *bool  `json:"is_available" binding:"required"`
}

// SetAvailability 设置指定 (日期, 时段) 的可约状态
func (h *Handler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	err := h.AvailabilityService.SetAvailability(req.Date, req.TimeSlotID, *req.IsAvailable)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			respondError(c, response.CodeBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "time slot not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to set availability", err)
		}
		return
	}
	response.Success(c, nil)
}
