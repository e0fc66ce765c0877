package public

import (
	"errors"

	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBooking 提交预约请求
func (h *Handler) CreateBooking(c *gin.Context) {
	var req service.RecordBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	booking, err := h.BookingService.Record(req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(c, response.CodeBadRequest, "missing or invalid booking fields", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create booking", err)
		return
	}

	response.Success(c, gin.H{
		"booking_id": booking.ID,
		"status":     booking.Status,
	})
}
