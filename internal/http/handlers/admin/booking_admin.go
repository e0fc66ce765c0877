package admin

import (
	"errors"

	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
)

// GetBookings 获取预约列表，可按日期过滤
func (h *Handler) GetBookings(c *gin.Context) {
	date := c.Query("date")
	bookings, err := h.BookingService.List(date)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(c, response.CodeBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to fetch bookings", err)
		return
	}
	response.Success(c, bookings)
}
