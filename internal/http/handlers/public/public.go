package public

import (
	"errors"

	handlershared "github.com/bolder-electric/internal/http/handlers/shared"
	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// GetServices 获取上架服务列表
func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.CatalogService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch services", err)
		return
	}
	response.Success(c, services)
}

// GetContactInfo 获取联系信息
func (h *Handler) GetContactInfo(c *gin.Context) {
	info, err := h.ContactService.Get()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch contact info", err)
		return
	}
	response.Success(c, info)
}

// GetGallery 获取图库列表，可按分类过滤
func (h *Handler) GetGallery(c *gin.Context) {
	photos, err := h.GalleryService.List(c.Query("category"))
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch gallery", err)
		return
	}
	response.Success(c, photos)
}

// GetTimeSlots 获取指定日期全部时段的可约状态
// date 查询参数缺省时仅返回时段列表（全部视为可约）
func (h *Handler) GetTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		slots, err := h.AvailabilityService.ListTimeSlots()
		if err != nil {
			respondError(c, response.CodeInternal, "failed to fetch time slots", err)
			return
		}
		states := make([]service.SlotState, 0, len(slots))
		for _, slot := range slots {
			states = append(states, service.SlotState{
				TimeSlotID:  slot.ID,
				Label:       slot.Label,
				IsAvailable: true,
			})
		}
		response.Success(c, states)
		return
	}

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
