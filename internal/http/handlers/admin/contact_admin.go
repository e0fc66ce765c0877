package admin

import (
	"errors"

	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
)

// GetContactInfo 获取联系信息
func (h *Handler) GetContactInfo(c *gin.Context) {
	info, err := h.ContactService.Get()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch contact info", err)
		return
	}
	response.Success(c, info)
}

// SaveContactInfo 创建或覆盖联系信息
func (h *Handler) SaveContactInfo(c *gin.Context) {
	var req service.ContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	info, err := h.ContactService.Save(req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(c, response.CodeBadRequest, "phone or email is required", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to save contact info", err)
		return
	}
	response.Success(c, info)
}
