package admin

import (
	"errors"
	"strconv"

	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// GetAdminServices 获取服务项目列表
func (h *Handler) GetAdminServices(c *gin.Context) {
	services, err := h.CatalogService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch services", err)
		return
	}
	response.Success(c, services)
}

// CreateService 创建服务项目
func (h *Handler) CreateService(c *gin.Context) {
	var req service.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	svc, err := h.CatalogService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(c, response.CodeBadRequest, "service name is required", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create service", err)
		return
	}
	response.Success(c, svc)
}

// UpdateService 更新服务项目
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	svc, err := h.CatalogService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "service not found", nil)
		case errors.Is(err, service.ErrValidation):
			respondError(c, response.CodeBadRequest, "service name is required", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update service", err)
		}
		return
	}
	response.Success(c, svc)
}

// DeleteService 下架服务项目
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.CatalogService.Deactivate(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "service not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete service", err)
		return
	}
	response.Success(c, nil)
}
