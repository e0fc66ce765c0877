package admin

import (
	"errors"
	"strconv"

	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminGallery 获取图库列表，可按分类过滤
func (h *Handler) GetAdminGallery(c *gin.Context) {
	photos, err := h.GalleryService.List(c.Query("category"))
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch gallery", err)
		return
	}
	response.Success(c, photos)
}

// UploadGalleryPhoto 上传图片并创建图库记录
// 表单字段：file（必填）、title、description、category、display_order
func (h *Handler) UploadGalleryPhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "file is required", err)
		return
	}

	filename, relativePath, err := h.UploadService.SaveFile(file)
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}

	displayOrder, _ := strconv.Atoi(c.DefaultPostForm("display_order", "0"))
	photo, err := h.GalleryService.Create(service.GalleryPhotoInput{
		Filename:     filename,
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Category:     c.PostForm("category"),
		DisplayOrder: displayOrder,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to create gallery photo", err)
		return
	}

	response.Success(c, gin.H{
		"photo": photo,
		"url":   relativePath,
	})
}

// UpdateGalleryPhoto 更新图片信息
func (h *Handler) UpdateGalleryPhoto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.GalleryPhotoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	photo, err := h.GalleryService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "photo not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update gallery photo", err)
		return
	}
	response.Success(c, photo)
}

// DeleteGalleryPhoto 下架图片
func (h *Handler) DeleteGalleryPhoto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.GalleryService.Deactivate(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "photo not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete gallery photo", err)
		return
	}
	response.Success(c, nil)
}

// UpdateGalleryOrderRequest 批量调整展示顺序请求
type UpdateGalleryOrderRequest struct {
	Orders map[uint]int `json:"orders" binding:"required"`
}

// UpdateGalleryOrder 批量调整图片展示顺序
func (h *Handler) UpdateGalleryOrder(c *gin.Context) {
	var req UpdateGalleryOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	if err := h.GalleryService.UpdateOrder(req.Orders); err != nil {
		respondError(c, response.CodeInternal, "failed to update gallery order", err)
		return
	}
	response.Success(c, nil)
}
