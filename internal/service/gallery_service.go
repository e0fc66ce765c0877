package service

import (
	"strings"

	"github.com/bolder-electric/internal/models"
	"github.com/bolder-electric/internal/repository"
)

// GalleryService 案例图库管理
type GalleryService struct {
	galleryRepo repository.GalleryPhotoRepository
}

// NewGalleryService 创建图库管理实例
func NewGalleryService(galleryRepo repository.GalleryPhotoRepository) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo}
}

// GalleryPhotoInput 创建/更新图片的入参
type GalleryPhotoInput struct {
	Filename     string `json:"filename"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// List 返回启用的图片，category 非空时按分类过滤
func (s *GalleryService) List(category string) ([]models.GalleryPhoto, error) {
	return s.galleryRepo.ListActive(strings.TrimSpace(category))
}

// Get 根据 ID 获取图片
func (s *GalleryService) Get(id uint) (*models.GalleryPhoto, error) {
	return s.galleryRepo.GetByID(id)
}

// Create 新增图片记录
func (s *GalleryService) Create(input GalleryPhotoInput) (*models.GalleryPhoto, error) {
	filename := strings.TrimSpace(input.Filename)
	if filename == "" {
		return nil, ErrValidation
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "general"
	}
	photo := &models.GalleryPhoto{
		Filename:     filename,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Category:     category,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}
	if input.IsActive != nil {
		photo.IsActive = *input.IsActive
	}
	if err := s.galleryRepo.Create(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// Update 更新图片信息
func (s *GalleryService) Update(id uint, input GalleryPhotoInput) (*models.GalleryPhoto, error) {
	photo, err := s.galleryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrNotFound
	}
	photo.Title = strings.TrimSpace(input.Title)
	photo.Description = input.Description
	if category := strings.TrimSpace(input.Category); category != "" {
		photo.Category = category
	}
	photo.DisplayOrder = input.DisplayOrder
	if input.IsActive != nil {
		photo.IsActive = *input.IsActive
	}
	if err := s.galleryRepo.Update(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// Deactivate 下架图片
func (s *GalleryService) Deactivate(id uint) error {
	photo, err := s.galleryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrNotFound
	}
	return s.galleryRepo.Deactivate(id)
}

// UpdateOrder 批量更新展示顺序
func (s *GalleryService) UpdateOrder(orders map[uint]int) error {
	if len(orders) == 0 {
		return nil
	}
	return s.galleryRepo.UpdateOrder(orders)
}
