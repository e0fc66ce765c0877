package service

import (
	"strings"

	"github.com/bolder-electric/internal/models"
	"github.com/bolder-electric/internal/repository"
)

// CatalogService 服务项目管理
type CatalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService 创建服务项目管理实例
func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// ServiceInput 创建/更新服务项目的入参
type ServiceInput struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	BasePrice   models.Money `json:"base_price"`
	IsActive    *bool        `json:"is_active"`
}

// List 返回全部上架服务
func (s *CatalogService) List() ([]models.Service, error) {
	return s.serviceRepo.ListActive()
}

// Get 根据 ID 获取服务
func (s *CatalogService) Get(id uint) (*models.Service, error) {
	return s.serviceRepo.GetByID(id)
}

// Create 创建服务项目
func (s *CatalogService) Create(input ServiceInput) (*models.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidation
	}
	svc := &models.Service{
		Name:        name,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		IsActive:    true,
	}
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}
	if err := s.serviceRepo.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Update 更新服务项目
func (s *CatalogService) Update(id uint, input ServiceInput) (*models.Service, error) {
	svc, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidation
	}
	svc.Name = name
	svc.Description = input.Description
	svc.BasePrice = input.BasePrice
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}
	if err := s.serviceRepo.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Deactivate 下架服务项目
func (s *CatalogService) Deactivate(id uint) error {
	svc, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrNotFound
	}
	return s.serviceRepo.Deactivate(id)
}
