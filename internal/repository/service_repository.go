package repository

import (
	"errors"

	"github.com/bolder-electric/internal/models"

	"gorm.io/gorm"
)

// ServiceRepository 服务项目数据访问接口
type ServiceRepository interface {
	ListActive() ([]models.Service, error)
	GetByID(id uint) (*models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	Deactivate(id uint) error
}

// GormServiceRepository GORM 实现
type GormServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository 创建服务项目仓库
func NewServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// ListActive 获取全部上架服务（按名称排序）
func (r *GormServiceRepository) ListActive() ([]models.Service, error) {
	services := make([]models.Service, 0)
	err := r.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID 根据 ID 获取服务
func (r *GormServiceRepository) GetByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

// Create 创建服务
func (r *GormServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// Update 更新服务
func (r *GormServiceRepository) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

// Deactivate 下架服务（软删除）
func (r *GormServiceRepository) Deactivate(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Model(&models.Service{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
