package repository

import (
	"errors"

	"github.com/bolder-electric/internal/models"

	"gorm.io/gorm"
)

// GalleryPhotoRepository 作品图库数据访问接口
type GalleryPhotoRepository interface {
	ListActive(category string) ([]models.GalleryPhoto, error)
	GetByID(id uint) (*models.GalleryPhoto, error)
	Create(photo *models.GalleryPhoto) error
	Update(photo *models.GalleryPhoto) error
	Deactivate(id uint) error
	UpdateOrder(orders map[uint]int) error
}

// GormGalleryPhotoRepository GORM 实现
type GormGalleryPhotoRepository struct {
	db *gorm.DB
}

// NewGalleryPhotoRepository 创建图库仓库
func NewGalleryPhotoRepository(db *gorm.DB) *GormGalleryPhotoRepository {
	return &GormGalleryPhotoRepository{db: db}
}

// ListActive 查询启用的图片，category 非空时按分类过滤
func (r *GormGalleryPhotoRepository) ListActive(category string) ([]models.GalleryPhoto, error) {
	photos := make([]models.GalleryPhoto, 0)
	query := r.db.Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("display_order ASC, id ASC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// GetByID 根据 ID 获取图片
func (r *GormGalleryPhotoRepository) GetByID(id uint) (*models.GalleryPhoto, error) {
	var photo models.GalleryPhoto
	if err := r.db.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

// Create 新增图片
func (r *GormGalleryPhotoRepository) Create(photo *models.GalleryPhoto) error {
	return r.db.Create(photo).Error
}

// Update 更新图片
func (r *GormGalleryPhotoRepository) Update(photo *models.GalleryPhoto) error {
	return r.db.Save(photo).Error
}

// Deactivate 下架图片
func (r *GormGalleryPhotoRepository) Deactivate(id uint) error {
	return r.db.Model(&models.GalleryPhoto{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// UpdateOrder 批量更新展示顺序
func (r *GormGalleryPhotoRepository) UpdateOrder(orders map[uint]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			if err := tx.Model(&models.GalleryPhoto{}).
				Where("id = ?", id).
				Update("display_order", order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
