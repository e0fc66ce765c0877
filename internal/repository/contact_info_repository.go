package repository

import (
	"errors"

	"github.com/bolder-electric/internal/models"

	"gorm.io/gorm"
)

// ContactInfoRepository 联系信息数据访问接口，整站只有一条记录
type ContactInfoRepository interface {
	Get() (*models.ContactInfo, error)
	Upsert(info *models.ContactInfo) error
}

// GormContactInfoRepository GORM 实现
type GormContactInfoRepository struct {
	db *gorm.DB
}

// NewContactInfoRepository 创建联系信息仓库
func NewContactInfoRepository(db *gorm.DB) *GormContactInfoRepository {
	return &GormContactInfoRepository{db: db}
}

// Get 获取联系信息记录
func (r *GormContactInfoRepository) Get() (*models.ContactInfo, error) {
	var info models.ContactInfo
	if err := r.db.First(&info, contactInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// contactInfoID 固定主键，保证单行
const contactInfoID = 1

// Upsert 创建或整行覆盖联系信息
func (r *GormContactInfoRepository) Upsert(info *models.ContactInfo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ContactInfo
		err := tx.First(&existing, contactInfoID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			info.ID = contactInfoID
			return tx.Create(info).Error
		}
		if err != nil {
			return err
		}
		info.ID = contactInfoID
		return tx.Save(info).Error
	})
}
