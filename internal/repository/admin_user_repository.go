package repository

import (
	"errors"

	"github.com/bolder-electric/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminUserRepository 管理员数据访问接口
type AdminUserRepository interface {
	GetByUsername(username string) (*models.AdminUser, error)
	GetByID(id uint) (*models.AdminUser, error)
	Create(admin *models.AdminUser) error
	Update(admin *models.AdminUser) error
	// Transaction 在单个事务内执行 fn，用于登录计数的读改写串行化
	Transaction(fn func(tx *gorm.DB) error) error
	// GetByUsernameForUpdate 在事务内按用户名加行锁读取
	GetByUsernameForUpdate(tx *gorm.DB, username string) (*models.AdminUser, error)
	// UpdateTx 在事务内保存账号
	UpdateTx(tx *gorm.DB, admin *models.AdminUser) error
}

// GormAdminUserRepository GORM 实现
type GormAdminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository 创建管理员仓库
func NewAdminUserRepository(db *gorm.DB) *GormAdminUserRepository {
	return &GormAdminUserRepository{db: db}
}

// GetByUsername 根据用户名获取管理员
func (r *GormAdminUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByID 根据 ID 获取管理员
func (r *GormAdminUserRepository) GetByID(id uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// Create 创建管理员
func (r *GormAdminUserRepository) Create(admin *models.AdminUser) error {
	return r.db.Create(admin).Error
}

// Update 更新管理员
func (r *GormAdminUserRepository) Update(admin *models.AdminUser) error {
	return r.db.Save(admin).Error
}

// Transaction 在单个事务内执行 fn
func (r *GormAdminUserRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if r == nil || r.db == nil {
		return gorm.ErrInvalidDB
	}
	return r.db.Transaction(fn)
}

// GetByUsernameForUpdate 在事务内按用户名加行锁读取
func (r *GormAdminUserRepository) GetByUsernameForUpdate(tx *gorm.DB, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("username = ?", username).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// UpdateTx 在事务内保存账号
func (r *GormAdminUserRepository) UpdateTx(tx *gorm.DB, admin *models.AdminUser) error {
	return tx.Save(admin).Error
}
