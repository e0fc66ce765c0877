package models

import (
	"errors"

	"github.com/bolder-electric/internal/logger"
	"github.com/bolder-electric/internal/password"

	"gorm.io/gorm"
)

// InitDefaultAdmin 初始化默认管理员账号。
// 幂等：依赖 username 唯一索引兜底并发启动时的重复创建。
func InitDefaultAdmin(username, pass string) error {
	if username == "" {
		username = "admin"
	}

	var existing AdminUser
	err := DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if pass == "" {
		pass = "admin123"
	}
	hash, salt, err := password.HashWithNewSalt(pass)
	if err != nil {
		return err
	}

	admin := AdminUser{
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		// 并发启动时另一个实例可能已创建，唯一索引冲突视为已初始化
		var again AdminUser
		if lookupErr := DB.Where("username = ?", username).First(&again).Error; lookupErr == nil {
			return nil
		}
		return err
	}

	if pass == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Infow("default_admin_created", "username", username, "password_hidden", true)
	}
	return nil
}
