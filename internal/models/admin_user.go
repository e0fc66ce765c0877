package models

import "time"

// AdminUser 管理员账号表
type AdminUser struct {
	ID                 uint       `gorm:"primarykey" json:"id"`                   // 主键
	Username           string     `gorm:"uniqueIndex;not null" json:"username"`   // 管理员账号
	PasswordHash       string     `gorm:"not null" json:"-"`                      // 密码哈希（不返回给前端）
	Salt               string     `gorm:"not null" json:"-"`                      // 哈希盐值
	FailedAttempts     int        `gorm:"not null;default:0" json:"-"`            // 连续失败次数
	LockedUntil        *time.Time `json:"-"`                                      // 锁定截止时间
	IsActive           bool       `gorm:"not null;default:true" json:"is_active"` // 账号是否启用
	TokenVersion       uint64     `gorm:"not null;default:0" json:"-"`            // Token 版本（用于全量失效）
	TokenInvalidBefore *time.Time `gorm:"index" json:"-"`                         // 该时间点前签发的 Token 失效
	LastLoginAt        *time.Time `json:"last_login_at"`                          // 最后登录时间
	CreatedAt          time.Time  `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (AdminUser) TableName() string {
	return "admin_users"
}

// LockedAt 判断在给定时刻账号是否处于锁定状态
func (a *AdminUser) LockedAt(now time.Time) bool {
	return a != nil && a.LockedUntil != nil && a.LockedUntil.After(now)
}
