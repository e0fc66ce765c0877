package models

import "time"

// Service 服务项目表（软删除通过 is_active 实现）
type Service struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Name        string    `gorm:"not null" json:"name"`                   // 服务名称
	Description string    `gorm:"type:text" json:"description"`           // 服务描述
	BasePrice   Money     `gorm:"type:decimal(12,2)" json:"base_price"`   // 基础价格
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"` // 是否上架
	CreatedAt   time.Time `json:"created_at"`                             // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                             // 更新时间
}

// TableName 指定表名
func (Service) TableName() string {
	return "services"
}
