package models

import "time"

// ContactInfo 联系方式表（单行记录，id 固定为 1）
type ContactInfo struct {
	ID            uint      `gorm:"primarykey" json:"id"`             // 主键（固定为 1）
	Phone         string    `gorm:"not null" json:"phone"`            // 联系电话
	Email         string    `gorm:"not null" json:"email"`            // 联系邮箱
	Address       string    `gorm:"not null" json:"address"`          // 办公地址
	ServiceArea   string    `gorm:"not null" json:"service_area"`     // 服务区域
	BusinessHours string    `gorm:"not null" json:"business_hours"`   // 营业时间
	UpdatedAt     time.Time `json:"updated_at"`                       // 更新时间
}

// TableName 指定表名
func (ContactInfo) TableName() string {
	return "contact_info"
}
