package models

import "time"

// TimeSlot 全局时段表（与日期无关的固定时段，如 "9:00 AM"）
type TimeSlot struct {
	ID        uint      `gorm:"primarykey" json:"id"`                   // 主键
	Label     string    `gorm:"uniqueIndex;not null" json:"label"`      // 时段展示文本
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"` // 是否启用
	CreatedAt time.Time `json:"created_at"`                             // 创建时间
}

// TableName 指定表名
func (TimeSlot) TableName() string {
	return "time_slots"
}
