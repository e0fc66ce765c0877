package models

import "time"

// Booking 预约记录表
// 说明：time_slot 冗余存储时段文本而非外键，插入时也不校验该时段是否可约，
// 与现网行为保持一致（时段不做硬性容量限制）。
type Booking struct {
	ID              uint      `gorm:"primarykey" json:"id"`                     // 主键
	ServiceID       uint      `gorm:"index" json:"service_id"`                  // 服务ID
	CustomerName    string    `gorm:"not null" json:"customer_name"`            // 客户姓名
	CustomerPhone   string    `gorm:"not null" json:"customer_phone"`           // 客户电话
	CustomerEmail   string    `gorm:"not null" json:"customer_email"`           // 客户邮箱
	CustomerAddress string    `gorm:"not null" json:"customer_address"`         // 服务地址
	ServiceDate     string    `gorm:"type:varchar(10);index;not null" json:"service_date"` // 预约日期
	TimeSlot        string    `gorm:"not null" json:"time_slot"`                // 预约时段文本
	Description     string    `gorm:"type:text" json:"description"`             // 需求描述
	TotalPrice      Money     `gorm:"type:decimal(12,2)" json:"total_price"`    // 报价金额
	Status          string    `gorm:"index;not null;default:pending" json:"status"` // 预约状态
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                  // 创建时间
}

// TableName 指定表名
func (Booking) TableName() string {
	return "bookings"
}
