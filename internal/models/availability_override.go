package models

import "time"

// AvailabilityOverride 按日期覆盖时段可约状态
// 说明：同一 (date, time_slot_id) 至多一条记录，缺省视为可约。
// date 以 "2006-01-02" 形式存储，与接口入参保持一致。
type AvailabilityOverride struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                         // 主键
	Date        string    `gorm:"type:varchar(10);uniqueIndex:idx_availability_date_slot;not null" json:"date"` // 覆盖日期
	TimeSlotID  uint      `gorm:"uniqueIndex:idx_availability_date_slot;not null" json:"time_slot_id"`          // 时段ID
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`                    // 是否可约
	CreatedAt   time.Time `json:"created_at"`                                                   // 创建时间
}

// TableName 指定表名
func (AvailabilityOverride) TableName() string {
	return "availability_overrides"
}
