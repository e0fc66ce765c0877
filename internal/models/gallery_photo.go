package models

import "time"

// GalleryPhoto 案例图库表（软删除通过 is_active 实现）
type GalleryPhoto struct {
	ID           uint      `gorm:"primarykey" json:"id"`                     // 主键
	Filename     string    `gorm:"not null" json:"filename"`                 // 存储文件名
	Title        string    `json:"title"`                                    // 标题
	Description  string    `gorm:"type:text" json:"description"`             // 描述
	Category     string    `gorm:"index;not null;default:general" json:"category"` // 分类
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`  // 展示顺序
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`   // 是否展示
	CreatedAt    time.Time `json:"created_at"`                               // 创建时间
}

// TableName 指定表名
func (GalleryPhoto) TableName() string {
	return "gallery_photos"
}
