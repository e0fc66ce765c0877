package models

import "time"

// AccessLog 后台访问审计日志
// 说明：记录登录、登出与改密行为，仅追加不修改。
// username 为冗余字符串，不外键关联账号表，账号删除或改名后日志仍可追溯。
type AccessLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`                    // 主键
	Username  string    `gorm:"index" json:"username"`                   // 尝试登录的账号名
	IPAddress string    `gorm:"type:varchar(64);index" json:"ip_address"`// 客户端IP
	UserAgent string    `gorm:"type:text" json:"user_agent"`             // 客户端UA
	Action    string    `gorm:"index;not null" json:"action"`            // 动作枚举
	Success   bool      `gorm:"index" json:"success"`                    // 是否成功
	Timestamp time.Time `gorm:"index" json:"timestamp"`                  // 记录时间
}

// TableName 指定表名
func (AccessLog) TableName() string {
	return "access_logs"
}
