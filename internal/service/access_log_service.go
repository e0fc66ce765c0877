package service

import (
	"time"

	"github.com/bolder-electric/internal/logger"
	"github.com/bolder-electric/internal/models"
	"github.com/bolder-electric/internal/repository"
)

// AccessLogService 后台访问审计服务
type AccessLogService struct {
	accessLogRepo repository.AccessLogRepository
}

// NewAccessLogService 创建访问审计服务实例
func NewAccessLogService(accessLogRepo repository.AccessLogRepository) *AccessLogService {
	return &AccessLogService{accessLogRepo: accessLogRepo}
}

// Record 追加一条访问日志
// 写入失败只告警不上抛，审计日志不阻断登录主流程。
func (s *AccessLogService) Record(username, ip, userAgent, action string, success bool) {
	if s == nil || s.accessLogRepo == nil {
		return
	}
	entry := &models.AccessLog{
		Username:  username,
		IPAddress: ip,
		UserAgent: userAgent,
		Action:    action,
		Success:   success,
		Timestamp: time.Now(),
	}
	if err := s.accessLogRepo.Create(entry); err != nil {
		logger.Warnw("access_log_write_failed",
			"username", username,
			"action", action,
			"error", err,
		)
	}
}

// Recent 按时间倒序返回最近的访问日志
func (s *AccessLogService) Recent(limit int) ([]models.AccessLog, error) {
	return s.accessLogRepo.ListRecent(limit)
}
