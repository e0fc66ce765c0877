package service

import (
	"context"
	"errors"
	"time"

	"github.com/bolder-electric/internal/cache"
	"github.com/bolder-electric/internal/config"
	"github.com/bolder-electric/internal/constants"
	"github.com/bolder-electric/internal/models"
	pwhash "github.com/bolder-electric/internal/password"
	"github.com/bolder-electric/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// 登录结果提示文案，返回给前端原样展示
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgAccountLocked      = "Account locked due to too many failed attempts"
	MsgAccountDisabled    = "Account is disabled"
	MsgLoginSuccess       = "Login successful"
)

// 锁定策略缺省值，配置缺失时兜底
const (
	defaultMaxFailedAttempts = 5
	defaultLockMinutes       = 30
)

// AuthService 后台认证服务
type AuthService struct {
	cfg        *config.Config
	adminRepo  repository.AdminUserRepository
	accessLogs *AccessLogService
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, adminRepo repository.AdminUserRepository, accessLogs *AccessLogService) *AuthService {
	return &AuthService{
		cfg:        cfg,
		adminRepo:  adminRepo,
		accessLogs: accessLogs,
	}
}

// LoginResult 一次登录尝试的结论
type LoginResult struct {
	Success   bool
	Message   string
	Admin     *models.AdminUser
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) maxFailedAttempts() int {
	if s.cfg != nil && s.cfg.Security.Lockout.MaxFailedAttempts > 0 {
		return s.cfg.Security.Lockout.MaxFailedAttempts
	}
	return defaultMaxFailedAttempts
}

func (s *AuthService) lockDuration() time.Duration {
	minutes := defaultLockMinutes
	if s.cfg != nil && s.cfg.Security.Lockout.LockMinutes > 0 {
		minutes = s.cfg.Security.Lockout.LockMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// loginOutcome 事务内判定的登录结论，日志与文案在事务外统一处理
type loginOutcome int

const (
	outcomeUnknownUser loginOutcome = iota
	outcomeLocked
	outcomeDisabled
	outcomeWrongPassword
	outcomeSuccess
)

// VerifyLogin 校验登录凭据并推进失败计数状态机
// 查找、比对、计数更新在同一事务内按账号行锁串行化，
// 避免并发失败尝试用旧计数覆盖写导致锁定阈值被绕过。
// 未知账号与密码错误返回同一文案，不暴露账号是否存在。
func (s *AuthService) VerifyLogin(username, password, ip, userAgent string) (*LoginResult, error) {
	var admin *models.AdminUser
	var outcome loginOutcome

	err := s.adminRepo.Transaction(func(tx *gorm.DB) error {
		account, err := s.adminRepo.GetByUsernameForUpdate(tx, username)
		if err != nil {
			return err
		}
		if account == nil {
			outcome = outcomeUnknownUser
			return nil
		}
		admin = account
		now := time.Now()

		if account.LockedAt(now) {
			outcome = outcomeLocked
			return nil
		}
		if !account.IsActive {
			outcome = outcomeDisabled
			return nil
		}

		if pwhash.Verify(account.PasswordHash, account.Salt, password) {
			outcome = outcomeSuccess
			account.FailedAttempts = 0
			account.LockedUntil = nil
			account.LastLoginAt = &now
			return s.adminRepo.UpdateTx(tx, account)
		}

		outcome = outcomeWrongPassword
		account.FailedAttempts++
		if account.FailedAttempts >= s.maxFailedAttempts() {
			lockedUntil := now.Add(s.lockDuration())
			account.LockedUntil = &lockedUntil
		}
		return s.adminRepo.UpdateTx(tx, account)
	})
	if err != nil {
		return nil, err
	}

	switch outcome {
	case outcomeUnknownUser:
		s.accessLogs.Record(username, ip, userAgent, constants.AccessActionLoginAttempt, false)
		return &LoginResult{Success: false, Message: MsgInvalidCredentials}, nil
	case outcomeLocked:
		s.accessLogs.Record(username, ip, userAgent, constants.AccessActionLoginLocked, false)
		return &LoginResult{Success: false, Message: MsgAccountLocked}, nil
	case outcomeDisabled:
		s.accessLogs.Record(username, ip, userAgent, constants.AccessActionLoginInactive, false)
		return &LoginResult{Success: false, Message: MsgAccountDisabled}, nil
	case outcomeWrongPassword:
		s.accessLogs.Record(username, ip, userAgent, constants.AccessActionLoginFailed, false)
		return &LoginResult{Success: false, Message: MsgInvalidCredentials}, nil
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, err
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	s.accessLogs.Record(username, ip, userAgent, constants.AccessActionLoginSuccess, true)

	return &LoginResult{
		Success:   true,
		Message:   MsgLoginSuccess,
		Admin:     admin,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout 记录登出审计
func (s *AuthService) Logout(admin *models.AdminUser, ip, userAgent string) {
	if admin == nil {
		return
	}
	s.accessLogs.Record(admin.Username, ip, userAgent, constants.AccessActionLogout, true)
}

// ValidatePassword 校验新密码是否符合策略
func (s *AuthService) ValidatePassword(password string) error {
	if s == nil || s.cfg == nil {
		return nil
	}
	return validatePassword(s.cfg.Security.PasswordPolicy, password)
}

// ChangePassword 修改管理员密码
// 先以完整登录校验流程复核当前密码，通过后换新盐重哈希，
// 并递增 Token 版本让已签发的 Token 全部失效。
func (s *AuthService) ChangePassword(adminID uint, currentPassword, newPassword, confirmPassword, ip, userAgent string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}

	result, err := s.VerifyLogin(admin.Username, currentPassword, ip, userAgent)
	if err != nil {
		return err
	}
	if !result.Success {
		return ErrInvalidPassword
	}

	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, salt, err := pwhash.HashWithNewSalt(newPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	admin.PasswordHash = hash
	admin.Salt = salt
	admin.FailedAttempts = 0
	admin.LockedUntil = nil
	admin.TokenVersion++
	admin.TokenInvalidBefore = &now
	if err := s.adminRepo.Update(admin); err != nil {
		return err
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	s.accessLogs.Record(admin.Username, ip, userAgent, constants.AccessActionPasswordReset, true)
	return nil
}

// JWTClaims JWT 声明
type JWTClaims struct {
	AdminID      uint   `json:"admin_id"`
	Username     string `json:"username"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// GenerateJWT 生成 JWT Token
func (s *AuthService) GenerateJWT(admin *models.AdminUser) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)

	claims := JWTClaims{
		AdminID:      admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT 解析 JWT Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GetAdmin 根据 ID 获取管理员账号
func (s *AuthService) GetAdmin(adminID uint) (*models.AdminUser, error) {
	return s.adminRepo.GetByID(adminID)
}
