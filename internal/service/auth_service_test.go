package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bolder-electric/internal/config"
	"github.com/bolder-electric/internal/constants"
	"github.com/bolder-electric/internal/models"
	pwhash "github.com/bolder-electric/internal/password"
	"github.com/bolder-electric/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.AccessLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "auth-service-test-secret-key-0123456789"
	cfg.JWT.ExpireHours = 2
	cfg.Security.PasswordPolicy.MinLength = 8
	cfg.Security.PasswordPolicy.RequireNumber = true
	cfg.Security.PasswordPolicy.RequireLetter = true

	adminRepo := repository.NewAdminUserRepository(db)
	accessLogs := NewAccessLogService(repository.NewAccessLogRepository(db))
	return NewAuthService(cfg, adminRepo, accessLogs), db
}

func createTestAdmin(t *testing.T, db *gorm.DB, username, password string, active bool) *models.AdminUser {
	t.Helper()
	hash, salt, err := pwhash.HashWithNewSalt(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		IsActive:     active,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func reloadAdmin(t *testing.T, db *gorm.DB, id uint) *models.AdminUser {
	t.Helper()
	var admin models.AdminUser
	if err := db.First(&admin, id).Error; err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	return &admin
}

func lastAccessLog(t *testing.T, db *gorm.DB) *models.AccessLog {
	t.Helper()
	var entry models.AccessLog
	if err := db.Order("id DESC").First(&entry).Error; err != nil {
		t.Fatalf("load access log failed: %v", err)
	}
	return &entry
}

func TestVerifyLoginLockoutProgression(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, db, "admin", "Electric2024", true)

	for i := 1; i <= 4; i++ {
		result, err := svc.VerifyLogin("admin", "wrong", "127.0.0.1", "test-agent")
		if err != nil {
			t.Fatalf("attempt %d failed: %v", i, err)
		}
		if result.Success {
			t.Fatalf("attempt %d: expected failure", i)
		}
		if result.Message != MsgInvalidCredentials {
			t.Fatalf("attempt %d: unexpected message: %q", i, result.Message)
		}
	}

	stored := reloadAdmin(t, db, admin.ID)
	if stored.FailedAttempts != 4 {
		t.Fatalf("expected 4 failed attempts, got %d", stored.FailedAttempts)
	}
	if stored.LockedUntil != nil {
		t.Fatalf("expected no lock after 4 attempts, got %v", stored.LockedUntil)
	}

	result, err := svc.VerifyLogin("admin", "wrong", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("fifth attempt failed: %v", err)
	}
	if result.Success || result.Message != MsgInvalidCredentials {
		t.Fatalf("unexpected fifth attempt result: %+v", result)
	}

	stored = reloadAdmin(t, db, admin.ID)
	if stored.FailedAttempts != 5 {
		t.Fatalf("expected 5 failed attempts, got %d", stored.FailedAttempts)
	}
	if stored.LockedUntil == nil || !stored.LockedUntil.After(time.Now()) {
		t.Fatalf("expected future lock, got %v", stored.LockedUntil)
	}

	result, err = svc.VerifyLogin("admin", "Electric2024", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("locked attempt failed: %v", err)
	}
	if result.Success {
		t.Fatal("expected lock to reject correct password")
	}
	if result.Message != MsgAccountLocked {
		t.Fatalf("unexpected locked message: %q", result.Message)
	}
	if entry := lastAccessLog(t, db); entry.Action != constants.AccessActionLoginLocked {
		t.Fatalf("unexpected locked log action: %q", entry.Action)
	}
}

func TestVerifyLoginSuccessResetsCounters(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, db, "admin", "Electric2024", true)

	for i := 0; i < 3; i++ {
		if _, err := svc.VerifyLogin("admin", "wrong", "127.0.0.1", "test-agent"); err != nil {
			t.Fatalf("warm-up attempt failed: %v", err)
		}
	}

	result, err := svc.VerifyLogin("admin", "Electric2024", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}
	if result.Message != MsgLoginSuccess {
		t.Fatalf("unexpected success message: %q", result.Message)
	}
	if result.Token == "" {
		t.Fatal("expected token on success")
	}

	stored := reloadAdmin(t, db, admin.ID)
	if stored.FailedAttempts != 0 {
		t.Fatalf("expected counter reset, got %d", stored.FailedAttempts)
	}
	if stored.LockedUntil != nil {
		t.Fatalf("expected lock cleared, got %v", stored.LockedUntil)
	}
	if stored.LastLoginAt == nil {
		t.Fatal("expected last login timestamp")
	}
	if entry := lastAccessLog(t, db); entry.Action != constants.AccessActionLoginSuccess || !entry.Success {
		t.Fatalf("unexpected success log: %+v", entry)
	}
}

func TestVerifyLoginUnknownUser(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	result, err := svc.VerifyLogin("nobody", "whatever", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Success || result.Message != MsgInvalidCredentials {
		t.Fatalf("unexpected result: %+v", result)
	}
	if entry := lastAccessLog(t, db); entry.Action != constants.AccessActionLoginAttempt {
		t.Fatalf("unexpected log action: %q", entry.Action)
	}
}

func TestVerifyLoginDisabledAccount(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createTestAdmin(t, db, "admin", "Electric2024", false)

	result, err := svc.VerifyLogin("admin", "Electric2024", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Success || result.Message != MsgAccountDisabled {
		t.Fatalf("unexpected result: %+v", result)
	}
	if entry := lastAccessLog(t, db); entry.Action != constants.AccessActionLoginInactive {
		t.Fatalf("unexpected log action: %q", entry.Action)
	}

	stored := &models.AdminUser{}
	if err := db.Where("username = ?", "admin").First(stored).Error; err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if stored.FailedAttempts != 0 {
		t.Fatalf("disabled account should not accrue attempts, got %d", stored.FailedAttempts)
	}
}

func TestVerifyLoginLockedBeforeInactive(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, db, "admin", "Electric2024", false)
	lockedUntil := time.Now().Add(10 * time.Minute)
	if err := db.Model(admin).Update("locked_until", lockedUntil).Error; err != nil {
		t.Fatalf("set lock failed: %v", err)
	}

	result, err := svc.VerifyLogin("admin", "Electric2024", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Message != MsgAccountLocked {
		t.Fatalf("lock should win over disabled, got %q", result.Message)
	}
}

func TestVerifyLoginExpiredLock(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, db, "admin", "Electric2024", true)
	expired := time.Now().Add(-time.Minute)
	if err := db.Model(admin).Updates(map[string]interface{}{
		"failed_attempts": 5,
		"locked_until":    expired,
	}).Error; err != nil {
		t.Fatalf("seed expired lock failed: %v", err)
	}

	result, err := svc.VerifyLogin("admin", "Electric2024", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected expired lock to allow login, got %q", result.Message)
	}
}

func TestParseJWTRoundTrip(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, db, "admin", "Electric2024", true)

	token, expiresAt, err := svc.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatal("expected tampered token to fail")
	}
}

func TestChangePassword(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, db, "admin", "Electric2024", true)

	if err := svc.ChangePassword(admin.ID, "Electric2024", "NewSecret99", "Different99", "127.0.0.1", "test-agent"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected confirm mismatch, got: %v", err)
	}

	if err := svc.ChangePassword(admin.ID, "wrong", "NewSecret99", "NewSecret99", "127.0.0.1", "test-agent"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected invalid current password, got: %v", err)
	}

	if err := svc.ChangePassword(admin.ID, "Electric2024", "short", "short", "127.0.0.1", "test-agent"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password rejection, got: %v", err)
	}

	oldVersion := reloadAdmin(t, db, admin.ID).TokenVersion
	if err := svc.ChangePassword(admin.ID, "Electric2024", "NewSecret99", "NewSecret99", "127.0.0.1", "test-agent"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	stored := reloadAdmin(t, db, admin.ID)
	if stored.PasswordHash == admin.PasswordHash || stored.Salt == admin.Salt {
		t.Fatal("expected new hash and salt")
	}
	if stored.TokenVersion != oldVersion+1 {
		t.Fatalf("expected token version bump, got %d", stored.TokenVersion)
	}
	if stored.TokenInvalidBefore == nil {
		t.Fatal("expected token invalidation timestamp")
	}

	result, err := svc.VerifyLogin("admin", "Electric2024", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Success {
		t.Fatal("old password should no longer work")
	}

	result, err = svc.VerifyLogin("admin", "NewSecret99", "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("new password should work, got %q", result.Message)
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	cases := []struct {
		password string
		wantErr  bool
	}{
		{"NewSecret99", false},
		{"short1A", true},
		{"lettersonly", true},
		{"1234567890", true},
	}
	for _, tc := range cases {
		err := svc.ValidatePassword(tc.password)
		if tc.wantErr && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q: expected weak password error, got %v", tc.password, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("password %q: unexpected error: %v", tc.password, err)
		}
	}
}
