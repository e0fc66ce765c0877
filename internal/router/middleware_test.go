package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bolder-electric/internal/config"
	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/models"
	pwhash "github.com/bolder-electric/internal/password"
	"github.com/bolder-electric/internal/repository"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const middlewareTestSecret = "router-middleware-test-secret-0123456789"

func setupAuthMiddlewareTest(t *testing.T) (repository.AdminUserRepository, *service.AuthService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:middleware_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.AdminUser{}, &models.AccessLog{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = middlewareTestSecret
	cfg.JWT.ExpireHours = 2

	adminRepo := repository.NewAdminUserRepository(db)
	accessLogs := service.NewAccessLogService(repository.NewAccessLogRepository(db))
	authService := service.NewAuthService(cfg, adminRepo, accessLogs)
	return adminRepo, authService, db
}

func seedMiddlewareAdmin(t *testing.T, db *gorm.DB) *models.AdminUser {
	t.Helper()
	hash, salt, err := pwhash.HashWithNewSalt("Electric2024")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.AdminUser{
		Username:     "admin",
		PasswordHash: hash,
		Salt:         salt,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func newAuthTestRouter(adminRepo repository.AdminUserRepository) *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(middlewareTestSecret, adminRepo), func(c *gin.Context) {
		id, _ := c.Get("admin_id")
		c.JSON(http.StatusOK, gin.H{"admin_id": id})
	})
	return r
}

func decodeStatusCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return resp.StatusCode
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	adminRepo, authService, db := setupAuthMiddlewareTest(t)
	admin := seedMiddlewareAdmin(t, db)

	token, _, err := authService.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	r := newAuthTestRouter(adminRepo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d, body: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AdminID uint `json:"admin_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.AdminID != admin.ID {
		t.Fatalf("expected admin id %d, got %d", admin.ID, resp.AdminID)
	}
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	adminRepo, _, _ := setupAuthMiddlewareTest(t)

	r := newAuthTestRouter(adminRepo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if code := decodeStatusCode(t, w); code != response.CodeUnauthorized {
		t.Fatalf("expected unauthorized code, got %d", code)
	}
}

func TestJWTAuthMiddlewareBadToken(t *testing.T) {
	adminRepo, _, _ := setupAuthMiddlewareTest(t)

	r := newAuthTestRouter(adminRepo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if code := decodeStatusCode(t, w); code != response.CodeUnauthorized {
		t.Fatalf("expected unauthorized code, got %d", code)
	}
}

func TestJWTAuthMiddlewareRevokedByVersionBump(t *testing.T) {
	adminRepo, authService, db := setupAuthMiddlewareTest(t)
	admin := seedMiddlewareAdmin(t, db)

	token, _, err := authService.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if err := db.Model(admin).Update("token_version", admin.TokenVersion+1).Error; err != nil {
		t.Fatalf("bump token version failed: %v", err)
	}

	r := newAuthTestRouter(adminRepo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if code := decodeStatusCode(t, w); code != response.CodeUnauthorized {
		t.Fatalf("expected revoked token to be rejected, got %d", code)
	}
}

func TestJWTAuthMiddlewareDisabledAccount(t *testing.T) {
	adminRepo, authService, db := setupAuthMiddlewareTest(t)
	admin := seedMiddlewareAdmin(t, db)

	token, _, err := authService.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if err := db.Model(admin).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable admin failed: %v", err)
	}

	r := newAuthTestRouter(adminRepo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if code := decodeStatusCode(t, w); code != response.CodeUnauthorized {
		t.Fatalf("expected disabled account to be rejected, got %d", code)
	}
}

func TestCORSMiddlewareAllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{
		AllowedOrigins: []string{"https://bolderelectric.com"},
	}))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://bolderelectric.com")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://bolderelectric.com" {
		t.Fatalf("allow origin want matched origin got %q", got)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req2.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w2, req2)

	if got := w2.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unmatched origin should not be allowed, got %q", got)
	}

	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req3.Header.Set("Origin", "https://bolderelectric.com")
	r.ServeHTTP(w3, req3)

	if w3.Code != http.StatusNoContent {
		t.Fatalf("preflight status want 204 got %d", w3.Code)
	}
}
