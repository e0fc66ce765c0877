package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bolder-electric/internal/http/response"
	"github.com/bolder-electric/internal/models"
	"github.com/bolder-electric/internal/provider"
	"github.com/bolder-electric/internal/repository"
	"github.com/bolder-electric/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBookingHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:booking_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Service{},
		&models.Booking{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	bookingService := service.NewBookingService(bookingRepo, nil)

	h := &Handler{Container: &provider.Container{
		BookingService: bookingService,
	}}
	return h, db
}

func postBooking(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.CreateBooking(c)
	return w
}

func TestCreateBooking(t *testing.T) {
	h, db := setupBookingHandlerTest(t)
	svc := models.Service{Name: "Panel Upgrade", BasePrice: models.NewMoneyFromFloat(300), IsActive: true}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("create service failed: %v", err)
	}

	body := fmt.Sprintf(`{
		"service_id": %d,
		"customer_name": "Jane Doe",
		"customer_phone": "(951) 555-0102",
		"customer_email": "jane@example.com",
		"customer_address": "456 Oak Ave, Riverside, CA",
		"service_date": "2026-09-01",
		"time_slot": "10:00 AM",
		"description": "Upgrade to 200A panel",
		"total_price": 300
	}`, svc.ID)

	w := postBooking(t, h, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			BookingID uint   `json:"booking_id"`
			Status    string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
	if resp.Data.BookingID == 0 || resp.Data.Status != "pending" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}

	var stored models.Booking
	if err := db.First(&stored, resp.Data.BookingID).Error; err != nil {
		t.Fatalf("load booking failed: %v", err)
	}
	if stored.CustomerName != "Jane Doe" || stored.TimeSlot != "10:00 AM" {
		t.Fatalf("unexpected stored booking: %+v", stored)
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	h, _ := setupBookingHandlerTest(t)

	w := postBooking(t, h, `{"customer_name":"Jane Doe","service_date":"2026-09-01"}`)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}

func TestCreateBookingBadJSON(t *testing.T) {
	h, _ := setupBookingHandlerTest(t)

	w := postBooking(t, h, `{not json`)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}
