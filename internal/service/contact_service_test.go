package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bolder-electric/internal/models"
	"github.com/bolder-electric/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupContactServiceTest(t *testing.T) (*ContactService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:contact_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ContactInfo{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewContactService(repository.NewContactInfoRepository(db)), db
}

func TestContactSaveAndGet(t *testing.T) {
	svc, _ := setupContactServiceTest(t)

	info, err := svc.Get()
	if err != nil {
		t.Fatalf("get contact failed: %v", err)
	}
	if info != nil {
		t.Fatalf("expected no contact info yet, got %+v", info)
	}

	saved, err := svc.Save(ContactInput{
		Phone:         "(951) 397-4025",
		Email:         "info@bolderelectric.com",
		Address:       "Riverside, CA",
		ServiceArea:   "Riverside County",
		BusinessHours: "Mon-Fri 8:00 AM - 5:00 PM",
	})
	if err != nil {
		t.Fatalf("save contact failed: %v", err)
	}
	if saved.Phone != "(951) 397-4025" {
		t.Fatalf("unexpected saved contact: %+v", saved)
	}

	info, err = svc.Get()
	if err != nil {
		t.Fatalf("get contact failed: %v", err)
	}
	if info == nil || info.Email != "info@bolderelectric.com" {
		t.Fatalf("unexpected contact info: %+v", info)
	}
}

func TestContactSaveOverwritesSingleRow(t *testing.T) {
	svc, db := setupContactServiceTest(t)

	if _, err := svc.Save(ContactInput{Phone: "(951) 397-4025"}); err != nil {
		t.Fatalf("save contact failed: %v", err)
	}
	if _, err := svc.Save(ContactInput{Phone: "(951) 555-0000", Email: "new@bolderelectric.com"}); err != nil {
		t.Fatalf("save contact failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.ContactInfo{}).Count(&count).Error; err != nil {
		t.Fatalf("count contact rows failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single contact row, got %d", count)
	}

	info, err := svc.Get()
	if err != nil {
		t.Fatalf("get contact failed: %v", err)
	}
	if info.Phone != "(951) 555-0000" || info.Email != "new@bolderelectric.com" {
		t.Fatalf("unexpected contact info: %+v", info)
	}
}

func TestContactSaveValidation(t *testing.T) {
	svc, _ := setupContactServiceTest(t)

	if _, err := svc.Save(ContactInput{Address: "Riverside, CA"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}
