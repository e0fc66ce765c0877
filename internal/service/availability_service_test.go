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

func setupAvailabilityServiceTest(t *testing.T) (*AvailabilityService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:availability_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.TimeSlot{},
		&models.AvailabilityOverride{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	availabilityRepo := repository.NewAvailabilityRepository(db)
	timeSlotRepo := repository.NewTimeSlotRepository(db)
	return NewAvailabilityService(availabilityRepo, timeSlotRepo), db
}

func createTestSlots(t *testing.T, db *gorm.DB, labels ...string) []models.TimeSlot {
	t.Helper()
	slots := make([]models.TimeSlot, 0, len(labels))
	for _, label := range labels {
		slot := models.TimeSlot{Label: label, IsActive: true}
		if err := db.Create(&slot).Error; err != nil {
			t.Fatalf("create time slot failed: %v", err)
		}
		slots = append(slots, slot)
	}
	return slots
}

func TestGetAvailabilityDefaultsToAvailable(t *testing.T) {
	svc, db := setupAvailabilityServiceTest(t)
	createTestSlots(t, db, "8:00 AM", "9:00 AM", "1:00 PM")

	states, err := svc.GetAvailability("2026-09-01")
	if err != nil {
		t.Fatalf("get availability failed: %v", err)
	}
	if len(states) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(states))
	}
	for _, state := range states {
		if !state.IsAvailable {
			t.Fatalf("slot %q should default to available", state.Label)
		}
	}
}

func TestSetAvailabilityOverrideAndFlipBack(t *testing.T) {
	svc, db := setupAvailabilityServiceTest(t)
	slots := createTestSlots(t, db, "8:00 AM", "9:00 AM")
	target := slots[1]

	if err := svc.SetAvailability("2026-09-01", target.ID, false); err != nil {
		t.Fatalf("set unavailable failed: %v", err)
	}

	states, err := svc.GetAvailability("2026-09-01")
	if err != nil {
		t.Fatalf("get availability failed: %v", err)
	}
	for _, state := range states {
		want := state.TimeSlotID != target.ID
		if state.IsAvailable != want {
			t.Fatalf("slot %q: expected available=%v, got %v", state.Label, want, state.IsAvailable)
		}
	}

	// 其他日期不受影响
	states, err = svc.GetAvailability("2026-09-02")
	if err != nil {
		t.Fatalf("get availability failed: %v", err)
	}
	for _, state := range states {
		if !state.IsAvailable {
			t.Fatalf("slot %q on another date should stay available", state.Label)
		}
	}

	if err := svc.SetAvailability("2026-09-01", target.ID, true); err != nil {
		t.Fatalf("set available failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.AvailabilityOverride{}).
		Where("date = ? AND time_slot_id = ?", "2026-09-01", target.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count overrides failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single override row after flip, got %d", count)
	}

	states, err = svc.GetAvailability("2026-09-01")
	if err != nil {
		t.Fatalf("get availability failed: %v", err)
	}
	for _, state := range states {
		if !state.IsAvailable {
			t.Fatalf("slot %q should be available after flip back", state.Label)
		}
	}
}

func TestGetAvailabilityLexicalLabelOrder(t *testing.T) {
	svc, db := setupAvailabilityServiceTest(t)
	createTestSlots(t, db, "9:00 AM", "10:00 AM", "8:00 AM")

	states, err := svc.GetAvailability("2026-09-01")
	if err != nil {
		t.Fatalf("get availability failed: %v", err)
	}
	// 字典序排序："10:00 AM" 排在 "9:00 AM" 之前
	want := []string{"10:00 AM", "8:00 AM", "9:00 AM"}
	if len(states) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(states))
	}
	for i, label := range want {
		if states[i].Label != label {
			t.Fatalf("position %d: expected %q, got %q", i, label, states[i].Label)
		}
	}
}

func TestGetAvailabilitySkipsInactiveSlots(t *testing.T) {
	svc, db := setupAvailabilityServiceTest(t)
	slots := createTestSlots(t, db, "8:00 AM", "9:00 AM")
	if err := db.Model(&slots[0]).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate slot failed: %v", err)
	}

	states, err := svc.GetAvailability("2026-09-01")
	if err != nil {
		t.Fatalf("get availability failed: %v", err)
	}
	if len(states) != 1 || states[0].Label != "9:00 AM" {
		t.Fatalf("expected only active slot, got %+v", states)
	}
}

func TestAvailabilityValidation(t *testing.T) {
	svc, db := setupAvailabilityServiceTest(t)
	slots := createTestSlots(t, db, "8:00 AM")

	if _, err := svc.GetAvailability("09/01/2026"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for bad date, got: %v", err)
	}
	if err := svc.SetAvailability("not-a-date", slots[0].ID, false); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for bad date, got: %v", err)
	}
	if err := svc.SetAvailability("2026-09-01", 9999, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown slot, got: %v", err)
	}
}
