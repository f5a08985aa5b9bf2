package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
)

func TestGetAvailability_EmptyDay(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo(), 30*time.Minute, "09:00", "11:00")

	slots, err := uc.Execute(context.Background(), 7, slotAt(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "09:30", End: "10:00"},
		{Start: "10:00", End: "10:30"},
		{Start: "10:30", End: "11:00"},
	}

	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: got %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestGetAvailability_SkipsBookedSlot(t *testing.T) {
	repo := newFakeRepo()

	createUC := newCreateUC(repo)
	if _, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, DoctorID: 7, AppointmentDate: slotAt(9, 30),
	}); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	uc := NewGetAvailability(repo, 30*time.Minute, "09:00", "10:30")

	slots, err := uc.Execute(context.Background(), 7, slotAt(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "10:00", End: "10:30"},
	}

	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: got %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestGetAvailability_OtherDoctorUnaffected(t *testing.T) {
	repo := newFakeRepo()

	createUC := newCreateUC(repo)
	if _, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, DoctorID: 8, AppointmentDate: slotAt(9, 0),
	}); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	uc := NewGetAvailability(repo, 30*time.Minute, "09:00", "10:00")

	slots, err := uc.Execute(context.Background(), 7, slotAt(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("expected full availability for doctor 7, got %v", slots)
	}
}
