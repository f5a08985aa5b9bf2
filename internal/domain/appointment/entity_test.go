package appointment

import (
	"testing"
	"time"

	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

func futureAppointment(status Status) *models.Appointment {
	return &models.Appointment{
		ID:              1,
		UserID:          1,
		DoctorID:        1,
		AppointmentDate: time.Now().Add(48 * time.Hour),
		Status:          string(status),
	}
}

func TestCancel_Booked(t *testing.T) {
	ap := futureAppointment(StatusBooked)
	now := time.Now()

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(StatusCancelled) {
		t.Errorf("expected status cancelled, got %s", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Error("expected CancelledAt to be set")
	}
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	ap := futureAppointment(StatusCancelled)

	err := Cancel(ap, time.Now())
	if !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestCancel_Completed(t *testing.T) {
	ap := futureAppointment(StatusCompleted)

	err := Cancel(ap, time.Now())
	if !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestCancel_PastAppointment(t *testing.T) {
	ap := futureAppointment(StatusBooked)
	ap.AppointmentDate = time.Now().Add(-time.Hour)

	err := Cancel(ap, time.Now())
	if !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Fatalf("expected invalid_state for past appointment, got %v", err)
	}
	if ap.Status != string(StatusBooked) {
		t.Errorf("status must not change on failed cancel, got %s", ap.Status)
	}
}

func TestComplete_Booked(t *testing.T) {
	ap := futureAppointment(StatusBooked)
	now := time.Now()

	if err := Complete(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(StatusCompleted) {
		t.Errorf("expected status completed, got %s", ap.Status)
	}
	if ap.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}
}

func TestComplete_PastAppointment(t *testing.T) {
	// no date check on completion
	ap := futureAppointment(StatusBooked)
	ap.AppointmentDate = time.Now().Add(-24 * time.Hour)

	if err := Complete(ap, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestComplete_TerminalStates(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		ap := futureAppointment(status)

		err := Complete(ap, time.Now())
		if !httperr.IsKind(err, httperr.KindInvalidState) {
			t.Errorf("complete from %s: expected invalid_state, got %v", status, err)
		}
	}
}

func TestIsRatable(t *testing.T) {
	if !IsRatable(StatusBooked) {
		t.Error("booked appointments are ratable")
	}
	if !IsRatable(StatusCompleted) {
		t.Error("completed appointments are ratable")
	}
	if IsRatable(StatusCancelled) {
		t.Error("cancelled appointments are not ratable")
	}
}
