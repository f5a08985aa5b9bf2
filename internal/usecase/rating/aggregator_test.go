package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

func seedRatings(store *fakeRatingStore, doctorID uint, values ...int) {
	for i, v := range values {
		store.Create(context.Background(), &models.Rating{
			UserID:        1,
			DoctorID:      doctorID,
			AppointmentID: uint(100 + i),
			Rating:        v,
		})
	}
}

func TestAggregator_Recompute(t *testing.T) {
	store := newFakeRatingStore()
	doctors := newFakeDoctorStore()
	seedRatings(store, 7, 3, 4, 5)

	agg := NewAggregator(store, doctors)

	mean, err := agg.Recompute(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean != 4.0 {
		t.Errorf("expected mean 4.0, got %v", mean)
	}
	if persisted := <-doctors.updated; persisted != 4.0 {
		t.Errorf("expected persisted mean 4.0, got %v", persisted)
	}
}

func TestAggregator_NoRatings(t *testing.T) {
	store := newFakeRatingStore()
	doctors := newFakeDoctorStore()

	agg := NewAggregator(store, doctors)

	mean, err := agg.Recompute(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean != 0 {
		t.Errorf("expected mean 0 for empty rating set, got %v", mean)
	}
	if persisted := <-doctors.updated; persisted != 0 {
		t.Errorf("expected persisted 0, got %v", persisted)
	}
}

func TestAggregator_IgnoresOtherDoctors(t *testing.T) {
	store := newFakeRatingStore()
	doctors := newFakeDoctorStore()
	seedRatings(store, 7, 5)
	seedRatings(store, 8, 1, 1, 1)

	agg := NewAggregator(store, doctors)

	mean, err := agg.Recompute(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mean != 5.0 {
		t.Errorf("expected mean 5.0, got %v", mean)
	}
}

func TestAggregator_ListFailure(t *testing.T) {
	store := newFakeRatingStore()
	store.listErr = errors.New("db down")
	doctors := newFakeDoctorStore()

	agg := NewAggregator(store, doctors)

	if _, err := agg.Recompute(context.Background(), 7); err == nil {
		t.Fatal("expected load failure to surface")
	}

	select {
	case <-doctors.updated:
		t.Error("must not persist a mean when loading ratings failed")
	default:
	}
}

func TestAggregator_PersistFailure(t *testing.T) {
	store := newFakeRatingStore()
	seedRatings(store, 7, 4)
	doctors := newFakeDoctorStore()
	doctors.updateErr = errors.New("doctor gone")

	agg := NewAggregator(store, doctors)

	if _, err := agg.Recompute(context.Background(), 7); err == nil {
		t.Fatal("expected persist failure to surface")
	}
}
