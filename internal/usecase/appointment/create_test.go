package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

// fakeRepo mirrors the store contract: CreateBooked re-checks the day's
// booked slots atomically with the insert, here under a single mutex.
type fakeRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*models.Appointment

	createBookedErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uint]*models.Appointment{}}
}

func (f *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.items[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) GetForUser(ctx context.Context, id, userID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.items[id]
	if !ok || ap.UserID != userID {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range f.items {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookedStartsForDay(ctx context.Context, doctorID uint, dayStart, dayEnd time.Time) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookedStartsLocked(doctorID, dayStart, dayEnd), nil
}

func (f *fakeRepo) bookedStartsLocked(doctorID uint, dayStart, dayEnd time.Time) []time.Time {
	var starts []time.Time
	for _, ap := range f.items {
		if ap.DoctorID != doctorID || ap.Status != string(domain.StatusBooked) {
			continue
		}
		if ap.AppointmentDate.Before(dayStart) || !ap.AppointmentDate.Before(dayEnd) {
			continue
		}
		starts = append(starts, ap.AppointmentDate)
	}
	return starts
}

func (f *fakeRepo) CreateBooked(ctx context.Context, ap *models.Appointment, slotDuration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createBookedErr != nil {
		return f.createBookedErr
	}

	dayStart, dayEnd := domain.DayBounds(ap.AppointmentDate)
	starts := f.bookedStartsLocked(ap.DoctorID, dayStart, dayEnd)

	if !domain.IsBookable(ap.AppointmentDate, starts, slotDuration) {
		return httperr.ErrSlotUnavailable("slot_unavailable", "This time slot is already booked.")
	}

	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.items[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[ap.ID]; !ok {
		return errors.New("record not found")
	}
	cp := *ap
	f.items[ap.ID] = &cp
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

var testNow = time.Date(2026, time.March, 9, 12, 0, 0, 0, time.Local)

func slotAt(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.Local)
}

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	uc := NewCreateAppointment(repo, 30*time.Minute)
	uc.now = func() time.Time { return testNow }
	return uc
}

// ======================================================
// TESTS
// ======================================================

func TestCreateAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:          1,
		DoctorID:        7,
		AppointmentDate: slotAt(9, 0),
		Notes:           "first visit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.ID == 0 {
		t.Error("expected assigned id")
	}
	if ap.Status != string(domain.StatusBooked) {
		t.Errorf("expected status booked, got %s", ap.Status)
	}
}

func TestCreateAppointment_MissingReferences(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		DoctorID:        7,
		AppointmentDate: slotAt(9, 0),
	})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateAppointment_ZeroDate(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:   1,
		DoctorID: 7,
	})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateAppointment_PastDate(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:          1,
		DoctorID:        7,
		AppointmentDate: testNow.Add(-time.Hour),
	})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateAppointment_OverlappingSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, DoctorID: 7, AppointmentDate: slotAt(9, 0),
	}); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 2, DoctorID: 7, AppointmentDate: slotAt(9, 15),
	})
	if !httperr.IsKind(err, httperr.KindSlotUnavailable) {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
}

func TestCreateAppointment_OtherDoctorSameSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, DoctorID: 7, AppointmentDate: slotAt(9, 0),
	}); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	if _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, DoctorID: 8, AppointmentDate: slotAt(9, 0),
	}); err != nil {
		t.Fatalf("different doctor must not conflict: %v", err)
	}
}

func TestCreateAppointment_CancelledSlotReopens(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, DoctorID: 7, AppointmentDate: slotAt(9, 0),
	})
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	cancelUC := NewCancelAppointment(repo)
	cancelUC.now = func() time.Time { return testNow }
	if _, err := cancelUC.Execute(context.Background(), ap.ID, 1); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 2, DoctorID: 7, AppointmentDate: slotAt(9, 0),
	}); err != nil {
		t.Fatalf("cancelled slot must be bookable again: %v", err)
	}
}

func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	const n = 20

	var wg sync.WaitGroup
	results := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateAppointmentInput{
				UserID:          userID,
				DoctorID:        7,
				AppointmentDate: slotAt(10, 0),
			})
			results <- err
		}(uint(i + 1))
	}

	wg.Wait()
	close(results)

	var ok, conflict int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case httperr.IsKind(err, httperr.KindSlotUnavailable):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if ok != 1 {
		t.Errorf("expected exactly one successful booking, got %d", ok)
	}
	if conflict != n-1 {
		t.Errorf("expected %d conflicts, got %d", n-1, conflict)
	}
}

func TestCreateAppointment_ConcurrentOverlappingStarts(t *testing.T) {
	// Distinct starts whose 30-minute intervals all intersect. A store that
	// only rejects identical starts would let more than one through; the
	// serialized re-check must leave exactly one booked.
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	// pairwise overlapping: every pair of starts is less than 30 minutes apart
	starts := []time.Time{
		slotAt(10, 0), slotAt(10, 5), slotAt(10, 15), slotAt(10, 25),
	}

	var wg sync.WaitGroup
	results := make(chan error, len(starts))

	for i, start := range starts {
		wg.Add(1)
		go func(userID uint, start time.Time) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateAppointmentInput{
				UserID:          userID,
				DoctorID:        7,
				AppointmentDate: start,
			})
			results <- err
		}(uint(i+1), start)
	}

	wg.Wait()
	close(results)

	var ok int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case httperr.IsKind(err, httperr.KindSlotUnavailable):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if ok != 1 {
		t.Errorf("expected exactly one booking among overlapping starts, got %d", ok)
	}

	day1, day2 := domain.DayBounds(slotAt(10, 0))
	booked, _ := repo.ListBookedStartsForDay(context.Background(), 7, day1, day2)
	if len(booked) != 1 {
		t.Errorf("expected one persisted booked slot, got %d", len(booked))
	}
}
