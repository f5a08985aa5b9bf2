package appointment

import (
	"context"
	"time"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
)

type GetAvailability struct {
	repo         domain.Repository
	slotDuration time.Duration
	clinicOpen   string // "15:04"
	clinicClose  string // "15:04"
}

func NewGetAvailability(
	repo domain.Repository,
	slotDuration time.Duration,
	clinicOpen string,
	clinicClose string,
) *GetAvailability {
	return &GetAvailability{
		repo:         repo,
		slotDuration: slotDuration,
		clinicOpen:   clinicOpen,
		clinicClose:  clinicClose,
	}
}

// Execute walks the clinic day in slotDuration steps and returns every slot
// not already booked for the doctor on that date.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]domain.TimeSlot, error) {

	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayOpen := parseHM(uc.clinicOpen)
	dayClose := parseHM(uc.clinicClose)

	dayStart, dayEnd := domain.DayBounds(date)

	booked, err := uc.repo.ListBookedStartsForDay(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := []domain.TimeSlot{}

	for cur := dayOpen; !cur.Add(uc.slotDuration).After(dayClose); cur = cur.Add(uc.slotDuration) {
		if !domain.IsBookable(cur, booked, uc.slotDuration) {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start: cur.Format("15:04"),
			End:   cur.Add(uc.slotDuration).Format("15:04"),
		})
	}

	return slots, nil
}
