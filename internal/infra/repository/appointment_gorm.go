package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/appointment"
	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListBookedStartsForDay(
	ctx context.Context,
	doctorID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]time.Time, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("appointment_date").
		Where(
			"doctor_id = ? AND status = ? AND appointment_date >= ? AND appointment_date < ?",
			doctorID, string(domain.StatusBooked), dayStart, dayEnd,
		).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	starts := make([]time.Time, 0, len(aps))
	for _, ap := range aps {
		starts = append(starts, ap.AppointmentDate)
	}
	return starts, nil
}

// --------------------------------------------------
// Mutation
// --------------------------------------------------

// CreateBooked closes the read-check-write race: the transaction first takes
// a per-doctor advisory lock, so concurrent bookings for the same doctor
// queue up and the conflict scan always sees every previously committed slot
// — including overlapping slots with distinct starts, which no row lock or
// unique index can catch. The partial unique index on
// (doctor_id, appointment_date) remains as a backstop for identical starts.
func (r *AppointmentGormRepository) CreateBooked(
	ctx context.Context,
	ap *models.Appointment,
	slotDuration time.Duration,
) error {

	dayStart, dayEnd := domain.DayBounds(ap.AppointmentDate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)", int64(ap.DoctorID),
		).Error; err != nil {
			return err
		}

		var existing []models.Appointment
		if err := tx.
			Select("appointment_date").
			Where(
				"doctor_id = ? AND status = ? AND appointment_date >= ? AND appointment_date < ?",
				ap.DoctorID, string(domain.StatusBooked), dayStart, dayEnd,
			).
			Find(&existing).Error; err != nil {
			return err
		}

		starts := make([]time.Time, 0, len(existing))
		for _, e := range existing {
			starts = append(starts, e.AppointmentDate)
		}

		if !domain.IsBookable(ap.AppointmentDate, starts, slotDuration) {
			return httperr.ErrSlotUnavailable("slot_unavailable", "This time slot is already booked.")
		}

		return tx.Create(ap).Error
	})

	if err != nil && isUniqueViolation(err) {
		return httperr.ErrSlotUnavailable("slot_unavailable", "This time slot is already booked.")
	}
	return err
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// isUniqueViolation reports a postgres unique_violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
