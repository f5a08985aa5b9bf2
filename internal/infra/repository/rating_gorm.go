package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/rating"
	"github.com/bookmyconsultation/consult-scheduler/internal/httperr"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

type RatingGormRepository struct {
	db *gorm.DB
}

func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{db: db}
}

// --------------------------------------------------
// Ratings
// --------------------------------------------------

func (r *RatingGormRepository) ListByDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Rating, error) {

	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Rating, error) {

	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Rating, error) {

	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingGormRepository) GetByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Rating, error) {

	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&rating).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingGormRepository) GetRatableAppointment(
	ctx context.Context,
	appointmentID uint,
	userID uint,
	doctorID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"id = ? AND user_id = ? AND doctor_id = ?",
			appointmentID, userID, doctorID,
		).
		First(&ap).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *RatingGormRepository) Create(
	ctx context.Context,
	rating *models.Rating,
) error {
	err := r.db.WithContext(ctx).Create(rating).Error
	if err != nil && isUniqueViolation(err) {
		return httperr.ErrValidation("already_rated", "You have already rated this appointment.")
	}
	return err
}

func (r *RatingGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Rating{}, id).Error
}

// Compile-time check
var _ domain.Store = (*RatingGormRepository)(nil)
