package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookmyconsultation/consult-scheduler/internal/cache"
	domain "github.com/bookmyconsultation/consult-scheduler/internal/domain/rating"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

// DoctorGormRepository backs the doctor directory and is the single write
// path for the derived rating field. Reads go through the redis cache when
// one is attached.
type DoctorGormRepository struct {
	db    *gorm.DB
	cache *cache.DoctorCache
}

func NewDoctorGormRepository(db *gorm.DB, c *cache.DoctorCache) *DoctorGormRepository {
	return &DoctorGormRepository{db: db, cache: c}
}

func (r *DoctorGormRepository) List(
	ctx context.Context,
	specialization string,
) ([]models.Doctor, error) {

	q := r.db.WithContext(ctx).Preload("Address")
	if specialization != "" {
		q = q.Where("specialization = ?", specialization)
	}

	var doctors []models.Doctor
	if err := q.Order("name ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	if r.cache != nil {
		if doc, ok := r.cache.Get(ctx, id); ok {
			return doc, nil
		}
	}

	var doc models.Doctor
	if err := r.db.WithContext(ctx).Preload("Address").First(&doc, id).Error; err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(ctx, &doc)
	}
	return &doc, nil
}

func (r *DoctorGormRepository) Create(
	ctx context.Context,
	doc *models.Doctor,
) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *DoctorGormRepository) Update(
	ctx context.Context,
	doc *models.Doctor,
) error {
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return err
	}
	if r.cache != nil {
		r.cache.Invalidate(ctx, doc.ID)
	}
	return nil
}

func (r *DoctorGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	if err := r.db.WithContext(ctx).Delete(&models.Doctor{}, id).Error; err != nil {
		return err
	}
	if r.cache != nil {
		r.cache.Invalidate(ctx, id)
	}
	return nil
}

// UpdateRating writes the derived mean. Update-only: a missing doctor is an
// error, never an upsert.
func (r *DoctorGormRepository) UpdateRating(
	ctx context.Context,
	doctorID uint,
	value float64,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", doctorID).
		Update("rating", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if r.cache != nil {
		r.cache.Invalidate(ctx, doctorID)
	}
	return nil
}

// Compile-time check
var _ domain.DoctorStore = (*DoctorGormRepository)(nil)
