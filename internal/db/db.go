package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bookmyconsultation/consult-scheduler/internal/config"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Rating{},
	); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Backstop for the booking race: two concurrent inserts of the same
	// slot start for one doctor cannot both commit. Partial indexes are
	// outside AutoMigrate's vocabulary.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_booked_slot
        ON appointments (doctor_id, appointment_date)
        WHERE status = 'booked'
    `)

	return db
}
