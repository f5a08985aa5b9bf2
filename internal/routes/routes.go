package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmyconsultation/consult-scheduler/internal/cache"
	"github.com/bookmyconsultation/consult-scheduler/internal/config"
	"github.com/bookmyconsultation/consult-scheduler/internal/handlers"
	infraRepo "github.com/bookmyconsultation/consult-scheduler/internal/infra/repository"
	"github.com/bookmyconsultation/consult-scheduler/internal/middleware"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
	ucAppointment "github.com/bookmyconsultation/consult-scheduler/internal/usecase/appointment"
	ucRating "github.com/bookmyconsultation/consult-scheduler/internal/usecase/rating"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, doctorCache *cache.DoctorCache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	ratingRepo := infraRepo.NewRatingGormRepository(db)
	doctorRepo := infraRepo.NewDoctorGormRepository(db, doctorCache)

	aggregator := ucRating.NewAggregator(ratingRepo, doctorRepo)
	recomputeDispatcher := ucRating.NewDispatcher(aggregator, cfg.RecomputeQueueSize)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		cfg.SlotDuration(),
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointmentsByUser(appointmentRepo)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.SlotDuration(),
		cfg.ClinicOpen,
		cfg.ClinicClose,
	)

	// ======================================================
	// USE CASES — RATINGS
	// ======================================================
	createRatingUC := ucRating.NewCreateRating(ratingRepo, recomputeDispatcher)
	deleteRatingUC := ucRating.NewDeleteRating(ratingRepo, recomputeDispatcher)
	listRatingsByDoctorUC := ucRating.NewListRatingsByDoctor(ratingRepo)
	listRatingsByUserUC := ucRating.NewListRatingsByUser(ratingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	addressHandler := handlers.NewAddressHandler(db)
	doctorHandler := handlers.NewDoctorHandler(doctorRepo, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
	)

	ratingHandler := handlers.NewRatingHandler(
		createRatingUC,
		deleteRatingUC,
		listRatingsByDoctorUC,
		listRatingsByUserUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/users/register", authHandler.Register)
		api.POST("/users/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/:id", doctorHandler.GetByID)
		api.GET("/doctors/:id/availability", doctorHandler.Availability)
		api.GET("/ratings/doctor/:doctorId", ratingHandler.ListByDoctor)

		// ------------------------------
		// PROTECTED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users/profile", userHandler.GetProfile)

			secured.GET("/addresses", addressHandler.ListMine)
			secured.POST("/addresses", addressHandler.Create)
			secured.GET("/addresses/:id", addressHandler.GetByID)
			secured.PUT("/addresses/:id", addressHandler.Update)
			secured.DELETE("/addresses/:id", addressHandler.Delete)

			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.POST("/ratings", ratingHandler.Submit)
			secured.GET("/ratings/user", ratingHandler.ListByUser)
			secured.DELETE("/ratings/:id", ratingHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/addresses/all", addressHandler.ListAll)

				admin.POST("/doctors", doctorHandler.Create)
				admin.PUT("/doctors/:id", doctorHandler.Update)
				admin.DELETE("/doctors/:id", doctorHandler.Delete)

				admin.PUT("/appointments/:id/complete", appointmentHandler.Complete)
			}
		}
	}
}
