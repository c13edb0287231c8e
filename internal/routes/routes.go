package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/quikka/quikka-api/internal/config"
	"github.com/quikka/quikka-api/internal/handlers"
	infraRepo "github.com/quikka/quikka-api/internal/infra/repository"
	"github.com/quikka/quikka-api/internal/middleware"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/notify"
	"github.com/quikka/quikka-api/internal/storage"
	"github.com/quikka/quikka-api/internal/tokens"
	ucAvailability "github.com/quikka/quikka-api/internal/usecase/availability"
	ucBooking "github.com/quikka/quikka-api/internal/usecase/booking"
	"github.com/quikka/quikka-api/internal/validators"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	validators.RegisterBindings()

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	settingsRepo := infraRepo.NewSettingsGormRepository(db, cfg.Policy)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	revoker := tokens.NewRevoker(rdb, log)

	mailer := notify.NewLogMailer(log)
	notifier := notify.NewDispatcher(mailer, log)

	imageStore := storage.NewImageStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilitySvc := ucAvailability.NewService(availabilityRepo)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, settingsRepo, cfg.Policy, notifier)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, cfg.Policy, notifier)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, notifier)
	rescheduleUC := ucBooking.NewRescheduleBooking(bookingRepo, settingsRepo, cfg.Policy, notifier)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo)
	listSlotsUC := ucBooking.NewListSlots(bookingRepo, cfg.Policy)
	noShowSweepUC := ucBooking.NewNoShowSweep(bookingRepo, settingsRepo, notifier, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, revoker)
	meHandler := handlers.NewMeHandler(db)
	stylistHandler := handlers.NewStylistHandler(db, listSlotsUC)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)
	profileImageHandler := handlers.NewProfileImageHandler(db, imageStore)
	jobsHandler := handlers.NewJobsHandler(noShowSweepUC)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		updateBookingUC,
		updateStatusUC,
		rescheduleUC,
		deleteBookingUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/stylists", stylistHandler.List)
		api.GET("/stylists/:id", stylistHandler.Get)
		api.GET("/stylists/:id/slots", stylistHandler.Slots)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, revoker))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/availability", availabilityHandler.List)
			secured.PUT("/me/availability/:weekday", availabilityHandler.Upsert)
			secured.DELETE("/me/availability/:weekday", availabilityHandler.Disable)

			secured.POST("/me/profile-image", profileImageHandler.Upload)

			secured.GET("/me/settings", settingsHandler.Get)
			secured.PATCH("/me/settings", settingsHandler.Update)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/bookings/:id", bookingHandler.Get)
			secured.PATCH("/me/bookings/:id", bookingHandler.Update)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)
			secured.PATCH("/me/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.PATCH("/me/bookings/:id/reschedule", bookingHandler.Reschedule)
			secured.GET("/me/bookings/:id/history", bookingHandler.History)

			// ------------------------------
			// BATCH JOBS (external scheduler)
			// ------------------------------
			jobs := secured.Group("/jobs")
			jobs.Use(middleware.RequireRole(models.RoleAdmin))
			{
				jobs.POST("/no-show-sweep", jobsHandler.NoShowSweep)
			}
		}
	}
}
