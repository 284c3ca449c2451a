package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/config"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-agenda/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/barber-agenda/internal/usecase/availability"
	ucSchedule "github.com/BruksfildServices01/barber-agenda/internal/usecase/schedule"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   *slog.Logger
	Clock    timezone.Clock
	Locker   lock.Locker
	Audit    *audit.Dispatcher
	Notifier *domain.Notifier
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(d.Logger))
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	catalog := infraRepo.NewCatalogGormRepository(d.DB)
	hoursRepo := infraRepo.NewWorkingHoursGormRepository(d.DB)
	exceptionRepo := infraRepo.NewExceptionGormRepository(d.DB)
	blockRepo := infraRepo.NewBlockGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES - AVAILABILITY
	// ======================================================
	computeAvailabilityUC := ucAvailability.NewComputeAvailability(
		ucAvailability.Stores{
			Catalog:    catalog,
			Hours:      hoursRepo,
			Exceptions: exceptionRepo,
			Blocks:     blockRepo,
			Bookings:   appointmentRepo,
		},
		d.Clock,
		ucAvailability.Options{
			SlotStep:      d.Config.SlotStep,
			BookingLength: d.Config.DefaultBookingLength,
		},
	)

	// ======================================================
	// 🧠 USE CASES - SCHEDULE
	// ======================================================
	createBlockUC := ucSchedule.NewCreateBlock(catalog, blockRepo, d.Locker, d.Audit)

	scheduleUC := handlers.ScheduleUseCases{
		SetHours:        ucSchedule.NewSetWorkingHours(catalog, hoursRepo),
		DeactivateHours: ucSchedule.NewDeactivateWorkingHours(catalog, hoursRepo),
		ListHours:       ucSchedule.NewListWorkingHours(catalog, hoursRepo),
		CreateException: ucSchedule.NewCreateException(catalog, exceptionRepo, d.Locker, d.Audit),
		RemoveException: ucSchedule.NewRemoveException(catalog, exceptionRepo, d.Audit),
		CreateBlock:     createBlockUC,
		FullDayBlock:    ucSchedule.NewCreateFullDayBlock(hoursRepo, createBlockUC),
		BatchBlocks:     ucSchedule.NewCreateBlocksBatch(catalog, blockRepo, d.Locker, d.Audit),
		RemoveBlock:     ucSchedule.NewRemoveBlock(catalog, blockRepo, d.Locker, d.Audit),
		ListBlocks:      ucSchedule.NewListBlocks(catalog, blockRepo),
	}

	// ======================================================
	// 🧠 USE CASES - APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		catalog,
		d.Locker,
		d.Clock,
		d.Audit,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		d.Notifier,
		d.Clock,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
		d.Clock,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
		d.Clock,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(computeAvailabilityUC, catalog, d.Clock)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		d.Clock,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), d.Clock)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/availability", availabilityHandler.ForPublic)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/availability", availabilityHandler.ForTenant)

			// ------------------------------
			// WORKING HOURS / EXCEPTIONS
			// ------------------------------
			secured.GET("/me/working-hours", scheduleHandler.GetWorkingHours)
			secured.PUT("/me/working-hours", scheduleHandler.UpdateWorkingHours)
			secured.DELETE("/me/working-hours/:weekday", scheduleHandler.DeactivateWorkingHours)

			secured.POST("/me/exceptions", scheduleHandler.CreateException)
			secured.DELETE("/me/exceptions/:id", scheduleHandler.RemoveException)

			// ------------------------------
			// BLOCKS
			// ------------------------------
			secured.GET("/me/blocks", scheduleHandler.ListBlocks)
			secured.POST("/me/blocks", scheduleHandler.CreateBlock)
			secured.POST("/me/blocks/full-day", scheduleHandler.CreateFullDayBlock)
			secured.POST("/me/blocks/batch", scheduleHandler.CreateBlocksBatch)
			secured.DELETE("/me/blocks/:id", scheduleHandler.RemoveBlock)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
