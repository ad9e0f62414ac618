package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ckreative/trainer-scheduler/internal/audit"
	"github.com/ckreative/trainer-scheduler/internal/cache"
	"github.com/ckreative/trainer-scheduler/internal/config"
	"github.com/ckreative/trainer-scheduler/internal/handlers"
	infraRepo "github.com/ckreative/trainer-scheduler/internal/infra/repository"
	"github.com/ckreative/trainer-scheduler/internal/middleware"
	ucSchedule "github.com/ckreative/trainer-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	availCache *cache.AvailabilityCache,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — SCHEDULES
	// ======================================================
	listUC := ucSchedule.NewListSchedules(scheduleRepo)
	getUC := ucSchedule.NewGetSchedule(scheduleRepo)
	createUC := ucSchedule.NewCreateSchedule(scheduleRepo, auditDispatcher)
	updateUC := ucSchedule.NewUpdateSchedule(scheduleRepo, availCache, auditDispatcher)
	deleteUC := ucSchedule.NewDeleteSchedule(scheduleRepo, availCache, auditDispatcher)
	duplicateUC := ucSchedule.NewDuplicateSchedule(scheduleRepo, auditDispatcher)
	setDefaultUC := ucSchedule.NewSetDefaultSchedule(scheduleRepo, auditDispatcher)
	resolveUC := ucSchedule.NewResolveDate(scheduleRepo, availCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	scheduleHandler := handlers.NewScheduleHandler(
		listUC,
		getUC,
		createUC,
		updateUC,
		deleteUC,
		duplicateUC,
		setDefaultUC,
	)

	publicHandler := handlers.NewPublicHandler(resolveUC)
	timeGridHandler := handlers.NewTimeGridHandler()
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/time-grid", timeGridHandler.List)
		api.GET("/public/schedules/:id/availability", publicHandler.AvailabilityForDate)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/schedules", scheduleHandler.List)
			secured.POST("/me/schedules", scheduleHandler.Create)
			secured.GET("/me/schedules/:id", scheduleHandler.Get)
			secured.PATCH("/me/schedules/:id", scheduleHandler.Update)
			secured.DELETE("/me/schedules/:id", scheduleHandler.Delete)

			secured.POST("/me/schedules/:id/duplicate", scheduleHandler.Duplicate)
			secured.POST("/me/schedules/:id/default", scheduleHandler.SetDefault)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
