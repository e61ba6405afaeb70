package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/session"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
	ucBarber "github.com/BruksfildServices01/barbershop-api/internal/usecase/barber"
	ucService "github.com/BruksfildServices01/barbershop-api/internal/usecase/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sessions session.Store) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	barberRepo := infraRepo.NewBarberGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher, cfg.Timezone)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, cfg.Timezone)
	listByBarberUC := ucAppointment.NewListAppointmentsByBarber(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher, cfg.Timezone)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, cfg.Timezone)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, cfg.Timezone)

	barberSvc := ucBarber.NewService(barberRepo, auditDispatcher)
	serviceSvc := ucService.NewService(serviceRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, sessions)
	barberHandler := handlers.NewBarberHandler(barberSvc)
	serviceHandler := handlers.NewServiceHandler(serviceSvc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		listByBarberUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		cancelAppointmentUC,
		availabilityUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/verify", authHandler.Verify)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// PÚBLICO (fluxo de agendamento do cliente)
		// ------------------------------
		api.GET("/appointments/availability/:date", appointmentHandler.Availability)
		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.GET("/barbers/:id", barberHandler.Get)
			secured.PUT("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.GET("/appointments/barber/:id", appointmentHandler.ListByBarber)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
