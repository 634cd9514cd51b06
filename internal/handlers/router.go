package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/services"
	"github.com/medirec/hospital-service/internal/utils"
)

type HandlerManager struct {
	authHandler        *AuthHandler
	adminHandler       *AdminHandler
	doctorHandler      *DoctorHandler
	patientHandler     *PatientHandler
	appointmentHandler *AppointmentHandler
	dashboardHandler   *DashboardHandler
	reportHandler      *ReportHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	sessionTTLSeconds int,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:        NewAuthHandler(serviceManager.Auth(), sessionTTLSeconds, logger),
		adminHandler:       NewAdminHandler(serviceManager.Admin(), logger),
		doctorHandler:      NewDoctorHandler(serviceManager.Doctor(), logger),
		patientHandler:     NewPatientHandler(serviceManager.Patient(), logger),
		appointmentHandler: NewAppointmentHandler(serviceManager.Appointment(), logger),
		dashboardHandler:   NewDashboardHandler(serviceManager.Dashboard(), logger),
		reportHandler:      NewReportHandler(serviceManager.Report(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Endpoint not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Message: "Method not allowed"})
	})

	api := router.Group("/api")
	{
		// Auth routes
		api.POST("/register", hm.authHandler.Register)
		api.POST("/login", hm.authHandler.Login)
		api.POST("/logout", hm.authHandler.Logout)

		// Admin routes
		admins := api.Group("/admins")
		{
			admins.GET("", hm.adminHandler.ListAdmins)
			admins.GET("/:id", hm.adminHandler.GetAdmin)
			admins.PUT("/:id", hm.adminHandler.UpdateAdmin)
			admins.DELETE("/:id", hm.adminHandler.DeleteAdmin)
		}

		// Doctor routes
		doctors := api.Group("/doctors")
		{
			doctors.GET("", hm.doctorHandler.ListDoctors)
			doctors.POST("", hm.doctorHandler.CreateDoctor)
			doctors.GET("/:id", hm.doctorHandler.GetDoctor)
			doctors.PUT("/:id", hm.doctorHandler.UpdateDoctor)
			doctors.DELETE("/:id", hm.doctorHandler.DeleteDoctor)
		}

		// Patient routes
		patients := api.Group("/patients")
		{
			patients.GET("", hm.patientHandler.ListPatients)
			patients.POST("", hm.patientHandler.CreatePatient)
			patients.GET("/:id", hm.patientHandler.GetPatient)
			patients.PUT("/:id", hm.patientHandler.UpdatePatient)
			patients.DELETE("/:id", hm.patientHandler.DeletePatient)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.GET("", hm.appointmentHandler.ListAppointments)
			appointments.POST("", hm.appointmentHandler.CreateAppointment)
			appointments.GET("/:id", hm.appointmentHandler.GetAppointment)
			appointments.PUT("/:id", hm.appointmentHandler.UpdateAppointment)
			appointments.DELETE("/:id", hm.appointmentHandler.DeleteAppointment)
		}

		// Dashboard routes
		api.GET("/dashboard/stats", hm.dashboardHandler.GetDashboardStats)

		// Report routes
		api.GET("/reports/appointments", hm.reportHandler.ExportAppointments)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "hospital-service",
		})
	})
}
