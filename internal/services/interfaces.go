package services

import (
	"context"

	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use request validator types
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type CreateDoctorRequest = validator.DoctorCreateRequest
type CreatePatientRequest = validator.PatientCreateRequest
type UpdateAdminRequest = validator.AdminUpdateRequest
type UpdateDoctorRequest = validator.DoctorUpdateRequest
type UpdatePatientRequest = validator.PatientUpdateRequest
type CreateAppointmentRequest = validator.AppointmentCreateRequest
type UpdateAppointmentRequest = validator.AppointmentUpdateRequest

// RegisterResult reports which account was created.
type RegisterResult struct {
	Username string
	Role     models.AccountRole
}

// LoginResult is the safe projection of an authenticated account plus the
// signed session token.
type LoginResult struct {
	User  LoginUser
	Token string
}

type LoginUser struct {
	ID       uint               `json:"id"`
	Username string             `json:"username"`
	Name     string             `json:"name"`
	UserType models.AccountRole `json:"user_type"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
}

type AdminService interface {
	List(ctx context.Context) ([]*models.Admin, error)
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	Update(ctx context.Context, id uint, req *UpdateAdminRequest) error
	Delete(ctx context.Context, id uint) (*models.Admin, error)
}

type DoctorService interface {
	Create(ctx context.Context, req *CreateDoctorRequest) (*models.Doctor, error)
	List(ctx context.Context) ([]*models.Doctor, error)
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
	Update(ctx context.Context, id uint, req *UpdateDoctorRequest) error
	Delete(ctx context.Context, id uint) (*models.Doctor, error)
}

type PatientService interface {
	Create(ctx context.Context, req *CreatePatientRequest) (*models.Patient, error)
	List(ctx context.Context) ([]*models.Patient, error)
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
	Update(ctx context.Context, id uint, req *UpdatePatientRequest) error
	Delete(ctx context.Context, id uint) (*models.Patient, error)
}

type AppointmentService interface {
	Create(ctx context.Context, req *CreateAppointmentRequest) (*models.Appointment, error)
	List(ctx context.Context) ([]*models.AppointmentDetail, error)
	GetByID(ctx context.Context, id uint) (*models.AppointmentDetail, error)
	Update(ctx context.Context, id uint, req *UpdateAppointmentRequest) error
	Delete(ctx context.Context, id uint) error
}

type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type ReportService interface {
	// AppointmentsReport renders the appointment join as an xlsx workbook.
	AppointmentsReport(ctx context.Context) ([]byte, error)
}

// ServiceManager aggregates all services and owns their lifecycle.
type ServiceManager interface {
	Auth() AuthService
	Admin() AdminService
	Doctor() DoctorService
	Patient() PatientService
	Appointment() AppointmentService
	Dashboard() DashboardService
	Report() ReportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
