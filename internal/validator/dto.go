package validator

import "github.com/medirec/hospital-service/internal/models"

// RegisterRequest is the payload for POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,basic_email"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Role     string `json:"role" validate:"required,account_role"`

	// Role-specific optional fields
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Address        string `json:"address" validate:"omitempty,max=255"`
}

// LoginRequest is the payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type" validate:"required,account_role"`
}

// DoctorCreateRequest is the payload for POST /api/doctors.
type DoctorCreateRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Username       string `json:"username" validate:"required,max=50"`
	Password       string `json:"password" validate:"required"`
	Email          string `json:"email" validate:"required,basic_email"`
	Phone          string `json:"phone" validate:"required,max=20"`
	Specialization string `json:"specialization" validate:"required,max=100"`
}

// PatientCreateRequest is the payload for POST /api/patients.
type PatientCreateRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,basic_email"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Address  string `json:"address" validate:"omitempty,max=255"`
}

// AdminUpdateRequest carries the optional fields of PUT /api/admins/{id}.
// Absent fields stay nil and leave the stored value untouched.
type AdminUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,basic_email"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

// DoctorUpdateRequest carries the optional fields of PUT /api/doctors/{id}.
type DoctorUpdateRequest struct {
	Name           *string `json:"name" validate:"omitempty,max=100"`
	Email          *string `json:"email" validate:"omitempty,basic_email"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
}

// PatientUpdateRequest carries the optional fields of PUT /api/patients/{id}.
type PatientUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=100"`
	Email   *string `json:"email" validate:"omitempty,basic_email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// AppointmentCreateRequest is the payload for POST /api/appointments.
// Status is not accepted; new appointments always start as Scheduled.
// Date and time are pointers so an absent field is told apart from the
// zero value; midnight is a valid appointment time.
type AppointmentCreateRequest struct {
	PatientID       uint             `json:"patient_id" validate:"required"`
	DoctorID        uint             `json:"doctor_id" validate:"required"`
	AppointmentDate *models.DateOnly  `json:"appointment_date" validate:"required"`
	AppointmentTime *models.TimeOfDay `json:"appointment_time" validate:"required"`
	Symptoms        string           `json:"symptoms" validate:"omitempty,max=1000"`
}

// AppointmentUpdateRequest carries the optional fields of PUT /api/appointments/{id}.
type AppointmentUpdateRequest struct {
	AppointmentDate *models.DateOnly  `json:"appointment_date"`
	AppointmentTime *models.TimeOfDay `json:"appointment_time"`
	Symptoms        *string           `json:"symptoms" validate:"omitempty,max=1000"`
	Status          *string           `json:"status" validate:"omitempty,appointment_status"`
}
