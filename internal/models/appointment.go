package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	PatientID       uint              `json:"patient_id" gorm:"not null;index"`
	DoctorID        uint              `json:"doctor_id" gorm:"not null;index"`
	AppointmentDate DateOnly          `json:"appointment_date" gorm:"not null"`
	AppointmentTime TimeOfDay         `json:"appointment_time" gorm:"not null"`
	Symptoms        string            `json:"symptoms" gorm:"size:1000"`
	Status          AppointmentStatus `json:"status" gorm:"not null;size:20;default:Scheduled"`

	CreatedAt time.Time `json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentDetail is an appointment joined with the names of the patient
// and doctor it references.
type AppointmentDetail struct {
	Appointment
	PatientName    string `json:"patient_name"`
	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
}

// DashboardStats carries the dashboard counter block.
type DashboardStats struct {
	TotalPatients     int64 `json:"total_patients"`
	TotalDoctors      int64 `json:"total_doctors"`
	TotalAdmins       int64 `json:"total_admins"`
	TodayAppointments int64 `json:"today_appointments"`
	TotalAppointments int64 `json:"total_appointments"`
}
