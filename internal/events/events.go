package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types published by the service.
const (
	EventAccountRegistered  = "account.registered"
	EventAppointmentCreated = "appointment.created"
	EventAppointmentDeleted = "appointment.deleted"
)

const (
	eventSource  = "hospital-service"
	eventVersion = "1.0"
)

// Event is the envelope for every domain event.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent builds an event envelope for the given type and payload.
func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    eventSource,
		Version:   eventVersion,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// AccountRegisteredEvent is emitted after a successful registration.
type AccountRegisteredEvent struct {
	AccountID uint   `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// AppointmentCreatedEvent is emitted after an appointment is booked.
type AppointmentCreatedEvent struct {
	AppointmentID uint   `json:"appointment_id"`
	PatientID     uint   `json:"patient_id"`
	DoctorID      uint   `json:"doctor_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// AppointmentDeletedEvent is emitted after an appointment is removed.
type AppointmentDeletedEvent struct {
	AppointmentID uint `json:"appointment_id"`
}
