package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medirec/hospital-service/internal/events"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/validator"
)

func seedAccounts(t *testing.T, repo *mockRepository) (patientID, doctorID uint) {
	t.Helper()
	ctx := context.Background()

	patient := &models.Patient{Name: "Pat", Username: "pat", Password: "x", Email: "p@example.com", Phone: "1"}
	if err := repo.Patient().Create(ctx, patient); err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	doctor := &models.Doctor{Name: "Doc", Username: "doc", Password: "x", Email: "d@example.com", Phone: "2", Specialization: "Cardiology"}
	if err := repo.Doctor().Create(ctx, doctor); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	return patient.ID, doctor.ID
}

func newTestAppointmentService(repo *mockRepository, publisher events.EventPublisher) AppointmentService {
	return NewAppointmentService(repo, publisher, testLogger(), validator.New())
}

func validCreateRequest(patientID, doctorID uint) *CreateAppointmentRequest {
	date := models.NewDateOnly(time.Now().AddDate(0, 0, 7))
	at := models.NewTimeOfDay(9, 30, 0)
	return &CreateAppointmentRequest{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: &date,
		AppointmentTime: &at,
		Symptoms:        "headache",
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	svc := newTestAppointmentService(repo, publisher)
	ctx := context.Background()

	patientID, doctorID := seedAccounts(t, repo)

	appt, err := svc.Create(ctx, validCreateRequest(patientID, doctorID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if appt.Status != models.AppointmentScheduled {
		t.Errorf("new appointments must start as Scheduled, got %q", appt.Status)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventAppointmentCreated {
		t.Errorf("expected one %s event, got %+v", events.EventAppointmentCreated, published)
	}
}

func TestCreateAppointmentUnknownReferences(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAppointmentService(repo, events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	patientID, doctorID := seedAccounts(t, repo)

	if _, err := svc.Create(ctx, validCreateRequest(999, doctorID)); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("unknown patient: expected ErrPatientNotFound, got %v", err)
	}
	if _, err := svc.Create(ctx, validCreateRequest(patientID, 999)); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("unknown doctor: expected ErrDoctorNotFound, got %v", err)
	}
}

func TestUpdateAppointment(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAppointmentService(repo, events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	patientID, doctorID := seedAccounts(t, repo)
	appt, err := svc.Create(ctx, validCreateRequest(patientID, doctorID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Update(ctx, appt.ID, &UpdateAppointmentRequest{}); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Errorf("empty update: expected ErrNoFieldsToUpdate, got %v", err)
	}

	status := "Completed"
	if err := svc.Update(ctx, appt.ID, &UpdateAppointmentRequest{Status: &status}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := svc.GetByID(ctx, appt.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Status != models.AppointmentCompleted {
		t.Errorf("status = %q, want Completed", updated.Status)
	}

	if err := svc.Update(ctx, 999, &UpdateAppointmentRequest{Status: &status}); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("unknown id: expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	svc := newTestAppointmentService(repo, publisher)
	ctx := context.Background()

	patientID, doctorID := seedAccounts(t, repo)
	appt, err := svc.Create(ctx, validCreateRequest(patientID, doctorID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	publisher.ClearEvents()

	if err := svc.Delete(ctx, appt.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, appt.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound after delete, got %v", err)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventAppointmentDeleted {
		t.Errorf("expected one %s event, got %+v", events.EventAppointmentDeleted, published)
	}

	if err := svc.Delete(ctx, appt.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("double delete: expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestCreateAppointmentMissingTemporalFields(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	svc := newTestAppointmentService(repo, publisher)
	ctx := context.Background()

	patientID, doctorID := seedAccounts(t, repo)

	tests := []struct {
		name    string
		mutate  func(r *CreateAppointmentRequest)
		message string
	}{
		{
			name:    "missing date",
			mutate:  func(r *CreateAppointmentRequest) { r.AppointmentDate = nil },
			message: "Missing required field: appointment_date",
		},
		{
			name:    "missing time",
			mutate:  func(r *CreateAppointmentRequest) { r.AppointmentTime = nil },
			message: "Missing required field: appointment_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest(patientID, doctorID)
			tt.mutate(req)

			_, err := svc.Create(ctx, req)
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected validation errors, got %v", err)
			}
			if got := verrs.WireMessage(); got != tt.message {
				t.Errorf("wire message = %q, want %q", got, tt.message)
			}
		})
	}

	if got := len(publisher.GetPublishedEvents()); got != 0 {
		t.Errorf("rejected creates must not publish events, got %d", got)
	}

	// Midnight is a booking, not an absent time.
	req := validCreateRequest(patientID, doctorID)
	midnight := models.NewTimeOfDay(0, 0, 0)
	req.AppointmentTime = &midnight
	if _, err := svc.Create(ctx, req); err != nil {
		t.Errorf("midnight appointment should be accepted, got %v", err)
	}
}
