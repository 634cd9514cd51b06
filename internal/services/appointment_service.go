package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/events"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
	"github.com/medirec/hospital-service/internal/validator"
)

type appointmentService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAppointmentService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) AppointmentService {
	return &appointmentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

// Create books an appointment. Both referenced accounts must exist; each
// missing reference maps to its own not-found error so the caller can tell
// which side was wrong. New appointments always start as Scheduled.
func (s *appointmentService) Create(ctx context.Context, req *CreateAppointmentRequest) (*models.Appointment, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	appointment := &models.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: *req.AppointmentDate,
		AppointmentTime: *req.AppointmentTime,
		Symptoms:        req.Symptoms,
		Status:          models.AppointmentScheduled,
	}

	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Patient().ExistsByID(ctx, req.PatientID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPatientNotFound
		}

		exists, err = tx.Doctor().ExistsByID(ctx, req.DoctorID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrDoctorNotFound
		}

		return tx.Appointment().Create(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewEvent(events.EventAppointmentCreated, events.AppointmentCreatedEvent{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Date:          appointment.AppointmentDate.String(),
		Time:          appointment.AppointmentTime.String(),
	}))

	s.logger.Info("Appointment created",
		"appointment_id", appointment.ID,
		"patient_id", appointment.PatientID,
		"doctor_id", appointment.DoctorID)

	return appointment, nil
}

func (s *appointmentService) List(ctx context.Context) ([]*models.AppointmentDetail, error) {
	return s.repo.Appointment().ListDetails(ctx)
}

func (s *appointmentService) GetByID(ctx context.Context, id uint) (*models.AppointmentDetail, error) {
	detail, err := s.repo.Appointment().GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *appointmentService) Update(ctx context.Context, id uint, req *UpdateAppointmentRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return verrs
	}

	update := repositories.AppointmentUpdate{
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Symptoms:        req.Symptoms,
	}
	if req.Status != nil {
		status := models.AppointmentStatus(*req.Status)
		update.Status = &status
	}
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	return s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Appointment().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrAppointmentNotFound
		}
		return tx.Appointment().Update(ctx, id, update)
	})
}

func (s *appointmentService) Delete(ctx context.Context, id uint) error {
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Appointment().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrAppointmentNotFound
		}
		return tx.Appointment().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.publishEvent(ctx, events.NewEvent(events.EventAppointmentDeleted, events.AppointmentDeletedEvent{
		AppointmentID: id,
	}))

	s.logger.Info("Appointment deleted", "appointment_id", id)
	return nil
}

func (s *appointmentService) publishEvent(ctx context.Context, event *events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "error", err, "event_type", event.Type)
	}
}
