package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
	"github.com/medirec/hospital-service/internal/validator"
)

type patientService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewPatientService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) PatientService {
	return &patientService{repo: repo, logger: logger, validator: v}
}

// Create inserts a patient record. The username must be free across all three
// account tables, checked inside the same transaction as the insert.
func (s *patientService) Create(ctx context.Context, req *CreatePatientRequest) (*models.Patient, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		Name:     req.Name,
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Account().UsernameExists(ctx, req.Username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}
		return tx.Patient().Create(ctx, patient)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Patient created", "patient_id", patient.ID, "username", patient.Username)
	return patient, nil
}

func (s *patientService) List(ctx context.Context) ([]*models.Patient, error) {
	return s.repo.Patient().List(ctx)
}

func (s *patientService) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.repo.Patient().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

func (s *patientService) Update(ctx context.Context, id uint, req *UpdatePatientRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return verrs
	}

	update := repositories.PatientUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	return s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Patient().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPatientNotFound
		}
		return tx.Patient().Update(ctx, id, update)
	})
}

// Delete removes a patient unless appointments still reference them.
func (s *patientService) Delete(ctx context.Context, id uint) (*models.Patient, error) {
	var patient *models.Patient
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		var err error
		patient, err = tx.Patient().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPatientNotFound
			}
			return err
		}

		count, err := tx.Appointment().CountByPatient(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrPatientHasAppointments
		}

		return tx.Patient().Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Patient deleted", "patient_id", id, "username", patient.Username)
	return patient, nil
}
