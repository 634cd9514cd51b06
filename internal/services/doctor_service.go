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

type doctorService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewDoctorService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) DoctorService {
	return &doctorService{repo: repo, logger: logger, validator: v}
}

// Create inserts a doctor record. The username must be free across all three
// account tables, checked inside the same transaction as the insert.
func (s *doctorService) Create(ctx context.Context, req *CreateDoctorRequest) (*models.Doctor, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		Name:           req.Name,
		Username:       req.Username,
		Password:       hash,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
	}

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Account().UsernameExists(ctx, req.Username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}
		return tx.Doctor().Create(ctx, doctor)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Doctor created", "doctor_id", doctor.ID, "username", doctor.Username)
	return doctor, nil
}

func (s *doctorService) List(ctx context.Context) ([]*models.Doctor, error) {
	return s.repo.Doctor().List(ctx)
}

func (s *doctorService) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	doctor, err := s.repo.Doctor().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}

func (s *doctorService) Update(ctx context.Context, id uint, req *UpdateDoctorRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return verrs
	}

	update := repositories.DoctorUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
	}
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	return s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Doctor().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrDoctorNotFound
		}
		return tx.Doctor().Update(ctx, id, update)
	})
}

// Delete removes a doctor unless appointments still reference them. The
// appointment count and the delete run in one transaction so a concurrent
// booking cannot slip between them.
func (s *doctorService) Delete(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor *models.Doctor
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		var err error
		doctor, err = tx.Doctor().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDoctorNotFound
			}
			return err
		}

		count, err := tx.Appointment().CountByDoctor(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDoctorHasAppointments
		}

		return tx.Doctor().Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Doctor deleted", "doctor_id", id, "username", doctor.Username)
	return doctor, nil
}
