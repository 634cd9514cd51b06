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

type adminService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAdminService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) AdminService {
	return &adminService{repo: repo, logger: logger, validator: v}
}

func (s *adminService) List(ctx context.Context) ([]*models.Admin, error) {
	return s.repo.Admin().List(ctx)
}

func (s *adminService) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := s.repo.Admin().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (s *adminService) Update(ctx context.Context, id uint, req *UpdateAdminRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return verrs
	}

	update := repositories.AdminUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	return s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Admin().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrAdminNotFound
		}
		return tx.Admin().Update(ctx, id, update)
	})
}

func (s *adminService) Delete(ctx context.Context, id uint) (*models.Admin, error) {
	var admin *models.Admin
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		var err error
		admin, err = tx.Admin().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAdminNotFound
			}
			return err
		}
		return tx.Admin().Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin deleted", "admin_id", id, "username", admin.Username)
	return admin, nil
}
