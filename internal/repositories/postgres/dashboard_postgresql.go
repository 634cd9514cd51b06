package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
)

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) repositories.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *dashboardRepository) GetTotalAdmins(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.Admin{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total admins: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetTotalDoctors(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.Doctor{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total doctors: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetTotalPatients(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.Patient{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total patients: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetTotalAppointments(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.Appointment{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total appointments: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetAppointmentsOn(ctx context.Context, tx *gorm.DB, date models.DateOnly) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date = ?", date).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get appointments for date: %w", err)
	}

	return count, nil
}
