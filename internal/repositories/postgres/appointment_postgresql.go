package postgres

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/cache"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
)

type appointmentRepository struct {
	db         *gorm.DB
	statsCache *cache.CacheHelper
}

func NewAppointmentPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.AppointmentRepository {
	return &appointmentRepository{
		db:         db,
		statsCache: cache.NewCacheHelper(redisClient, cache.StatsCacheConfig.Prefix),
	}
}

const appointmentDetailSelect = "appointments.*, patients.name AS patient_name, doctors.name AS doctor_name, doctors.specialization AS specialization"

func (r *appointmentRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(appointmentDetailSelect).
		Joins("JOIN patients ON appointments.patient_id = patients.id").
		Joins("JOIN doctors ON appointments.doctor_id = doctors.id")
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return handleDBError(err, "create appointment")
	}
	cache.SafeDelete(ctx, r.statsCache, cache.DashboardStatsKey)
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, handleDBError(err, "get appointment by id")
	}
	return &appointment, nil
}

func (r *appointmentRepository) GetDetailByID(ctx context.Context, id uint) (*models.AppointmentDetail, error) {
	var detail models.AppointmentDetail
	if err := r.detailQuery(ctx).
		Where("appointments.id = ?", id).
		First(&detail).Error; err != nil {
		return nil, handleDBError(err, "get appointment detail")
	}
	return &detail, nil
}

func (r *appointmentRepository) ListDetails(ctx context.Context) ([]*models.AppointmentDetail, error) {
	var details []*models.AppointmentDetail
	if err := r.detailQuery(ctx).
		Order("appointments.appointment_date DESC").
		Find(&details).Error; err != nil {
		return nil, handleDBError(err, "list appointments")
	}
	return details, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id uint, update repositories.AppointmentUpdate) error {
	columns := appointmentUpdateColumns(update)
	if len(columns) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(columns).Error; err != nil {
		return handleDBError(err, "update appointment")
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error; err != nil {
		return handleDBError(err, "delete appointment")
	}
	cache.SafeDelete(ctx, r.statsCache, cache.DashboardStatsKey)
	return nil
}

func (r *appointmentRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check appointment exists")
	}
	return count > 0, nil
}

func (r *appointmentRepository) CountByDoctor(ctx context.Context, doctorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count appointments by doctor")
	}
	return count, nil
}

func (r *appointmentRepository) CountByPatient(ctx context.Context, patientID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count appointments by patient")
	}
	return count, nil
}
