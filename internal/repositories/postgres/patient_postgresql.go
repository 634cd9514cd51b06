package postgres

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/cache"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
)

type patientRepository struct {
	db         *gorm.DB
	statsCache *cache.CacheHelper
}

func NewPatientPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.PatientRepository {
	return &patientRepository{
		db:         db,
		statsCache: cache.NewCacheHelper(redisClient, cache.StatsCacheConfig.Prefix),
	}
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return handleDBError(err, "create patient")
	}
	cache.SafeDelete(ctx, r.statsCache, cache.DashboardStatsKey)
	return nil
}

func (r *patientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, handleDBError(err, "get patient by id")
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*models.Patient, error) {
	var patients []*models.Patient
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&patients).Error; err != nil {
		return nil, handleDBError(err, "list patients")
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, id uint, update repositories.PatientUpdate) error {
	columns := patientUpdateColumns(update)
	if len(columns) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ?", id).
		Updates(columns).Error; err != nil {
		return handleDBError(err, "update patient")
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Patient{}, id).Error; err != nil {
		return handleDBError(err, "delete patient")
	}
	cache.SafeDelete(ctx, r.statsCache, cache.DashboardStatsKey)
	return nil
}

func (r *patientRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check patient exists")
	}
	return count > 0, nil
}
