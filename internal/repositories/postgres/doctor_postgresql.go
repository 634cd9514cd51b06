package postgres

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/cache"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
)

type doctorRepository struct {
	db         *gorm.DB
	statsCache *cache.CacheHelper
}

func NewDoctorPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.DoctorRepository {
	return &doctorRepository{
		db:         db,
		statsCache: cache.NewCacheHelper(redisClient, cache.StatsCacheConfig.Prefix),
	}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return handleDBError(err, "create doctor")
	}
	cache.SafeDelete(ctx, r.statsCache, cache.DashboardStatsKey)
	return nil
}

func (r *doctorRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, handleDBError(err, "get doctor by id")
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*models.Doctor, error) {
	var doctors []*models.Doctor
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		return nil, handleDBError(err, "list doctors")
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, id uint, update repositories.DoctorUpdate) error {
	columns := doctorUpdateColumns(update)
	if len(columns) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", id).
		Updates(columns).Error; err != nil {
		return handleDBError(err, "update doctor")
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Doctor{}, id).Error; err != nil {
		return handleDBError(err, "delete doctor")
	}
	cache.SafeDelete(ctx, r.statsCache, cache.DashboardStatsKey)
	return nil
}

func (r *doctorRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check doctor exists")
	}
	return count > 0, nil
}
