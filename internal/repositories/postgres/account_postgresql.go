package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
)

// accountRepository answers lookups spanning all three account tables. The
// username namespace is shared, so existence checks must scan every table.
type accountRepository struct {
	db *gorm.DB
}

func NewAccountPostgreSQL(db *gorm.DB) repositories.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	tables := []interface{}{
		&models.Admin{},
		&models.Doctor{},
		&models.Patient{},
	}

	for _, table := range tables {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(table).
			Where("username = ?", username).
			Count(&count).Error; err != nil {
			return false, handleDBError(err, "check username")
		}
		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}

func (r *accountRepository) FindByUsername(ctx context.Context, role models.AccountRole, username string) (*models.Account, error) {
	account := &models.Account{Role: role}

	var err error
	switch role {
	case models.RoleAdmin:
		var admin models.Admin
		err = r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
		if err == nil {
			account.ID, account.Name, account.Username, account.Password = admin.ID, admin.Name, admin.Username, admin.Password
		}
	case models.RoleDoctor:
		var doctor models.Doctor
		err = r.db.WithContext(ctx).Where("username = ?", username).First(&doctor).Error
		if err == nil {
			account.ID, account.Name, account.Username, account.Password = doctor.ID, doctor.Name, doctor.Username, doctor.Password
		}
	case models.RolePatient:
		var patient models.Patient
		err = r.db.WithContext(ctx).Where("username = ?", username).First(&patient).Error
		if err == nil {
			account.ID, account.Name, account.Username, account.Password = patient.ID, patient.Name, patient.Username, patient.Password
		}
	default:
		return nil, errors.New("unknown account role")
	}

	if err != nil {
		return nil, handleDBError(err, "find account by username")
	}

	return account, nil
}
