package repositories

import (
	"context"

	"github.com/medirec/hospital-service/internal/models"
)

// AdminUpdate carries the optional fields of a partial admin update.
// Nil fields leave the stored value untouched.
type AdminUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

func (u AdminUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil
}

// DoctorUpdate carries the optional fields of a partial doctor update.
type DoctorUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Specialization *string
}

func (u DoctorUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Specialization == nil
}

// PatientUpdate carries the optional fields of a partial patient update.
type PatientUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (u PatientUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Address == nil
}

// AppointmentUpdate carries the optional fields of a partial appointment update.
type AppointmentUpdate struct {
	AppointmentDate *models.DateOnly
	AppointmentTime *models.TimeOfDay
	Symptoms        *string
	Status          *models.AppointmentStatus
}

func (u AppointmentUpdate) Empty() bool {
	return u.AppointmentDate == nil && u.AppointmentTime == nil && u.Symptoms == nil && u.Status == nil
}

// AdminRepository provides access to the admins table.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	List(ctx context.Context) ([]*models.Admin, error)
	Update(ctx context.Context, id uint, update AdminUpdate) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// DoctorRepository provides access to the doctors table.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
	List(ctx context.Context) ([]*models.Doctor, error)
	Update(ctx context.Context, id uint, update DoctorUpdate) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// PatientRepository provides access to the patients table.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
	List(ctx context.Context) ([]*models.Patient, error)
	Update(ctx context.Context, id uint, update PatientUpdate) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// AccountRepository answers lookups that span all three account tables.
type AccountRepository interface {
	// UsernameExists reports whether any account table holds the username.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// FindByUsername returns the account of the given role, or a not-found
	// error when the table has no such row.
	FindByUsername(ctx context.Context, role models.AccountRole, username string) (*models.Account, error)
}

// AppointmentRepository provides access to the appointments table.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	GetDetailByID(ctx context.Context, id uint) (*models.AppointmentDetail, error)
	ListDetails(ctx context.Context) ([]*models.AppointmentDetail, error)
	Update(ctx context.Context, id uint, update AppointmentUpdate) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Delete-guard counts
	CountByDoctor(ctx context.Context, doctorID uint) (int64, error)
	CountByPatient(ctx context.Context, patientID uint) (int64, error)
}
