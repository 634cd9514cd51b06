package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
)

// mockRepository is an in-memory Repository used by the service tests.
type mockRepository struct {
	admins       map[uint]*models.Admin
	doctors      map[uint]*models.Doctor
	patients     map[uint]*models.Patient
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		admins:       make(map[uint]*models.Admin),
		doctors:      make(map[uint]*models.Doctor),
		patients:     make(map[uint]*models.Patient),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (m *mockRepository) allocateID() uint {
	id := m.nextID
	m.nextID++
	return id
}

func (m *mockRepository) Admin() repositories.AdminRepository             { return (*mockAdminRepo)(m) }
func (m *mockRepository) Doctor() repositories.DoctorRepository           { return (*mockDoctorRepo)(m) }
func (m *mockRepository) Patient() repositories.PatientRepository         { return (*mockPatientRepo)(m) }
func (m *mockRepository) Account() repositories.AccountRepository         { return (*mockAccountRepo)(m) }
func (m *mockRepository) Appointment() repositories.AppointmentRepository { return (*mockApptRepo)(m) }
func (m *mockRepository) Dashboard() repositories.DashboardRepository     { return (*mockDashRepo)(m) }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

type mockAdminRepo mockRepository

func (r *mockAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = (*mockRepository)(r).allocateID()
	r.admins[admin.ID] = admin
	return nil
}

func (r *mockAdminRepo) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return admin, nil
}

func (r *mockAdminRepo) List(ctx context.Context) ([]*models.Admin, error) {
	out := make([]*models.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, a)
	}
	return out, nil
}

func (r *mockAdminRepo) Update(ctx context.Context, id uint, update repositories.AdminUpdate) error {
	admin, ok := r.admins[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if update.Name != nil {
		admin.Name = *update.Name
	}
	if update.Email != nil {
		admin.Email = *update.Email
	}
	if update.Phone != nil {
		admin.Phone = *update.Phone
	}
	return nil
}

func (r *mockAdminRepo) Delete(ctx context.Context, id uint) error {
	delete(r.admins, id)
	return nil
}

func (r *mockAdminRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.admins[id]
	return ok, nil
}

type mockDoctorRepo mockRepository

func (r *mockDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	doctor.ID = (*mockRepository)(r).allocateID()
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *mockDoctorRepo) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return doctor, nil
}

func (r *mockDoctorRepo) List(ctx context.Context) ([]*models.Doctor, error) {
	out := make([]*models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (r *mockDoctorRepo) Update(ctx context.Context, id uint, update repositories.DoctorUpdate) error {
	doctor, ok := r.doctors[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if update.Name != nil {
		doctor.Name = *update.Name
	}
	if update.Email != nil {
		doctor.Email = *update.Email
	}
	if update.Phone != nil {
		doctor.Phone = *update.Phone
	}
	if update.Specialization != nil {
		doctor.Specialization = *update.Specialization
	}
	return nil
}

func (r *mockDoctorRepo) Delete(ctx context.Context, id uint) error {
	delete(r.doctors, id)
	return nil
}

func (r *mockDoctorRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.doctors[id]
	return ok, nil
}

type mockPatientRepo mockRepository

func (r *mockPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	patient.ID = (*mockRepository)(r).allocateID()
	r.patients[patient.ID] = patient
	return nil
}

func (r *mockPatientRepo) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return patient, nil
}

func (r *mockPatientRepo) List(ctx context.Context) ([]*models.Patient, error) {
	out := make([]*models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, p)
	}
	return out, nil
}

func (r *mockPatientRepo) Update(ctx context.Context, id uint, update repositories.PatientUpdate) error {
	patient, ok := r.patients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if update.Name != nil {
		patient.Name = *update.Name
	}
	if update.Email != nil {
		patient.Email = *update.Email
	}
	if update.Phone != nil {
		patient.Phone = *update.Phone
	}
	if update.Address != nil {
		patient.Address = *update.Address
	}
	return nil
}

func (r *mockPatientRepo) Delete(ctx context.Context, id uint) error {
	delete(r.patients, id)
	return nil
}

func (r *mockPatientRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.patients[id]
	return ok, nil
}

type mockAccountRepo mockRepository

func (r *mockAccountRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return true, nil
		}
	}
	for _, d := range r.doctors {
		if d.Username == username {
			return true, nil
		}
	}
	for _, p := range r.patients {
		if p.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockAccountRepo) FindByUsername(ctx context.Context, role models.AccountRole, username string) (*models.Account, error) {
	switch role {
	case models.RoleAdmin:
		for _, a := range r.admins {
			if a.Username == username {
				return &models.Account{ID: a.ID, Name: a.Name, Username: a.Username, Password: a.Password, Role: role}, nil
			}
		}
	case models.RoleDoctor:
		for _, d := range r.doctors {
			if d.Username == username {
				return &models.Account{ID: d.ID, Name: d.Name, Username: d.Username, Password: d.Password, Role: role}, nil
			}
		}
	case models.RolePatient:
		for _, p := range r.patients {
			if p.Username == username {
				return &models.Account{ID: p.ID, Name: p.Name, Username: p.Username, Password: p.Password, Role: role}, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockApptRepo mockRepository

func (r *mockApptRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	appointment.ID = (*mockRepository)(r).allocateID()
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *mockApptRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	appt, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return appt, nil
}

func (r *mockApptRepo) GetDetailByID(ctx context.Context, id uint) (*models.AppointmentDetail, error) {
	appt, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.detail(appt), nil
}

func (r *mockApptRepo) ListDetails(ctx context.Context) ([]*models.AppointmentDetail, error) {
	out := make([]*models.AppointmentDetail, 0, len(r.appointments))
	for _, appt := range r.appointments {
		out = append(out, r.detail(appt))
	}
	return out, nil
}

func (r *mockApptRepo) detail(appt *models.Appointment) *models.AppointmentDetail {
	detail := &models.AppointmentDetail{Appointment: *appt}
	if p, ok := r.patients[appt.PatientID]; ok {
		detail.PatientName = p.Name
	}
	if d, ok := r.doctors[appt.DoctorID]; ok {
		detail.DoctorName = d.Name
		detail.Specialization = d.Specialization
	}
	return detail
}

func (r *mockApptRepo) Update(ctx context.Context, id uint, update repositories.AppointmentUpdate) error {
	appt, ok := r.appointments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if update.AppointmentDate != nil {
		appt.AppointmentDate = *update.AppointmentDate
	}
	if update.AppointmentTime != nil {
		appt.AppointmentTime = *update.AppointmentTime
	}
	if update.Symptoms != nil {
		appt.Symptoms = *update.Symptoms
	}
	if update.Status != nil {
		appt.Status = *update.Status
	}
	return nil
}

func (r *mockApptRepo) Delete(ctx context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *mockApptRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.appointments[id]
	return ok, nil
}

func (r *mockApptRepo) CountByDoctor(ctx context.Context, doctorID uint) (int64, error) {
	var count int64
	for _, appt := range r.appointments {
		if appt.DoctorID == doctorID {
			count++
		}
	}
	return count, nil
}

func (r *mockApptRepo) CountByPatient(ctx context.Context, patientID uint) (int64, error) {
	var count int64
	for _, appt := range r.appointments {
		if appt.PatientID == patientID {
			count++
		}
	}
	return count, nil
}

type mockDashRepo mockRepository

func (r *mockDashRepo) GetTotalAdmins(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(r.admins)), nil
}

func (r *mockDashRepo) GetTotalDoctors(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(r.doctors)), nil
}

func (r *mockDashRepo) GetTotalPatients(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(r.patients)), nil
}

func (r *mockDashRepo) GetTotalAppointments(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(r.appointments)), nil
}

func (r *mockDashRepo) GetAppointmentsOn(ctx context.Context, tx *gorm.DB, date models.DateOnly) (int64, error) {
	var count int64
	for _, appt := range r.appointments {
		if appt.AppointmentDate.String() == date.String() {
			count++
		}
	}
	return count, nil
}
