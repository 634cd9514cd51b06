package postgres

import (
	"fmt"

	"github.com/medirec/hospital-service/internal/repositories"
)

// handleDBError wraps a database error with the failed operation. The
// underlying error (including gorm.ErrRecordNotFound) stays reachable via
// errors.Is.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}

// Column maps for partial updates. Only non-nil fields become SET columns;
// the column names are fixed here, never assembled from request input.

func adminUpdateColumns(update repositories.AdminUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Email != nil {
		columns["email"] = *update.Email
	}
	if update.Phone != nil {
		columns["phone"] = *update.Phone
	}
	return columns
}

func doctorUpdateColumns(update repositories.DoctorUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Email != nil {
		columns["email"] = *update.Email
	}
	if update.Phone != nil {
		columns["phone"] = *update.Phone
	}
	if update.Specialization != nil {
		columns["specialization"] = *update.Specialization
	}
	return columns
}

func patientUpdateColumns(update repositories.PatientUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Email != nil {
		columns["email"] = *update.Email
	}
	if update.Phone != nil {
		columns["phone"] = *update.Phone
	}
	if update.Address != nil {
		columns["address"] = *update.Address
	}
	return columns
}

func appointmentUpdateColumns(update repositories.AppointmentUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	if update.AppointmentDate != nil {
		columns["appointment_date"] = *update.AppointmentDate
	}
	if update.AppointmentTime != nil {
		columns["appointment_time"] = *update.AppointmentTime
	}
	if update.Symptoms != nil {
		columns["symptoms"] = *update.Symptoms
	}
	if update.Status != nil {
		columns["status"] = *update.Status
	}
	return columns
}
