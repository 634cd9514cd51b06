package services

import "errors"

// Typed service errors. Handlers map these onto HTTP status codes; anything
// not listed here surfaces as a generic internal error.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")

	ErrAdminNotFound       = errors.New("admin not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	ErrDoctorHasAppointments  = errors.New("doctor has existing appointments")
	ErrPatientHasAppointments = errors.New("patient has existing appointments")

	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
)

// IsNotFoundError reports whether err is one of the typed not-found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAdminNotFound) ||
		errors.Is(err, ErrDoctorNotFound) ||
		errors.Is(err, ErrPatientNotFound) ||
		errors.Is(err, ErrAppointmentNotFound)
}
