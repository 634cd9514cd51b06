package validator

import (
	"testing"
	"time"

	"github.com/medirec/hospital-service/internal/models"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Name:     "Alice",
		Username: "alice",
		Password: "s3cret",
		Email:    "alice@example.com",
		Phone:    "0123456789",
		Role:     "patient",
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	if errs := v.Validate(validRegisterRequest()); errs != nil {
		t.Fatalf("valid request should pass, got %v", errs)
	}

	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		rule    string
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *RegisterRequest) { r.Name = "" },
			rule:    "required",
			field:   "name",
			message: "Missing required field: name",
		},
		{
			name:    "missing password",
			mutate:  func(r *RegisterRequest) { r.Password = "" },
			rule:    "required",
			field:   "password",
			message: "Missing required field: password",
		},
		{
			name:    "invalid role",
			mutate:  func(r *RegisterRequest) { r.Role = "superuser" },
			rule:    "account_role",
			field:   "role",
			message: "Invalid role. Must be admin, doctor, or patient",
		},
		{
			name:    "invalid email",
			mutate:  func(r *RegisterRequest) { r.Email = "no-at-sign" },
			rule:    "basic_email",
			field:   "email",
			message: "Invalid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			errs := v.Validate(req)
			if errs == nil {
				t.Fatal("expected validation failure")
			}
			if errs[0].Field != tt.field {
				t.Errorf("field = %q, want %q (json tag name)", errs[0].Field, tt.field)
			}
			if errs[0].Rule != tt.rule {
				t.Errorf("rule = %q, want %q", errs[0].Rule, tt.rule)
			}
			if got := errs.WireMessage(); got != tt.message {
				t.Errorf("wire message = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestBasicEmailRule(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.example.com", "x+tag@example.io"}
	invalid := []string{"plain", "a@b", "@example.com", "a b@example.com", "a@ex ample.com"}

	for _, email := range valid {
		if !emailPattern.MatchString(email) {
			t.Errorf("%q should be accepted", email)
		}
	}
	for _, email := range invalid {
		if emailPattern.MatchString(email) {
			t.Errorf("%q should be rejected", email)
		}
	}
}

func TestAppointmentStatusRule(t *testing.T) {
	v := New()

	for _, status := range []string{"Scheduled", "Completed", "Cancelled"} {
		req := AppointmentUpdateRequest{Status: &status}
		if errs := v.Validate(req); errs != nil {
			t.Errorf("status %q should pass, got %v", status, errs)
		}
	}

	bad := "Pending"
	req := AppointmentUpdateRequest{Status: &bad}
	errs := v.Validate(req)
	if errs == nil {
		t.Fatal("status Pending should fail")
	}
	if errs[0].Rule != "appointment_status" {
		t.Errorf("rule = %q, want appointment_status", errs[0].Rule)
	}
}

func TestValidateUpdateRequestAllOptional(t *testing.T) {
	v := New()

	// Empty update requests are valid at this layer; the no-fields check
	// belongs to the service.
	if errs := v.Validate(AdminUpdateRequest{}); errs != nil {
		t.Errorf("empty AdminUpdateRequest should pass, got %v", errs)
	}

	bad := "nope"
	if errs := v.Validate(AdminUpdateRequest{Email: &bad}); errs == nil {
		t.Error("bad optional email should fail")
	}
}

func TestLoginWireMessage(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		req  LoginRequest
		want string
	}{
		{
			name: "missing username",
			req:  LoginRequest{Password: "pw", UserType: "admin"},
			want: "Username, password, and user_type are required",
		},
		{
			name: "missing password",
			req:  LoginRequest{Username: "u", UserType: "admin"},
			want: "Username, password, and user_type are required",
		},
		{
			name: "bad user type",
			req:  LoginRequest{Username: "u", Password: "pw", UserType: "nurse"},
			want: "Invalid user_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.req)
			if errs == nil {
				t.Fatal("expected validation failure")
			}
			if got := errs.LoginWireMessage(); got != tt.want {
				t.Errorf("LoginWireMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateAppointmentCreateRequest(t *testing.T) {
	v := New()

	date := models.NewDateOnly(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	at := models.NewTimeOfDay(9, 30, 0)

	tests := []struct {
		name   string
		mutate func(r *AppointmentCreateRequest)
		want   string
	}{
		{
			name:   "missing date",
			mutate: func(r *AppointmentCreateRequest) { r.AppointmentDate = nil },
			want:   "Missing required field: appointment_date",
		},
		{
			name:   "missing time",
			mutate: func(r *AppointmentCreateRequest) { r.AppointmentTime = nil },
			want:   "Missing required field: appointment_time",
		},
		{
			name:   "missing patient",
			mutate: func(r *AppointmentCreateRequest) { r.PatientID = 0 },
			want:   "Missing required field: patient_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := AppointmentCreateRequest{
				PatientID:       1,
				DoctorID:        2,
				AppointmentDate: &date,
				AppointmentTime: &at,
			}
			tt.mutate(&req)

			errs := v.Validate(req)
			if errs == nil {
				t.Fatal("expected validation failure")
			}
			if got := errs.WireMessage(); got != tt.want {
				t.Errorf("WireMessage() = %q, want %q", got, tt.want)
			}
		})
	}

	// A supplied midnight time is a booking, not an absent field.
	midnight := models.NewTimeOfDay(0, 0, 0)
	req := AppointmentCreateRequest{
		PatientID:       1,
		DoctorID:        2,
		AppointmentDate: &date,
		AppointmentTime: &midnight,
	}
	if errs := v.Validate(req); errs != nil {
		t.Errorf("midnight appointment time should pass, got %v", errs)
	}
}
