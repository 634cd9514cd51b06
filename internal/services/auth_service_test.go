package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/medirec/hospital-service/internal/auth"
	"github.com/medirec/hospital-service/internal/events"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestAuthService(repo *mockRepository, publisher events.EventPublisher) AuthService {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, tokens, publisher, testLogger(), validator.New())
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Error("hash must not equal the plain password")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("CheckPassword should accept the original password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword should reject a wrong password")
	}
}

func TestRegister(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	svc := newTestAuthService(repo, publisher)
	ctx := context.Background()

	req := &RegisterRequest{
		Name:     "Dr. Liên",
		Username: "lien",
		Password: "s3cret",
		Email:    "lien@example.com",
		Phone:    "0123456789",
		Role:     "doctor",
	}

	result, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if result.Username != "lien" || result.Role != models.RoleDoctor {
		t.Errorf("unexpected result: %+v", result)
	}

	var created *models.Doctor
	for _, d := range repo.doctors {
		created = d
	}
	if created == nil {
		t.Fatal("doctor row was not created")
	}
	if created.Specialization != "General" {
		t.Errorf("specialization should default to General, got %q", created.Specialization)
	}
	if created.Password == "s3cret" {
		t.Error("stored password must be hashed")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventAccountRegistered {
		t.Errorf("expected one %s event, got %+v", events.EventAccountRegistered, published)
	}
}

func TestRegisterDuplicateUsernameAcrossRoles(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo, events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	first := &RegisterRequest{
		Name: "A", Username: "shared", Password: "pw",
		Email: "a@example.com", Phone: "1", Role: "patient",
	}
	if _, err := svc.Register(ctx, first); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Same username in a different role table must still be rejected.
	second := &RegisterRequest{
		Name: "B", Username: "shared", Password: "pw",
		Email: "b@example.com", Phone: "2", Role: "admin",
	}
	if _, err := svc.Register(ctx, second); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(newMockRepository(), events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *RegisterRequest
		rule    string
		message string
	}{
		{
			name: "missing username",
			req: &RegisterRequest{
				Name: "A", Password: "pw", Email: "a@example.com", Phone: "1", Role: "admin",
			},
			message: "Missing required field: username",
		},
		{
			name: "bad role",
			req: &RegisterRequest{
				Name: "A", Username: "a", Password: "pw",
				Email: "a@example.com", Phone: "1", Role: "nurse",
			},
			message: "Invalid role. Must be admin, doctor, or patient",
		},
		{
			name: "bad email",
			req: &RegisterRequest{
				Name: "A", Username: "a", Password: "pw",
				Email: "not-an-email", Phone: "1", Role: "admin",
			},
			message: "Invalid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected validation errors, got %v", err)
			}
			if got := verrs.WireMessage(); got != tt.message {
				t.Errorf("wire message = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	repo := newMockRepository()
	svc := newTestAuthService(repo, events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	register := &RegisterRequest{
		Name: "Pat", Username: "pat", Password: "s3cret",
		Email: "pat@example.com", Phone: "1", Role: "patient",
	}
	if _, err := svc.Register(ctx, register); err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := svc.Login(ctx, &LoginRequest{Username: "pat", Password: "s3cret", UserType: "patient"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
	if result.User.Username != "pat" || result.User.UserType != models.RolePatient {
		t.Errorf("unexpected login user: %+v", result.User)
	}

	// Wrong password and wrong role table fail identically.
	if _, err := svc.Login(ctx, &LoginRequest{Username: "pat", Password: "nope", UserType: "patient"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Username: "pat", Password: "s3cret", UserType: "doctor"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong role: expected ErrInvalidCredentials, got %v", err)
	}
}
