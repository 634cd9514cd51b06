package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/medirec/hospital-service/internal/auth"
	"github.com/medirec/hospital-service/internal/events"
	"github.com/medirec/hospital-service/internal/models"
	"github.com/medirec/hospital-service/internal/repositories"
	"github.com/medirec/hospital-service/internal/validator"
)

// HashPassword derives a salted, iterated password hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type authService struct {
	repo      repositories.Repository
	tokens    *auth.TokenManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAuthService(
	repo repositories.Repository,
	tokens *auth.TokenManager,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) AuthService {
	return &authService{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

// Register creates one account row in the table matching the requested role.
// The cross-table username check and the insert run inside one transaction so
// two concurrent registrations of the same username cannot both pass the
// check.
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResult, error) {
	req.Role = strings.ToLower(req.Role)

	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	role := models.AccountRole(req.Role)

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var accountID uint
	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Account().UsernameExists(ctx, req.Username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}

		switch role {
		case models.RoleAdmin:
			admin := &models.Admin{
				Name:     req.Name,
				Username: req.Username,
				Password: hash,
				Email:    req.Email,
				Phone:    req.Phone,
			}
			if err := tx.Admin().Create(ctx, admin); err != nil {
				return err
			}
			accountID = admin.ID

		case models.RoleDoctor:
			specialization := req.Specialization
			if specialization == "" {
				specialization = "General"
			}
			doctor := &models.Doctor{
				Name:           req.Name,
				Username:       req.Username,
				Password:       hash,
				Email:          req.Email,
				Phone:          req.Phone,
				Specialization: specialization,
			}
			if err := tx.Doctor().Create(ctx, doctor); err != nil {
				return err
			}
			accountID = doctor.ID

		case models.RolePatient:
			patient := &models.Patient{
				Name:     req.Name,
				Username: req.Username,
				Password: hash,
				Email:    req.Email,
				Phone:    req.Phone,
				Address:  req.Address,
			}
			if err := tx.Patient().Create(ctx, patient); err != nil {
				return err
			}
			accountID = patient.ID
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewEvent(events.EventAccountRegistered, events.AccountRegisteredEvent{
		AccountID: accountID,
		Username:  req.Username,
		Role:      string(role),
	}))

	s.logger.Info("Account registered", "username", req.Username, "role", role)

	return &RegisterResult{Username: req.Username, Role: role}, nil
}

// Login verifies credentials against the table matching user_type and issues
// a signed session token.
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	req.UserType = strings.ToLower(req.UserType)

	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	role := models.AccountRole(req.UserType)

	account, err := s.repo.Account().FindByUsername(ctx, role, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(account.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(account)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login successful", "username", account.Username, "role", role)

	return &LoginResult{
		User: LoginUser{
			ID:       account.ID,
			Username: account.Username,
			Name:     account.Name,
			UserType: role,
		},
		Token: token,
	}, nil
}

func (s *authService) publishEvent(ctx context.Context, event *events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "error", err, "event_type", event.Type)
	}
}
