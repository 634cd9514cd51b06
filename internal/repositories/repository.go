package repositories

import "context"

// Repository aggregates all repository interfaces.
type Repository interface {
	// Account tables
	Admin() AdminRepository
	Doctor() DoctorRepository
	Patient() PatientRepository

	// Cross-table account lookups (shared username namespace)
	Account() AccountRepository

	// Scheduling
	Appointment() AppointmentRepository

	// Dashboard counters
	Dashboard() DashboardRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
