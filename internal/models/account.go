package models

import "time"

type AccountRole string

const (
	RoleAdmin   AccountRole = "admin"
	RoleDoctor  AccountRole = "doctor"
	RolePatient AccountRole = "patient"
)

// ValidRole reports whether r is one of the three account roles.
func ValidRole(r AccountRole) bool {
	return r == RoleAdmin || r == RoleDoctor || r == RolePatient
}

// TableFor returns the table holding accounts of the given role.
func TableFor(r AccountRole) string {
	switch r {
	case RoleAdmin:
		return "admins"
	case RoleDoctor:
		return "doctors"
	case RolePatient:
		return "patients"
	}
	return ""
}

type Admin struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null;size:100"`
	Username string `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Password string `json:"-" gorm:"not null;size:255"`
	Email    string `json:"email" gorm:"not null;size:255"`
	Phone    string `json:"phone" gorm:"not null;size:20"`

	CreatedAt time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

type Doctor struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"not null;size:100"`
	Username       string `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Password       string `json:"-" gorm:"not null;size:255"`
	Email          string `json:"email" gorm:"not null;size:255"`
	Phone          string `json:"phone" gorm:"not null;size:20"`
	Specialization string `json:"specialization" gorm:"not null;size:100;default:General"`

	CreatedAt time.Time `json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

type Patient struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null;size:100"`
	Username string `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Password string `json:"-" gorm:"not null;size:255"`
	Email    string `json:"email" gorm:"not null;size:255"`
	Phone    string `json:"phone" gorm:"not null;size:20"`
	Address  string `json:"address" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Account is the role-independent projection of a stored account row, used by
// authentication where the three tables are interchangeable.
type Account struct {
	ID       uint
	Name     string
	Username string
	Password string
	Role     AccountRole
}
