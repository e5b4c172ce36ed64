package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive     = "Active"
	StatusOnLeave    = "On Leave"
	StatusTerminated = "Terminated"
)

// Employee is the profile record. Email doubles as the natural key used by
// attendance and leave lookups, so it stays unique and immutable in practice.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Position   string    `gorm:"type:varchar(120);not null;default:''"`
	Department string    `gorm:"type:varchar(120);not null;default:'';index"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	Phone      string    `gorm:"type:varchar(40);not null;default:''"`
	Avatar     string    `gorm:"type:text;not null;default:''"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Active';index"`
	JoinDate   string    `gorm:"type:varchar(10)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Employee) TableName() string {
	return "employees"
}
