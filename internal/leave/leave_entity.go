package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	TypeVacation = "Vacation"
	TypeSick     = "Sick"
	TypePersonal = "Personal"
	TypeOther    = "Other"
)

type Leave struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeEmail      string     `gorm:"column:employee_email;type:varchar(255);not null;index"`
	EmployeeName       string     `gorm:"column:employee_name;type:varchar(255);not null;default:''"`
	Type               string     `gorm:"column:type;type:varchar(20);not null"`
	StartDate          string     `gorm:"column:start_date;type:varchar(10);not null"`
	EndDate            string     `gorm:"column:end_date;type:varchar(10);not null"`
	Reason             string     `gorm:"column:reason;type:varchar(255);not null;default:''"`
	Description        string     `gorm:"column:description;type:text;not null;default:''"`
	Status             string     `gorm:"column:status;type:varchar(20);not null;default:Pending;index"`
	AdminJustification string     `gorm:"column:admin_justification;type:text;not null;default:''"`
	ReviewedAt         *time.Time `gorm:"column:reviewed_at"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (Leave) TableName() string {
	return "leaves"
}
