package salary

import (
	"time"

	"github.com/google/uuid"
)

// Salary is one employee's pay structure. One row per employee; the unique
// index backs the create-once rule under concurrent requests.
type Salary struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_salary_employee"`
	BaseSalary  float64   `gorm:"column:base_salary;not null"`
	HRA         float64   `gorm:"column:hra;not null;default:0"`
	Travel      float64   `gorm:"column:travel;not null;default:0"`
	Medical     float64   `gorm:"column:medical;not null;default:0"`
	PF          float64   `gorm:"column:pf;not null;default:0"`
	Tax         float64   `gorm:"column:tax;not null;default:0"`
	Insurance   float64   `gorm:"column:insurance;not null;default:0"`
	GrossSalary float64   `gorm:"column:gross_salary;not null"`
	NetSalary   float64   `gorm:"column:net_salary;not null"`
	Department  string    `gorm:"column:department;type:varchar(120);not null;default:''"`
	Designation string    `gorm:"column:designation;type:varchar(120);not null;default:''"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Salary) TableName() string {
	return "salaries"
}

// EmployeeRef is a read-only projection of the employees table used for
// preloads.
type EmployeeRef struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"column:name"`
	Email  string    `gorm:"column:email"`
	Status string    `gorm:"column:status"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
