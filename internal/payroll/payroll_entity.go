package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusPaid     = "Paid"
)

// MonthNames maps 1-based month numbers to the stored month-name strings.
var MonthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the stored name for month m (1..12), or "".
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return MonthNames[m-1]
}

// MonthNumber is the inverse of MonthName; 0 for unknown names.
func MonthNumber(name string) int {
	for i, n := range MonthNames {
		if n == name {
			return i + 1
		}
	}
	return 0
}

// Payroll is one employee's pay run for one month. The unique index makes
// duplicate generation a per-employee conflict rather than a data bug.
type Payroll struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_payroll_employee_month"`
	Month         string     `gorm:"column:month;type:varchar(10);not null;uniqueIndex:uq_payroll_employee_month"`
	Year          int        `gorm:"column:year;not null;uniqueIndex:uq_payroll_employee_month"`
	BaseSalary    float64    `gorm:"column:base_salary;not null"`
	GrossSalary   float64    `gorm:"column:gross_salary;not null;default:0"`
	NetSalary     float64    `gorm:"column:net_salary;not null"`
	Bonus         float64    `gorm:"column:bonus;not null;default:0"`
	OvertimeHours float64    `gorm:"column:overtime_hours;not null;default:0"`
	OvertimePay   float64    `gorm:"column:overtime_pay;not null;default:0"`
	TotalPayable  float64    `gorm:"column:total_payable;not null"`
	Status        string     `gorm:"column:status;type:varchar(20);not null;default:Pending;index"`
	PaymentMode   string     `gorm:"column:payment_mode;type:varchar(30);not null;default:''"`
	PaymentDate   *time.Time `gorm:"column:payment_date"`
	TransactionID string     `gorm:"column:transaction_id;type:varchar(100);not null;default:''"`
	Remarks       string     `gorm:"column:remarks;type:text;not null;default:''"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

// EmployeeRef is a read-only projection of the employees table used for
// preloads and the in-memory department filter.
type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email"`
	Department string    `gorm:"column:department"`
	Status     string    `gorm:"column:status"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
