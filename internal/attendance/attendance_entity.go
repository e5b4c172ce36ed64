package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent  = "Present"
	StatusAbsent   = "Absent"
	StatusUnmarked = "Unmarked"
)

// AttendanceDay is one day of one employee's sheet. The sheet itself is the
// set of rows sharing an employee_email; (email, date) is unique and a repeat
// upsert for the same day overwrites the previous record.
type AttendanceDay struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeEmail string    `gorm:"column:employee_email;type:varchar(255);not null;uniqueIndex:uq_attendance_email_date"`
	Date          string    `gorm:"column:date;type:varchar(10);not null;uniqueIndex:uq_attendance_email_date"`
	Status        string    `gorm:"column:status;type:varchar(20);not null;default:Unmarked"`
	ClockIn       *string   `gorm:"column:clock_in;type:varchar(32)"`
	ClockOut      *string   `gorm:"column:clock_out;type:varchar(32)"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (AttendanceDay) TableName() string {
	return "attendance_days"
}
