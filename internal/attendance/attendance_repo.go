package attendance

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	UpsertDay(ctx context.Context, day *AttendanceDay) error
	FindByEmail(ctx context.Context, email string) ([]AttendanceDay, error)
	FindAll(ctx context.Context) ([]AttendanceDay, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// UpsertDay inserts or overwrites the record for (email, date). Last write
// wins on conflict.
func (r *repository) UpsertDay(ctx context.Context, day *AttendanceDay) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_email"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "clock_in", "clock_out", "updated_at"}),
		}).
		Create(day).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) ([]AttendanceDay, error) {
	var days []AttendanceDay
	err := r.db.WithContext(ctx).
		Where("employee_email = ?", email).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

func (r *repository) FindAll(ctx context.Context) ([]AttendanceDay, error) {
	var days []AttendanceDay
	err := r.db.WithContext(ctx).
		Order("employee_email ASC, date ASC").
		Find(&days).Error
	return days, err
}

