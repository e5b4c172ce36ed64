package payroll

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Payroll) error
	FindAll(ctx context.Context, filter ListFilter) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	Update(ctx context.Context, p *Payroll) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindAll applies month/year/status in SQL; the department filter runs in
// memory over the preloaded employee rows because department lives on the
// employees table.
func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Payroll, error) {
	var payrolls []Payroll
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Order("year DESC, month ASC, created_at DESC")
	if filter.Month != "" {
		q = q.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("year ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}
