package salary

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Salary) error
	FindAll(ctx context.Context) ([]Salary, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Salary, error)
	Update(ctx context.Context, s *Salary) error
	Delete(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Salary, error) {
	var salaries []Salary
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Joins("JOIN employees ON employees.id = salaries.employee_id").
		Order("employees.name ASC").
		Find(&salaries).Error
	return salaries, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&s, "employee_id = ?", employeeID).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, employeeID string) error {
	res := r.db.WithContext(ctx).Delete(&Salary{}, "employee_id = ?", employeeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
