package employee

import (
	"context"

	"gorm.io/gorm"
)

// ListFilter narrows FindAll. Empty fields are ignored.
type ListFilter struct {
	Department string
	Status     string
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindActive(ctx context.Context, ids []string) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	var emps []Employee
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "email = ?", email).Error
	return &emp, err
}

// FindActive returns Active employees. When ids is non-empty the result is
// restricted to those ids; otherwise every Active employee is returned.
func (r *repository) FindActive(ctx context.Context, ids []string) ([]Employee, error) {
	var emps []Employee
	q := r.db.WithContext(ctx).Where("status = ?", StatusActive)
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}
	err := q.Find(&emps).Error
	return emps, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Select("id", "name", "email").
		Where("status = ?", StatusActive).
		Order("name ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
