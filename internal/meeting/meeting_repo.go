package meeting

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_repo.go -destination=mock/meeting_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *Meeting) error
	FindAll(ctx context.Context) ([]Meeting, error)
	FindByID(ctx context.Context, id string) (*Meeting, error)
	Update(ctx context.Context, m *Meeting) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Meeting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Meeting, error) {
	var meetings []Meeting
	err := r.db.WithContext(ctx).
		Order("date ASC, time_start ASC").
		Find(&meetings).Error
	return meetings, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Meeting, error) {
	var m Meeting
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) Update(ctx context.Context, m *Meeting) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Meeting{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
