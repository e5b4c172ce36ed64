package meeting_test

import (
	"context"
	"testing"

	"go-ems/internal/meeting"
	meetingerrors "go-ems/internal/meeting/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeMeetingRepo struct {
	CreateFn   func(ctx context.Context, m *meeting.Meeting) error
	FindAllFn  func(ctx context.Context) ([]meeting.Meeting, error)
	FindByIDFn func(ctx context.Context, id string) (*meeting.Meeting, error)
	UpdateFn   func(ctx context.Context, m *meeting.Meeting) error
	DeleteFn   func(ctx context.Context, id string) error
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *meeting.Meeting) error {
	return f.CreateFn(ctx, m)
}
func (f *fakeMeetingRepo) FindAll(ctx context.Context) ([]meeting.Meeting, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeMeetingRepo) FindByID(ctx context.Context, id string) (*meeting.Meeting, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeMeetingRepo) Update(ctx context.Context, m *meeting.Meeting) error {
	return f.UpdateFn(ctx, m)
}
func (f *fakeMeetingRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestMeetingService_GetMine(t *testing.T) {
	ctx := context.Background()

	all := []meeting.Meeting{
		{ID: uuid.New(), Title: "Town hall", Date: "2026-09-01", TimeStart: "09:00", AllEmployees: true},
		{ID: uuid.New(), Title: "Design sync", Date: "2026-09-01", TimeStart: "11:00", Invitees: []string{"jane@corp.com", "bob@corp.com"}},
		{ID: uuid.New(), Title: "Budget review", Date: "2026-09-02", TimeStart: "10:00", Invitees: []string{"cfo@corp.com"}},
	}
	repo := &fakeMeetingRepo{
		FindAllFn: func(ctx context.Context) ([]meeting.Meeting, error) { return all, nil },
	}
	svc := meeting.NewService(repo)

	t.Run("invitee match plus company-wide, order preserved", func(t *testing.T) {
		mine, err := svc.GetMine(ctx, "jane@corp.com")

		assert.NoError(t, err)
		assert.Len(t, mine, 2)
		assert.Equal(t, "Town hall", mine[0].Title)
		assert.Equal(t, "Design sync", mine[1].Title)
	})

	t.Run("invitee match is case-insensitive", func(t *testing.T) {
		mine, err := svc.GetMine(ctx, "Jane@Corp.com")

		assert.NoError(t, err)
		assert.Len(t, mine, 2)
	})

	t.Run("no membership leaves only company-wide", func(t *testing.T) {
		mine, err := svc.GetMine(ctx, "outsider@corp.com")

		assert.NoError(t, err)
		assert.Len(t, mine, 1)
		assert.True(t, mine[0].AllEmployees)
	})
}

func TestMeetingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("nil invitees stored as empty set", func(t *testing.T) {
		repo := &fakeMeetingRepo{
			CreateFn: func(ctx context.Context, m *meeting.Meeting) error {
				assert.NotNil(t, m.Invitees)
				assert.Equal(t, "hr@corp.com", m.CreatedBy)
				return nil
			},
		}

		svc := meeting.NewService(repo)
		resp, err := svc.Create(ctx, "hr@corp.com", meeting.CreateMeetingRequest{
			Title:        "Standup",
			Date:         "2026-09-01",
			TimeStart:    "09:30",
			AllEmployees: true,
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp.Invitees)
		assert.Empty(t, resp.Invitees)
	})
}

func TestMeetingService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		repo := &fakeMeetingRepo{
			FindByIDFn: func(ctx context.Context, gotID string) (*meeting.Meeting, error) {
				return &meeting.Meeting{ID: id, Title: "Old", Date: "2026-09-01", TimeStart: "09:00", AllEmployees: true}, nil
			},
			UpdateFn: func(ctx context.Context, m *meeting.Meeting) error {
				assert.Equal(t, "New title", m.Title)
				assert.Equal(t, "2026-09-01", m.Date)
				assert.True(t, m.AllEmployees)
				return nil
			},
		}

		svc := meeting.NewService(repo)
		resp, err := svc.Update(ctx, id.String(), meeting.UpdateMeetingRequest{Title: "New title"})

		assert.NoError(t, err)
		assert.Equal(t, "New title", resp.Title)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeMeetingRepo{
			FindByIDFn: func(ctx context.Context, id string) (*meeting.Meeting, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := meeting.NewService(repo)
		_, err := svc.Update(ctx, uuid.New().String(), meeting.UpdateMeetingRequest{Title: "X"})

		assert.ErrorIs(t, err, meetingerrors.ErrMeetingNotFound)
	})
}

func TestMeetingService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo := &fakeMeetingRepo{
			DeleteFn: func(ctx context.Context, id string) error { return gorm.ErrRecordNotFound },
		}

		svc := meeting.NewService(repo)
		err := svc.Delete(ctx, uuid.New().String())

		assert.ErrorIs(t, err, meetingerrors.ErrMeetingNotFound)
	})
}
