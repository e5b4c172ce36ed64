package attendance_test

import (
	"context"
	"errors"
	"testing"

	"go-ems/internal/attendance"

	"github.com/stretchr/testify/assert"
)

type fakeAttendanceRepo struct {
	UpsertDayFn   func(ctx context.Context, day *attendance.AttendanceDay) error
	FindByEmailFn func(ctx context.Context, email string) ([]attendance.AttendanceDay, error)
	FindAllFn     func(ctx context.Context) ([]attendance.AttendanceDay, error)
}

func (f *fakeAttendanceRepo) UpsertDay(ctx context.Context, day *attendance.AttendanceDay) error {
	return f.UpsertDayFn(ctx, day)
}
func (f *fakeAttendanceRepo) FindByEmail(ctx context.Context, email string) ([]attendance.AttendanceDay, error) {
	return f.FindByEmailFn(ctx, email)
}
func (f *fakeAttendanceRepo) FindAll(ctx context.Context) ([]attendance.AttendanceDay, error) {
	return f.FindAllFn(ctx)
}
func strPtr(s string) *string { return &s }

func TestAttendanceService_UpsertDay(t *testing.T) {
	ctx := context.Background()

	t.Run("status defaults to Unmarked", func(t *testing.T) {
		var saved *attendance.AttendanceDay
		repo := &fakeAttendanceRepo{
			UpsertDayFn: func(ctx context.Context, day *attendance.AttendanceDay) error {
				saved = day
				return nil
			},
		}

		svc := attendance.NewService(repo)
		resp, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{
			EmployeeEmail: "jane@example.com",
			Date:          "2026-08-28",
		})

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusUnmarked, saved.Status)
		assert.Equal(t, attendance.StatusUnmarked, resp.Status)
		assert.Nil(t, resp.ClockIn)
	})

	t.Run("full record persisted", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			UpsertDayFn: func(ctx context.Context, day *attendance.AttendanceDay) error {
				assert.Equal(t, attendance.StatusPresent, day.Status)
				assert.Equal(t, "2026-08-28T09:00:00Z", *day.ClockIn)
				return nil
			},
		}

		svc := attendance.NewService(repo)
		_, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{
			EmployeeEmail: "jane@example.com",
			Date:          "2026-08-28",
			Status:        attendance.StatusPresent,
			ClockIn:       strPtr("2026-08-28T09:00:00Z"),
			ClockOut:      strPtr("2026-08-28T17:30:00Z"),
		})

		assert.NoError(t, err)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			UpsertDayFn: func(ctx context.Context, day *attendance.AttendanceDay) error {
				return errors.New("db error")
			},
		}

		svc := attendance.NewService(repo)
		_, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{
			EmployeeEmail: "jane@example.com",
			Date:          "2026-08-28",
		})

		assert.Error(t, err)
	})
}

func TestAttendanceService_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("empty sheet is not an error", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			FindByEmailFn: func(ctx context.Context, email string) ([]attendance.AttendanceDay, error) {
				return nil, nil
			},
		}

		svc := attendance.NewService(repo)
		sheet, err := svc.GetByEmail(ctx, "new@example.com")

		assert.NoError(t, err)
		assert.Empty(t, sheet)
		assert.NotNil(t, sheet)
	})

	t.Run("sheet keyed by date", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			FindByEmailFn: func(ctx context.Context, email string) ([]attendance.AttendanceDay, error) {
				return []attendance.AttendanceDay{
					{EmployeeEmail: email, Date: "2026-08-27", Status: attendance.StatusPresent},
					{EmployeeEmail: email, Date: "2026-08-28", Status: attendance.StatusAbsent},
				}, nil
			},
		}

		svc := attendance.NewService(repo)
		sheet, err := svc.GetByEmail(ctx, "jane@example.com")

		assert.NoError(t, err)
		assert.Len(t, sheet, 2)
		assert.Equal(t, attendance.StatusPresent, sheet["2026-08-27"].Status)
		assert.Equal(t, attendance.StatusAbsent, sheet["2026-08-28"].Status)
	})
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("grouped by employee email", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			FindAllFn: func(ctx context.Context) ([]attendance.AttendanceDay, error) {
				return []attendance.AttendanceDay{
					{EmployeeEmail: "a@corp.com", Date: "2026-08-27", Status: attendance.StatusPresent},
					{EmployeeEmail: "a@corp.com", Date: "2026-08-28", Status: attendance.StatusPresent},
					{EmployeeEmail: "b@corp.com", Date: "2026-08-28", Status: attendance.StatusAbsent},
				}, nil
			},
		}

		svc := attendance.NewService(repo)
		all, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Len(t, all["a@corp.com"], 2)
		assert.Equal(t, attendance.StatusAbsent, all["b@corp.com"]["2026-08-28"].Status)
	})
}
