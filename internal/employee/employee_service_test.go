package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	employeeMock "go-ems/internal/employee/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	svc := employee.NewService(repo, dbRedis)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - defaults status to Active", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{
			Name:       "Jane Roe",
			Email:      "jane@example.com",
			Position:   "Engineer",
			Department: "Engineering",
			JoinDate:   "2026-01-01",
		}
		empID := uuid.New()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, req.Name, e.Name)
				assert.Equal(t, req.Email, e.Email)
				assert.Equal(t, employee.StatusActive, e.Status)
				e.ID = empID
				return nil
			})

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, empID.String(), resp.ID)
		assert.Equal(t, employee.StatusActive, resp.Status)
	})

	t.Run("duplicate email -> conflict error", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{Name: "Jane Roe", Email: "jane@example.com"}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("repo error", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{Name: "Jane Roe", Email: "jane@example.com"}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("success with filter", func(t *testing.T) {
		filter := employee.ListFilter{Department: "Engineering"}
		mockEmployees := []employee.Employee{
			{ID: uuid.New(), Name: "Andi", Email: "andi@corp.com", Department: "Engineering"},
			{ID: uuid.New(), Name: "Budi", Email: "budi@corp.com", Department: "Engineering"},
		}

		deps.repo.EXPECT().
			FindAll(ctx, filter).
			Return(mockEmployees, nil).
			Times(1)

		resp, err := deps.service.GetAll(ctx, filter)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Andi", resp[0].Name)
	})

	t.Run("error repository", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAll(ctx, employee.ListFilter{}).
			Return(nil, errors.New("db error"))

		resp, err := deps.service.GetAll(ctx, employee.ListFilter{})

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips database", func(t *testing.T) {
		deps := setupServiceTest(t)
		expected := []employee.EmployeeOption{
			{ID: uuid.New().String(), Name: "Caca", Email: "caca@corp.com"},
		}
		jsonResp, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Caca", resp[0].Name)
	})

	t.Run("cache miss loads from database and stores", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()

		mockEmployees := []employee.Employee{
			{ID: uuid.New(), Name: "Deni", Email: "deni@corp.com"},
		}
		deps.repo.EXPECT().
			FindOptions(gomock.Any()).
			Return(mockEmployees, nil).
			Times(1)

		expected := []employee.EmployeeOption{
			{ID: mockEmployees[0].ID.String(), Name: "Deni", Email: "deni@corp.com"},
		}
		jsonData, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey, jsonData, 1*time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Deni", resp[0].Name)
	})

	t.Run("database error is returned", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()

		deps.repo.EXPECT().
			FindOptions(gomock.Any()).
			Return(nil, errors.New("database connection lost")).
			Times(1)

		resp, err := deps.service.GetOptions(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "database connection lost")
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expected := &employee.Employee{
			ID:   uuid.MustParse(targetID),
			Name: "HR",
		}

		deps.repo.EXPECT().
			FindByID(ctx, targetID).
			Return(expected, nil).
			Times(1)

		resp, err := deps.service.GetByID(ctx, targetID)

		assert.NoError(t, err)
		assert.Equal(t, targetID, resp.ID)
	})

	t.Run("not found maps to domain error", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByID(ctx, targetID).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetByID(ctx, targetID)

		assert.Error(t, err)
		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success - partial fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.UpdateEmployeeRequest{Position: "Senior Engineer", Status: employee.StatusOnLeave}

		existing := &employee.Employee{
			ID:       targetID,
			Name:     "Jane Roe",
			Email:    "jane@example.com",
			Position: "Engineer",
			Status:   employee.StatusActive,
		}
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(existing, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Senior Engineer", e.Position)
				assert.Equal(t, employee.StatusOnLeave, e.Status)
				assert.Equal(t, "Jane Roe", e.Name)
				return nil
			})

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, targetID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Senior Engineer", resp.Position)
		assert.Equal(t, "Jane Roe", resp.Name)
	})

	t.Run("error - employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.UpdateEmployeeRequest{Position: "Senior Engineer"}

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.Update(ctx, targetID.String(), req)

		assert.Error(t, err)
		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("error - update failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.UpdateEmployeeRequest{Position: "Senior Engineer"}

		existing := &employee.Employee{ID: targetID}
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(existing, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			Return(errors.New("db connection error"))

		_, err := deps.service.Update(ctx, targetID.String(), req)

		assert.Error(t, err)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Delete(ctx, targetID).
			Return(nil)

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		err := deps.service.Delete(ctx, targetID)

		assert.NoError(t, err)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Delete(ctx, targetID).
			Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, targetID)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
