package salary_test

import (
	"context"
	"testing"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	employeeMock "go-ems/internal/employee/mock"
	"go-ems/internal/salary"
	salaryerrors "go-ems/internal/salary/errors"
	"go-ems/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeSalaryRepo struct {
	CreateFn           func(ctx context.Context, s *salary.Salary) error
	FindAllFn          func(ctx context.Context) ([]salary.Salary, error)
	FindByEmployeeIDFn func(ctx context.Context, employeeID string) (*salary.Salary, error)
	UpdateFn           func(ctx context.Context, s *salary.Salary) error
	DeleteFn           func(ctx context.Context, employeeID string) error
}

func (f *fakeSalaryRepo) Create(ctx context.Context, s *salary.Salary) error {
	return f.CreateFn(ctx, s)
}
func (f *fakeSalaryRepo) FindAll(ctx context.Context) ([]salary.Salary, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeSalaryRepo) FindByEmployeeID(ctx context.Context, employeeID string) (*salary.Salary, error) {
	return f.FindByEmployeeIDFn(ctx, employeeID)
}
func (f *fakeSalaryRepo) Update(ctx context.Context, s *salary.Salary) error {
	return f.UpdateFn(ctx, s)
}
func (f *fakeSalaryRepo) Delete(ctx context.Context, employeeID string) error {
	return f.DeleteFn(ctx, employeeID)
}

func TestSalaryService_Create(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	t.Run("derives gross and net, defaults dept from employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		emplRepo.EXPECT().
			FindByID(ctx, empID.String()).
			Return(&employee.Employee{ID: empID, Department: "Engineering", Position: "Engineer"}, nil)

		var saved *salary.Salary
		repo := &fakeSalaryRepo{
			CreateFn: func(ctx context.Context, s *salary.Salary) error {
				saved = s
				return nil
			},
		}

		svc := salary.NewService(repo, emplRepo)
		resp, err := svc.Create(ctx, salary.CreateSalaryRequest{
			EmployeeID: empID.String(),
			BaseSalary: 50000,
			Allowances: salary.Allowances{HRA: 5000, Travel: 2000, Medical: 1000},
			Deductions: salary.Deductions{PF: 2000, Tax: 3000, Insurance: 300},
		})

		assert.NoError(t, err)
		assert.Equal(t, 58000.0, saved.GrossSalary)
		assert.Equal(t, 52700.0, saved.NetSalary)
		assert.Equal(t, "Engineering", saved.Department)
		assert.Equal(t, "Engineer", saved.Designation)
		assert.Equal(t, 58000.0, resp.GrossSalary)
	})

	t.Run("unknown employee -> 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		emplRepo.EXPECT().
			FindByID(ctx, empID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		svc := salary.NewService(&fakeSalaryRepo{}, emplRepo)
		_, err := svc.Create(ctx, salary.CreateSalaryRequest{
			EmployeeID: empID.String(),
			BaseSalary: 50000,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("duplicate structure -> 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		emplRepo.EXPECT().
			FindByID(ctx, empID.String()).
			Return(&employee.Employee{ID: empID}, nil)

		repo := &fakeSalaryRepo{
			CreateFn: func(ctx context.Context, s *salary.Salary) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_employee"}
			},
		}

		svc := salary.NewService(repo, emplRepo)
		_, err := svc.Create(ctx, salary.CreateSalaryRequest{
			EmployeeID: empID.String(),
			BaseSalary: 50000,
		})

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryAlreadyExists)
	})
}

func TestSalaryService_Update(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	t.Run("recomputes derived values on every write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)

		existing := &salary.Salary{
			ID:          uuid.New(),
			EmployeeID:  empID,
			BaseSalary:  50000,
			HRA:         5000,
			GrossSalary: 55000,
			NetSalary:   55000,
		}
		repo := &fakeSalaryRepo{
			FindByEmployeeIDFn: func(ctx context.Context, employeeID string) (*salary.Salary, error) {
				return existing, nil
			},
			UpdateFn: func(ctx context.Context, s *salary.Salary) error {
				assert.Equal(t, 66000.0, s.GrossSalary)
				assert.Equal(t, 61000.0, s.NetSalary)
				return nil
			},
		}

		newBase := 60000.0
		svc := salary.NewService(repo, emplRepo)
		resp, err := svc.Update(ctx, empID.String(), salary.UpdateSalaryRequest{
			BaseSalary: &newBase,
			Allowances: &salary.Allowances{HRA: 6000},
			Deductions: &salary.Deductions{PF: 2000, Tax: 3000},
		})

		assert.NoError(t, err)
		assert.Equal(t, 66000.0, resp.GrossSalary)
		assert.Equal(t, 61000.0, resp.NetSalary)
	})

	t.Run("missing structure -> not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)

		repo := &fakeSalaryRepo{
			FindByEmployeeIDFn: func(ctx context.Context, employeeID string) (*salary.Salary, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := salary.NewService(repo, emplRepo)
		_, err := svc.Update(ctx, empID.String(), salary.UpdateSalaryRequest{})

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})
}

func TestSalaryService_GetByEmployee(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	sal := &salary.Salary{
		ID:         uuid.New(),
		EmployeeID: empID,
		BaseSalary: 50000,
		Employee:   &salary.EmployeeRef{ID: empID, Name: "Jane Roe", Email: "jane@corp.com"},
	}

	t.Run("self read allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		repo := &fakeSalaryRepo{
			FindByEmployeeIDFn: func(ctx context.Context, employeeID string) (*salary.Salary, error) {
				return sal, nil
			},
		}

		svc := salary.NewService(repo, emplRepo)
		resp, err := svc.GetByEmployee(ctx, empID.String(), "jane@corp.com", false)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Roe", resp.EmployeeName)
	})

	t.Run("other employee's structure forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		repo := &fakeSalaryRepo{
			FindByEmployeeIDFn: func(ctx context.Context, employeeID string) (*salary.Salary, error) {
				return sal, nil
			},
		}

		svc := salary.NewService(repo, emplRepo)
		_, err := svc.GetByEmployee(ctx, empID.String(), "other@corp.com", false)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("privileged caller reads anyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		repo := &fakeSalaryRepo{
			FindByEmployeeIDFn: func(ctx context.Context, employeeID string) (*salary.Salary, error) {
				return sal, nil
			},
		}

		svc := salary.NewService(repo, emplRepo)
		resp, err := svc.GetByEmployee(ctx, empID.String(), "admin@corp.com", true)

		assert.NoError(t, err)
		assert.Equal(t, empID.String(), resp.EmployeeID)
	})
}
