package payroll_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-ems/internal/employee"
	employeeMock "go-ems/internal/employee/mock"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	kafkaMock "go-ems/internal/messaging/kafka/mock"
	"go-ems/internal/payroll"
	payrollerrors "go-ems/internal/payroll/errors"
	"go-ems/internal/salary"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakePayrollRepo struct {
	CreateFn         func(ctx context.Context, p *payroll.Payroll) error
	FindAllFn        func(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error)
	FindByIDFn       func(ctx context.Context, id string) (*payroll.Payroll, error)
	FindByEmployeeFn func(ctx context.Context, employeeID string) ([]payroll.Payroll, error)
	UpdateFn         func(ctx context.Context, p *payroll.Payroll) error
}

func (f *fakePayrollRepo) Create(ctx context.Context, p *payroll.Payroll) error {
	return f.CreateFn(ctx, p)
}
func (f *fakePayrollRepo) FindAll(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error) {
	return f.FindAllFn(ctx, filter)
}
func (f *fakePayrollRepo) FindByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakePayrollRepo) FindByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	return f.FindByEmployeeFn(ctx, employeeID)
}
func (f *fakePayrollRepo) Update(ctx context.Context, p *payroll.Payroll) error {
	return f.UpdateFn(ctx, p)
}

type fakeSalaryRepo struct {
	FindByEmployeeIDFn func(ctx context.Context, employeeID string) (*salary.Salary, error)
}

func (f *fakeSalaryRepo) Create(ctx context.Context, s *salary.Salary) error { return nil }
func (f *fakeSalaryRepo) FindAll(ctx context.Context) ([]salary.Salary, error) {
	return nil, nil
}
func (f *fakeSalaryRepo) FindByEmployeeID(ctx context.Context, employeeID string) (*salary.Salary, error) {
	return f.FindByEmployeeIDFn(ctx, employeeID)
}
func (f *fakeSalaryRepo) Update(ctx context.Context, s *salary.Salary) error { return nil }
func (f *fakeSalaryRepo) Delete(ctx context.Context, employeeID string) error {
	return nil
}

func TestPayrollService_Generate(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	empA := employee.Employee{ID: uuid.New(), Name: "Alice", Email: "alice@corp.com", Status: employee.StatusActive}
	empB := employee.Employee{ID: uuid.New(), Name: "Bob", Email: "bob@corp.com", Status: employee.StatusActive}

	t.Run("fail-soft accumulation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		emplRepo.EXPECT().
			FindActive(ctx, gomock.Nil()).
			Return([]employee.Employee{empA, empB}, nil)

		salaryRepo := &fakeSalaryRepo{
			FindByEmployeeIDFn: func(ctx context.Context, employeeID string) (*salary.Salary, error) {
				if employeeID == empA.ID.String() {
					return &salary.Salary{EmployeeID: empA.ID, BaseSalary: 50000, GrossSalary: 58000, NetSalary: 52700}, nil
				}
				return nil, gorm.ErrRecordNotFound
			},
		}

		repo := &fakePayrollRepo{
			CreateFn: func(ctx context.Context, p *payroll.Payroll) error {
				assert.Equal(t, "August", p.Month)
				assert.Equal(t, 2026, p.Year)
				assert.Equal(t, 58000.0, p.GrossSalary)
				assert.Equal(t, payroll.StatusPending, p.Status)
				return nil
			},
		}

		svc := payroll.NewService(repo, salaryRepo, emplRepo, outbox, clock.Fixed(fixedNow))
		result, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: 8, Year: 2026})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Generated)
		assert.Len(t, result.Payrolls, 1)
		assert.Len(t, result.Errors, 1)
		assert.Equal(t, "Salary structure not found", result.Errors[0].Reason)
		assert.Equal(t, empB.ID.String(), result.Errors[0].EmployeeID)
	})

	t.Run("duplicate run yields per-employee conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		emplRepo.EXPECT().
			FindActive(ctx, gomock.Nil()).
			Return([]employee.Employee{empA}, nil)

		salaryRepo := &fakeSalaryRepo{
			FindByEmployeeIDFn: func(ctx context.Context, employeeID string) (*salary.Salary, error) {
				return &salary.Salary{EmployeeID: empA.ID, BaseSalary: 50000, NetSalary: 52700}, nil
			},
		}
		repo := &fakePayrollRepo{
			CreateFn: func(ctx context.Context, p *payroll.Payroll) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_employee_month"}
			},
		}

		svc := payroll.NewService(repo, salaryRepo, emplRepo, outbox, clock.Fixed(fixedNow))
		result, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{Month: 8, Year: 2026})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Generated)
		assert.Len(t, result.Errors, 1)
		assert.Equal(t, "Payroll already exists for this month", result.Errors[0].Reason)
	})

	t.Run("no active employees -> 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		emplRepo.EXPECT().
			FindActive(ctx, gomock.Any()).
			Return(nil, nil)

		svc := payroll.NewService(&fakePayrollRepo{}, &fakeSalaryRepo{}, emplRepo, outbox, clock.Fixed(fixedNow))
		_, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{
			Month:       8,
			Year:        2026,
			EmployeeIDs: []string{uuid.New().String()},
		})

		assert.ErrorIs(t, err, payrollerrors.ErrNoActiveEmployees)
	})

	t.Run("overtime and bonus applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		emplRepo.EXPECT().
			FindActive(ctx, gomock.Nil()).
			Return([]employee.Employee{empA}, nil)

		salaryRepo := &fakeSalaryRepo{
			FindByEmployeeIDFn: func(ctx context.Context, employeeID string) (*salary.Salary, error) {
				return &salary.Salary{EmployeeID: empA.ID, BaseSalary: 50000, NetSalary: 52700}, nil
			},
		}
		repo := &fakePayrollRepo{
			CreateFn: func(ctx context.Context, p *payroll.Payroll) error {
				assert.InDelta(t, 4261.36, p.OvertimePay, 0.01)
				assert.InDelta(t, 58961.36, p.TotalPayable, 0.01)
				return nil
			},
		}

		svc := payroll.NewService(repo, salaryRepo, emplRepo, outbox, clock.Fixed(fixedNow))
		result, err := svc.Generate(ctx, payroll.GeneratePayrollRequest{
			Month:         8,
			Year:          2026,
			Bonus:         2000,
			OvertimeHours: 10,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Generated)
	})
}

func TestPayrollService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	empID := uuid.New()

	existing := func() *payroll.Payroll {
		return &payroll.Payroll{
			ID:         id,
			EmployeeID: empID,
			Month:      "August",
			Year:       2026,
			BaseSalary: 50000,
			NetSalary:  52700,
			Status:     payroll.StatusPending,
		}
	}

	t.Run("marking Paid stamps payment date and queues payslip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		repo := &fakePayrollRepo{
			FindByIDFn: func(ctx context.Context, gotID string) (*payroll.Payroll, error) {
				return existing(), nil
			},
			UpdateFn: func(ctx context.Context, p *payroll.Payroll) error {
				assert.Equal(t, payroll.StatusPaid, p.Status)
				assert.NotNil(t, p.PaymentDate)
				assert.Equal(t, fixedNow, *p.PaymentDate)
				return nil
			},
		}

		outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.PayrollPayslipRequestedTopic, event.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)
				var payload events.PayrollPayslipRequestedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, id.String(), payload.PayrollID)
				return nil
			})

		svc := payroll.NewService(repo, &fakeSalaryRepo{}, emplRepo, outbox, clock.Fixed(fixedNow))
		resp, err := svc.UpdateStatus(ctx, id.String(), payroll.UpdateStatusRequest{
			Status:      payroll.StatusPaid,
			PaymentMode: "Bank Transfer",
		})

		assert.NoError(t, err)
		assert.Equal(t, payroll.StatusPaid, resp.Status)
		assert.Equal(t, "2026-08-28", resp.PaymentDate)
	})

	t.Run("non-paid transition does not queue event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		repo := &fakePayrollRepo{
			FindByIDFn: func(ctx context.Context, gotID string) (*payroll.Payroll, error) {
				return existing(), nil
			},
			UpdateFn: func(ctx context.Context, p *payroll.Payroll) error { return nil },
		}

		svc := payroll.NewService(repo, &fakeSalaryRepo{}, emplRepo, outbox, clock.Fixed(fixedNow))
		resp, err := svc.UpdateStatus(ctx, id.String(), payroll.UpdateStatusRequest{
			Status: payroll.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, payroll.StatusApproved, resp.Status)
		assert.Empty(t, resp.PaymentDate)
	})

	t.Run("unknown payroll -> not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		repo := &fakePayrollRepo{
			FindByIDFn: func(ctx context.Context, gotID string) (*payroll.Payroll, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := payroll.NewService(repo, &fakeSalaryRepo{}, emplRepo, outbox, clock.Fixed(fixedNow))
		_, err := svc.UpdateStatus(ctx, uuid.New().String(), payroll.UpdateStatusRequest{
			Status: payroll.StatusPaid,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})
}

func TestPayrollService_GetAll(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	emplRepo := employeeMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	rows := []payroll.Payroll{
		{ID: uuid.New(), Month: "August", Year: 2026, TotalPayable: 52700,
			Employee: &payroll.EmployeeRef{Name: "Alice", Department: "Engineering"}},
		{ID: uuid.New(), Month: "August", Year: 2026, TotalPayable: 41000,
			Employee: &payroll.EmployeeRef{Name: "Bob", Department: "Sales"}},
	}
	repo := &fakePayrollRepo{
		FindAllFn: func(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error) {
			return rows, nil
		},
	}
	svc := payroll.NewService(repo, &fakeSalaryRepo{}, emplRepo, outbox, clock.System())

	t.Run("department filter applied in memory", func(t *testing.T) {
		resp, err := svc.GetAll(ctx, payroll.ListFilter{Department: "Sales"})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Bob", resp[0].EmployeeName)
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		resp, err := svc.GetAll(ctx, payroll.ListFilter{})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}

func TestPayrollService_Trend(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	rows := []payroll.Payroll{
		{ID: uuid.New(), EmployeeID: empID, Month: "February", Year: 2026, TotalPayable: 51000},
		{ID: uuid.New(), EmployeeID: empID, Month: "December", Year: 2025, TotalPayable: 50000},
		{ID: uuid.New(), EmployeeID: empID, Month: "January", Year: 2026, TotalPayable: 50500},
	}

	t.Run("points sorted chronologically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		repo := &fakePayrollRepo{
			FindByEmployeeFn: func(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
				return rows, nil
			},
		}

		svc := payroll.NewService(repo, &fakeSalaryRepo{}, emplRepo, outbox, clock.System())
		points, err := svc.Trend(ctx, empID.String(), "admin@corp.com", true)

		assert.NoError(t, err)
		assert.Len(t, points, 3)
		assert.Equal(t, "December", points[0].Month)
		assert.Equal(t, "January", points[1].Month)
		assert.Equal(t, "February", points[2].Month)
	})

	t.Run("self access enforced by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emplRepo := employeeMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)

		emplRepo.EXPECT().
			FindByID(ctx, empID.String()).
			Return(&employee.Employee{ID: empID, Email: "alice@corp.com"}, nil)

		repo := &fakePayrollRepo{}
		svc := payroll.NewService(repo, &fakeSalaryRepo{}, emplRepo, outbox, clock.System())
		_, err := svc.Trend(ctx, empID.String(), "bob@corp.com", false)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestPayrollService_Summary(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	emplRepo := employeeMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	rows := []payroll.Payroll{
		{TotalPayable: 50000, Bonus: 1000, OvertimePay: 500, Status: payroll.StatusPaid},
		{TotalPayable: 40000, Bonus: 0, OvertimePay: 0, Status: payroll.StatusPending},
	}
	repo := &fakePayrollRepo{
		FindAllFn: func(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error) {
			return rows, nil
		},
	}

	svc := payroll.NewService(repo, &fakeSalaryRepo{}, emplRepo, outbox, clock.System())
	sum, err := svc.Summary(ctx, payroll.ListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, 90000.0, sum.TotalPayable)
	assert.Equal(t, 1, sum.Paid)
	assert.Equal(t, 1, sum.Pending)
	assert.Equal(t, 45000.0, sum.AveragePay)
}
