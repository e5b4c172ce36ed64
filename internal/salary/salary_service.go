package salary

import (
	"context"
	"errors"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context) ([]SalaryResponse, error)
	GetByEmployee(ctx context.Context, employeeID, requesterEmail string, privileged bool) (SalaryResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	empl, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return SalaryResponse{}, err
	}

	department := req.Department
	if department == "" {
		department = empl.Department
	}
	designation := req.Designation
	if designation == "" {
		designation = empl.Position
	}

	// Derived values are recomputed on every write; stored gross/net are
	// never trusted from the client.
	gross, net := Calculate(req.BaseSalary, req.Allowances, req.Deductions)

	sal := &Salary{
		ID:          uuid.New(),
		EmployeeID:  empl.ID,
		BaseSalary:  req.BaseSalary,
		HRA:         req.Allowances.HRA,
		Travel:      req.Allowances.Travel,
		Medical:     req.Allowances.Medical,
		PF:          req.Deductions.PF,
		Tax:         req.Deductions.Tax,
		Insurance:   req.Deductions.Insurance,
		GrossSalary: gross,
		NetSalary:   net,
		Department:  department,
		Designation: designation,
	}

	if err := s.repo.Create(ctx, sal); err != nil {
		s.logger.Error("create salary persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return SalaryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("salary created",
		zap.String("request_id", rid),
		zap.String("salary_id", sal.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapSalary(*sal), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryResponse, error) {
	salaries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all salaries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]SalaryResponse, len(salaries))
	for i, sal := range salaries {
		res[i] = mapSalary(sal)
	}
	return res, nil
}

// GetByEmployee returns the structure for one employee. Non-privileged
// callers may only read their own, matched by account email.
func (s *service) GetByEmployee(ctx context.Context, employeeID, requesterEmail string, privileged bool) (SalaryResponse, error) {
	sal, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if !privileged {
		if sal.Employee == nil || sal.Employee.Email != requesterEmail {
			return SalaryResponse{}, apperror.ErrForbidden
		}
	}

	return mapSalary(*sal), nil
}

func (s *service) Update(ctx context.Context, employeeID string, req UpdateSalaryRequest) (SalaryResponse, error) {
	sal, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if req.BaseSalary != nil {
		sal.BaseSalary = *req.BaseSalary
	}
	if req.Allowances != nil {
		sal.HRA = req.Allowances.HRA
		sal.Travel = req.Allowances.Travel
		sal.Medical = req.Allowances.Medical
	}
	if req.Deductions != nil {
		sal.PF = req.Deductions.PF
		sal.Tax = req.Deductions.Tax
		sal.Insurance = req.Deductions.Insurance
	}
	if req.Department != "" {
		sal.Department = req.Department
	}
	if req.Designation != "" {
		sal.Designation = req.Designation
	}

	sal.GrossSalary, sal.NetSalary = Calculate(sal.BaseSalary,
		Allowances{HRA: sal.HRA, Travel: sal.Travel, Medical: sal.Medical},
		Deductions{PF: sal.PF, Tax: sal.Tax, Insurance: sal.Insurance},
	)

	if err := s.repo.Update(ctx, sal); err != nil {
		s.logger.Error("update salary failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("salary updated", zap.String("employee_id", employeeID))
	return mapSalary(*sal), nil
}

func (s *service) Delete(ctx context.Context, employeeID string) error {
	if err := s.repo.Delete(ctx, employeeID); err != nil {
		s.logger.Error("delete salary failed", zap.String("employee_id", employeeID), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("salary deleted", zap.String("employee_id", employeeID))
	return nil
}

func mapSalary(sal Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:          sal.ID.String(),
		EmployeeID:  sal.EmployeeID.String(),
		BaseSalary:  sal.BaseSalary,
		Allowances:  Allowances{HRA: sal.HRA, Travel: sal.Travel, Medical: sal.Medical},
		Deductions:  Deductions{PF: sal.PF, Tax: sal.Tax, Insurance: sal.Insurance},
		GrossSalary: sal.GrossSalary,
		NetSalary:   sal.NetSalary,
		Department:  sal.Department,
		Designation: sal.Designation,
	}
	if sal.Employee != nil {
		resp.EmployeeName = sal.Employee.Name
		resp.EmployeeEmail = sal.Employee.Email
	}
	return resp
}
