package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"go-ems/internal/employee"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	payrollerrors "go-ems/internal/payroll/errors"
	"go-ems/internal/salary"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/clock"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (GenerateResult, error)
	GetAll(ctx context.Context, filter ListFilter) ([]PayrollResponse, error)
	GetByEmployee(ctx context.Context, employeeID, requesterEmail string, privileged bool) ([]PayrollResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (PayrollResponse, error)
	Summary(ctx context.Context, filter ListFilter) (SummaryResponse, error)
	Trend(ctx context.Context, employeeID, requesterEmail string, privileged bool) ([]TrendPoint, error)
}

type service struct {
	repo         Repository
	salaryRepo   salary.Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	clk          clock.Clock
	logger       *zap.Logger
}

func NewService(
	repo Repository,
	salaryRepo salary.Repository,
	employeeRepo employee.Repository,
	outbox kafka.OutboxRepository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		repo:         repo,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		outbox:       outbox,
		clk:          clk,
		logger:       l,
	}
}

// Generate runs payroll for the month. Each employee is processed
// independently: a missing salary structure or an existing payroll becomes an
// entry in the errors list, never a failure of the whole run.
func (s *service) Generate(ctx context.Context, req GeneratePayrollRequest) (GenerateResult, error) {
	rid := contextutil.GetRequestID(ctx)
	monthName := MonthName(req.Month)
	s.logger.Info("payroll generation requested",
		zap.String("request_id", rid),
		zap.String("month", monthName),
		zap.Int("year", req.Year),
		zap.Int("explicit_targets", len(req.EmployeeIDs)),
	)

	targets, err := s.employeeRepo.FindActive(ctx, req.EmployeeIDs)
	if err != nil {
		s.logger.Error("payroll generation target lookup failed", zap.String("request_id", rid), zap.Error(err))
		return GenerateResult{}, err
	}
	if len(targets) == 0 {
		return GenerateResult{}, payrollerrors.ErrNoActiveEmployees
	}

	result := GenerateResult{
		Payrolls: []PayrollResponse{},
		Errors:   []GenerationError{},
	}

	for _, empl := range targets {
		sal, err := s.salaryRepo.FindByEmployeeID(ctx, empl.ID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Errors = append(result.Errors, GenerationError{
					EmployeeID:   empl.ID.String(),
					EmployeeName: empl.Name,
					Reason:       "Salary structure not found",
				})
				continue
			}
			result.Errors = append(result.Errors, GenerationError{
				EmployeeID:   empl.ID.String(),
				EmployeeName: empl.Name,
				Reason:       err.Error(),
			})
			continue
		}

		overtimePay, totalPayable := Calculate(sal.BaseSalary, sal.NetSalary, req.Bonus, req.OvertimeHours)

		p := &Payroll{
			ID:            uuid.New(),
			EmployeeID:    empl.ID,
			Month:         monthName,
			Year:          req.Year,
			BaseSalary:    sal.BaseSalary,
			GrossSalary:   sal.GrossSalary,
			NetSalary:     sal.NetSalary,
			Bonus:         req.Bonus,
			OvertimeHours: req.OvertimeHours,
			OvertimePay:   overtimePay,
			TotalPayable:  totalPayable,
			Status:        StatusPending,
		}

		if err := s.repo.Create(ctx, p); err != nil {
			mapped := mapRepositoryError(err)
			reason := "Payroll already exists for this month"
			if !errors.Is(mapped, payrollerrors.ErrPayrollAlreadyExists) {
				reason = mapped.Error()
				s.logger.Error("payroll persist failed",
					zap.String("request_id", rid),
					zap.String("employee_id", empl.ID.String()),
					zap.Error(err),
				)
			}
			result.Errors = append(result.Errors, GenerationError{
				EmployeeID:   empl.ID.String(),
				EmployeeName: empl.Name,
				Reason:       reason,
			})
			continue
		}

		result.Generated++
		resp := mapPayroll(*p)
		resp.EmployeeName = empl.Name
		resp.EmployeeEmail = empl.Email
		resp.Department = empl.Department
		result.Payrolls = append(result.Payrolls, resp)
	}

	s.logger.Info("payroll generation finished",
		zap.String("request_id", rid),
		zap.Int("generated", result.Generated),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all payrolls failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		if filter.Department != "" {
			if p.Employee == nil || p.Employee.Department != filter.Department {
				continue
			}
		}
		res = append(res, mapPayroll(p))
	}
	return res, nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID, requesterEmail string, privileged bool) ([]PayrollResponse, error) {
	if err := s.checkSelfAccess(ctx, employeeID, requesterEmail, privileged); err != nil {
		return nil, err
	}

	payrolls, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	sortChronologically(payrolls)

	res := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		res[i] = mapPayroll(p)
	}
	return res, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	p.Status = req.Status
	if req.PaymentMode != "" {
		p.PaymentMode = req.PaymentMode
	}
	if req.TransactionID != "" {
		p.TransactionID = req.TransactionID
	}
	if req.Remarks != "" {
		p.Remarks = req.Remarks
	}
	if req.PaymentDate != "" {
		if d, err := time.Parse("2006-01-02", req.PaymentDate); err == nil {
			p.PaymentDate = &d
		}
	}
	if p.Status == StatusPaid && p.PaymentDate == nil {
		now := s.clk.Now()
		p.PaymentDate = &now
	}

	// Totals are rederived before every save.
	p.OvertimePay, p.TotalPayable = Calculate(p.BaseSalary, p.NetSalary, p.Bonus, p.OvertimeHours)

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update payroll status failed",
			zap.String("request_id", rid),
			zap.String("payroll_id", id),
			zap.Error(err),
		)
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if p.Status == StatusPaid {
		s.enqueuePayslipEvent(ctx, p, rid)
	}

	s.logger.Info("payroll status updated",
		zap.String("request_id", rid),
		zap.String("payroll_id", id),
		zap.String("status", p.Status),
	)
	return mapPayroll(*p), nil
}

func (s *service) Summary(ctx context.Context, filter ListFilter) (SummaryResponse, error) {
	payrolls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return SummaryResponse{}, mapRepositoryError(err)
	}

	var sum SummaryResponse
	for _, p := range payrolls {
		if filter.Department != "" {
			if p.Employee == nil || p.Employee.Department != filter.Department {
				continue
			}
		}
		sum.Count++
		sum.TotalPayable += p.TotalPayable
		sum.TotalBonus += p.Bonus
		sum.TotalOvertime += p.OvertimePay
		switch p.Status {
		case StatusPaid:
			sum.Paid++
		case StatusPending:
			sum.Pending++
		}
	}
	if sum.Count > 0 {
		sum.AveragePay = sum.TotalPayable / float64(sum.Count)
	}
	return sum, nil
}

// Trend returns the employee's pay history in chronological order.
func (s *service) Trend(ctx context.Context, employeeID, requesterEmail string, privileged bool) ([]TrendPoint, error) {
	if err := s.checkSelfAccess(ctx, employeeID, requesterEmail, privileged); err != nil {
		return nil, err
	}

	payrolls, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	sortChronologically(payrolls)

	points := make([]TrendPoint, len(payrolls))
	for i, p := range payrolls {
		points[i] = TrendPoint{
			Month:        p.Month,
			Year:         p.Year,
			TotalPayable: p.TotalPayable,
			Status:       p.Status,
		}
	}
	return points, nil
}

func (s *service) checkSelfAccess(ctx context.Context, employeeID, requesterEmail string, privileged bool) error {
	if privileged {
		return nil
	}
	empl, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return apperror.ErrForbidden
	}
	if empl.Email != requesterEmail {
		return apperror.ErrForbidden
	}
	return nil
}

func (s *service) enqueuePayslipEvent(ctx context.Context, p *Payroll, rid string) {
	if s.outbox == nil {
		return
	}

	event := events.PayrollPayslipRequestedEvent{
		EventType:   "payroll_payslip_requested",
		PayrollID:   p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		RequestedBy: rid,
		OccurredAt:  s.clk.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal payslip event failed", zap.String("payroll_id", p.ID.String()), zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   p.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollPayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("payslip outbox persist failed",
			zap.String("payroll_id", p.ID.String()),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("payslip event queued", zap.String("payroll_id", p.ID.String()))
}

// Month names sort alphabetically in SQL, so chronological order is fixed up
// here.
func sortChronologically(payrolls []Payroll) {
	sort.SliceStable(payrolls, func(i, j int) bool {
		if payrolls[i].Year != payrolls[j].Year {
			return payrolls[i].Year < payrolls[j].Year
		}
		return MonthNumber(payrolls[i].Month) < MonthNumber(payrolls[j].Month)
	})
}

func mapPayroll(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:            p.ID.String(),
		EmployeeID:    p.EmployeeID.String(),
		Month:         p.Month,
		Year:          p.Year,
		BaseSalary:    p.BaseSalary,
		GrossSalary:   p.GrossSalary,
		NetSalary:     p.NetSalary,
		Bonus:         p.Bonus,
		OvertimeHours: p.OvertimeHours,
		OvertimePay:   p.OvertimePay,
		TotalPayable:  p.TotalPayable,
		Status:        p.Status,
		PaymentMode:   p.PaymentMode,
		TransactionID: p.TransactionID,
		Remarks:       p.Remarks,
	}
	if p.PaymentDate != nil {
		resp.PaymentDate = p.PaymentDate.Format("2006-01-02")
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.Name
		resp.EmployeeEmail = p.Employee.Email
		resp.Department = p.Employee.Department
	}
	return resp
}
