package leave

import (
	"context"
	"errors"
	"time"

	"go-ems/internal/employee"
	leaveerrors "go-ems/internal/leave/errors"
	"go-ems/internal/shared/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeEmail string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetMine(ctx context.Context, employeeEmail string) ([]LeaveResponse, error)
	Review(ctx context.Context, id string, req ReviewLeaveRequest) (LeaveResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	clk          clock.Clock
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, employeeRepo: employeeRepo, clk: clk, logger: l}
}

func (s *service) Create(ctx context.Context, employeeEmail string, req CreateLeaveRequest) (LeaveResponse, error) {
	name := ""
	if empl, err := s.employeeRepo.FindByEmail(ctx, employeeEmail); err == nil {
		name = empl.Name
	}

	l := &Leave{
		ID:            uuid.New(),
		EmployeeEmail: employeeEmail,
		EmployeeName:  name,
		Type:          req.Type,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Reason:        req.Reason,
		Description:   req.Description,
		Status:        StatusPending,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave failed",
			zap.String("employee_email", employeeEmail),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave created",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_email", employeeEmail),
		zap.String("type", req.Type),
	)
	return mapLeave(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}
	return mapLeaves(leaves), nil
}

func (s *service) GetMine(ctx context.Context, employeeEmail string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByEmail(ctx, employeeEmail)
	if err != nil {
		s.logger.Error("get my leaves failed", zap.String("employee_email", employeeEmail), zap.Error(err))
		return nil, err
	}
	return mapLeaves(leaves), nil
}

func (s *service) Review(ctx context.Context, id string, req ReviewLeaveRequest) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	now := s.clk.Now()
	l.Status = req.Status
	l.AdminJustification = req.AdminJustification
	l.ReviewedAt = &now

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("review leave failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave reviewed",
		zap.String("leave_id", id),
		zap.String("status", req.Status),
	)
	return mapLeave(*l), nil
}

func mapLeave(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:                 l.ID.String(),
		EmployeeEmail:      l.EmployeeEmail,
		EmployeeName:       l.EmployeeName,
		Type:               l.Type,
		StartDate:          l.StartDate,
		EndDate:            l.EndDate,
		Reason:             l.Reason,
		Description:        l.Description,
		Status:             l.Status,
		AdminJustification: l.AdminJustification,
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
	}
	if l.ReviewedAt != nil {
		resp.ReviewedAt = l.ReviewedAt.Format(time.RFC3339)
	}
	return resp
}

func mapLeaves(leaves []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapLeave(l)
	}
	return res
}
