package attendance

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	UpsertDay(ctx context.Context, req UpsertDayRequest) (DayResponse, error)
	GetByEmail(ctx context.Context, email string) (SheetResponse, error)
	GetAll(ctx context.Context) (AllSheetsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) UpsertDay(ctx context.Context, req UpsertDayRequest) (DayResponse, error) {
	status := req.Status
	if status == "" {
		status = StatusUnmarked
	}

	day := &AttendanceDay{
		ID:            uuid.New(),
		EmployeeEmail: req.EmployeeEmail,
		Date:          req.Date,
		Status:        status,
		ClockIn:       req.ClockIn,
		ClockOut:      req.ClockOut,
	}

	if err := s.repo.UpsertDay(ctx, day); err != nil {
		s.logger.Error("upsert attendance day failed",
			zap.String("employee_email", req.EmployeeEmail),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return DayResponse{}, err
	}

	s.logger.Info("attendance day upserted",
		zap.String("employee_email", req.EmployeeEmail),
		zap.String("date", req.Date),
		zap.String("status", status),
	)
	return mapDay(*day), nil
}

// GetByEmail returns the employee's sheet. An employee with no records gets
// an empty sheet, not an error.
func (s *service) GetByEmail(ctx context.Context, email string) (SheetResponse, error) {
	days, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("get attendance by email failed", zap.String("employee_email", email), zap.Error(err))
		return nil, err
	}

	sheet := make(SheetResponse, len(days))
	for _, d := range days {
		sheet[d.Date] = mapDay(d)
	}
	return sheet, nil
}

func (s *service) GetAll(ctx context.Context) (AllSheetsResponse, error) {
	days, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, err
	}

	all := make(AllSheetsResponse)
	for _, d := range days {
		sheet, ok := all[d.EmployeeEmail]
		if !ok {
			sheet = make(SheetResponse)
			all[d.EmployeeEmail] = sheet
		}
		sheet[d.Date] = mapDay(d)
	}
	return all, nil
}

func mapDay(d AttendanceDay) DayResponse {
	return DayResponse{
		Date:     d.Date,
		Status:   d.Status,
		ClockIn:  d.ClockIn,
		ClockOut: d.ClockOut,
	}
}
