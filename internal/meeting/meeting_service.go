package meeting

import (
	"context"
	"errors"
	"strings"

	meetingerrors "go-ems/internal/meeting/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_service.go -destination=mock/meeting_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, createdBy string, req CreateMeetingRequest) (MeetingResponse, error)
	GetAll(ctx context.Context) ([]MeetingResponse, error)
	GetMine(ctx context.Context, employeeEmail string) ([]MeetingResponse, error)
	GetByID(ctx context.Context, id string) (MeetingResponse, error)
	Update(ctx context.Context, id string, req UpdateMeetingRequest) (MeetingResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("meeting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("meeting.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, createdBy string, req CreateMeetingRequest) (MeetingResponse, error) {
	m := &Meeting{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		TimeStart:    req.TimeStart,
		TimeEnd:      req.TimeEnd,
		AllEmployees: req.AllEmployees,
		Invitees:     req.Invitees,
		CreatedBy:    createdBy,
	}
	if m.Invitees == nil {
		m.Invitees = []string{}
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error("create meeting failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	s.logger.Info("meeting created",
		zap.String("meeting_id", m.ID.String()),
		zap.String("date", m.Date),
		zap.Bool("all_employees", m.AllEmployees),
	)
	return mapMeeting(*m), nil
}

func (s *service) GetAll(ctx context.Context) ([]MeetingResponse, error) {
	meetings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all meetings failed", zap.Error(err))
		return nil, err
	}
	return mapMeetings(meetings), nil
}

// GetMine returns meetings visible to the employee: company-wide ones plus
// those the employee is invited to. Membership is checked in memory over the
// date-ordered list.
func (s *service) GetMine(ctx context.Context, employeeEmail string) ([]MeetingResponse, error) {
	meetings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get my meetings failed", zap.String("employee_email", employeeEmail), zap.Error(err))
		return nil, err
	}

	email := strings.ToLower(employeeEmail)
	mine := make([]Meeting, 0, len(meetings))
	for _, m := range meetings {
		if m.AllEmployees || containsEmail(m.Invitees, email) {
			mine = append(mine, m)
		}
	}
	return mapMeetings(mine), nil
}

func (s *service) GetByID(ctx context.Context, id string) (MeetingResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeetingResponse{}, meetingerrors.ErrMeetingNotFound
		}
		return MeetingResponse{}, err
	}
	return mapMeeting(*m), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateMeetingRequest) (MeetingResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeetingResponse{}, meetingerrors.ErrMeetingNotFound
		}
		return MeetingResponse{}, err
	}

	if req.Title != "" {
		m.Title = req.Title
	}
	if req.Description != "" {
		m.Description = req.Description
	}
	if req.Date != "" {
		m.Date = req.Date
	}
	if req.TimeStart != "" {
		m.TimeStart = req.TimeStart
	}
	if req.TimeEnd != "" {
		m.TimeEnd = req.TimeEnd
	}
	if req.AllEmployees != nil {
		m.AllEmployees = *req.AllEmployees
	}
	if req.Invitees != nil {
		m.Invitees = req.Invitees
	}

	if err := s.repo.Update(ctx, m); err != nil {
		s.logger.Error("update meeting failed", zap.String("meeting_id", id), zap.Error(err))
		return MeetingResponse{}, err
	}

	s.logger.Info("meeting updated", zap.String("meeting_id", id))
	return mapMeeting(*m), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return meetingerrors.ErrMeetingNotFound
		}
		s.logger.Error("delete meeting failed", zap.String("meeting_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("meeting deleted", zap.String("meeting_id", id))
	return nil
}

func containsEmail(invitees []string, email string) bool {
	for _, inv := range invitees {
		if strings.ToLower(inv) == email {
			return true
		}
	}
	return false
}

func mapMeeting(m Meeting) MeetingResponse {
	invitees := m.Invitees
	if invitees == nil {
		invitees = []string{}
	}
	return MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		Description:  m.Description,
		Date:         m.Date,
		TimeStart:    m.TimeStart,
		TimeEnd:      m.TimeEnd,
		AllEmployees: m.AllEmployees,
		Invitees:     invitees,
		CreatedBy:    m.CreatedBy,
	}
}

func mapMeetings(meetings []Meeting) []MeetingResponse {
	res := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		res[i] = mapMeeting(m)
	}
	return res
}
