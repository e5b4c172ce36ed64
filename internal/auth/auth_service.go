package auth

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	autherrors "go-ems/internal/auth/errors"
	"go-ems/internal/domain"
	"go-ems/internal/employee"
	"go-ems/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost  = 10
	tokenExpiry = time.Hour * 24 * 7
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (token string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	CompleteProfile(ctx context.Context, userID string, req CompleteProfileRequest) (AuthResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (AuthResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("signup requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return AuthResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	user := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
		Avatar:       initialsAvatar(req.Name),
	}

	if role == domain.RoleEmployee {
		user.ProfilePending = true
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		s.logger.Error("signup persist failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, err
	}

	// Employee accounts get a profile row immediately so attendance and
	// leave lookups by email resolve. A failure here is not fatal to signup.
	if role == domain.RoleEmployee {
		empl := &employee.Employee{
			ID:     uuid.New(),
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Avatar: user.Avatar,
			Status: employee.StatusActive,
		}
		if err := s.employeeRepo.Create(ctx, empl); err != nil {
			s.logger.Error("signup auto-create employee profile failed",
				zap.String("request_id", rid),
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("signup success",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)
	return mapUserToResponse(user), nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID.String(), user.Email, user.Role, tokenExpiry)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))
	return token, mapUserToResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapUserToResponse(u)
	return &resp, nil
}

func (s *service) CompleteProfile(ctx context.Context, userID string, req CompleteProfileRequest) (AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUserNotFound
	}

	empl, err := s.employeeRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Profile row missing (auto-create failed at signup); recreate it.
			empl = &employee.Employee{
				ID:     uuid.New(),
				UserID: user.ID,
				Name:   user.Name,
				Email:  user.Email,
				Avatar: user.Avatar,
				Status: employee.StatusActive,
			}
			if err := s.employeeRepo.Create(ctx, empl); err != nil {
				return AuthResponse{}, err
			}
		} else {
			return AuthResponse{}, err
		}
	}

	empl.Position = req.Position
	empl.Department = req.Department
	empl.Phone = req.Phone
	if req.JoinDate != "" {
		empl.JoinDate = req.JoinDate
	}
	if err := s.employeeRepo.Update(ctx, empl); err != nil {
		return AuthResponse{}, err
	}

	user.ProfilePending = false
	if err := s.repo.Update(ctx, user); err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("profile completed", zap.String("user_id", user.ID.String()))
	return mapUserToResponse(user), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUserNotFound
	}

	oldEmail := user.Email
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		return AuthResponse{}, err
	}

	// Email is the natural key for attendance and leave, keep the employee
	// profile in sync with the account.
	if empl, err := s.employeeRepo.FindByEmail(ctx, oldEmail); err == nil {
		empl.Name = user.Name
		empl.Email = user.Email
		if req.Avatar != "" {
			empl.Avatar = req.Avatar
		}
		if err := s.employeeRepo.Update(ctx, empl); err != nil {
			s.logger.Error("update profile employee sync failed",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("profile updated", zap.String("user_id", user.ID.String()))
	return mapUserToResponse(user), nil
}

func (s *service) generateToken(userID, email, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}

// initialsAvatar builds a placeholder avatar URL from the user's initials.
func initialsAvatar(name string) string {
	initials := ""
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		if len(r) > 0 {
			initials += strings.ToUpper(string(r[0]))
		}
		if len(initials) >= 2 {
			break
		}
	}
	if initials == "" {
		initials = "U"
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(initials) + "&background=random"
}

func mapUserToResponse(u *User) AuthResponse {
	return AuthResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Avatar:         u.Avatar,
		ProfilePending: u.ProfilePending,
	}
}
