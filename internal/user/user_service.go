package user

import (
	"context"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/security"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/contextutil"
	usererrors "github.com/TheLeeJungYan/EINV-POS-API/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, caller *domain.Caller) ([]UserResponse, error)
	GetByID(ctx context.Context, caller *domain.Caller, id string) (*UserResponse, error)
	ChangePassword(ctx context.Context, caller *domain.Caller, req ChangePasswordRequest) error
	ResolveCaller(ctx context.Context, userID uuid.UUID) (*domain.Caller, error)
}

type service struct {
	repo      Repository
	passwords security.PasswordHasher
	logger    *zap.Logger
}

func NewService(repo Repository, passwords security.PasswordHasher, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, passwords: passwords, logger: l}
}

// List returns the caller's company users for an ADMIN and every user for a
// SUPERADMIN. Any other role is refused.
func (s *service) List(ctx context.Context, caller *domain.Caller) ([]UserResponse, error) {
	var (
		users []User
		err   error
	)

	switch {
	case caller == nil:
		return nil, apperror.ErrUnauthorized
	case caller.Role == domain.RoleSuperAdmin:
		users, err = s.repo.FindAll(ctx)
	case caller.Role == domain.RoleAdmin && caller.HasCompany():
		users, err = s.repo.FindAllByCompany(ctx, caller.CompanyID.String())
	default:
		return nil, usererrors.ErrListForbidden
	}
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, mapToResponse(&users[i]))
	}
	return resp, nil
}

// GetByID lets users read themselves, admins read their company and the
// superadmin read anyone. Users outside the caller's reach look absent.
func (s *service) GetByID(ctx context.Context, caller *domain.Caller, id string) (*UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if !canView(caller, u) {
		return nil, usererrors.ErrUserNotFound
	}

	resp := mapToResponse(u)
	return &resp, nil
}

func canView(caller *domain.Caller, u *User) bool {
	switch {
	case caller == nil:
		return false
	case caller.UserID == u.ID, caller.Role == domain.RoleSuperAdmin:
		return true
	case caller.Role == domain.RoleAdmin && u.CompanyID != nil:
		return caller.BelongsTo(*u.CompanyID)
	}
	return false
}

func (s *service) ChangePassword(ctx context.Context, caller *domain.Caller, req ChangePasswordRequest) error {
	logger := contextutil.GetLogger(ctx, s.logger)

	if caller == nil {
		return apperror.ErrUnauthorized
	}

	if err := s.passwords.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, caller.UserID)
	if err != nil {
		return err
	}

	ok, err := s.passwords.Verify(req.CurrentPassword, u.Password)
	if err != nil {
		logger.Error("stored password hash unreadable", zap.String("user_id", u.ID.String()), zap.Error(err))
		return err
	}
	if !ok {
		return usererrors.ErrWrongPassword
	}

	hashed, err := s.passwords.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	u.Password = hashed

	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	logger.Info("password changed", zap.String("user_id", u.ID.String()))
	return nil
}

// ResolveCaller loads the user behind a token subject for the auth
// middleware.
func (s *service) ResolveCaller(ctx context.Context, userID uuid.UUID) (*domain.Caller, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Caller(), nil
}

func mapToResponse(u *User) UserResponse {
	var companyID *string
	if u.CompanyID != nil {
		id := u.CompanyID.String()
		companyID = &id
	}
	return UserResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		Email:      u.Email,
		UserTypeID: int(u.UserTypeID),
		Role:       u.UserTypeID.String(),
		CompanyID:  companyID,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}
