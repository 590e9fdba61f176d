package auth

import (
	"context"
	"errors"
	"time"

	autherrors "github.com/TheLeeJungYan/EINV-POS-API/internal/auth/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/bootstrap"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/company"
	companyerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/company/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/security"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/validate"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/user"
	usererrors "github.com/TheLeeJungYan/EINV-POS-API/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest, ip string) (*TokenResponse, error)
	Refresh(ctx context.Context, accessToken string) (*TokenResponse, error)
	Me(ctx context.Context, caller *domain.Caller) (*AuthResponse, error)
}

type service struct {
	db        *gorm.DB
	companies company.Repository
	users     user.Repository
	passwords security.PasswordHasher
	tokens    security.TokenService
	audit     bootstrap.AuditLogger
	tokenTTL  time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	companies company.Repository,
	users user.Repository,
	passwords security.PasswordHasher,
	tokens security.TokenService,
	audit bootstrap.AuditLogger,
	tokenTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:        db,
		companies: companies,
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		audit:     audit,
		tokenTTL:  tokenTTL,
		now:       time.Now,
		logger:    l,
	}
}

// Register creates the company and its first user in one transaction. All
// format checks and uniqueness checks run before anything is written.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if err := validate.Username(req.Username); err != nil {
		return nil, err
	}
	birthDate, err := validate.BirthDate(req.OwnerBirthDate, s.now())
	if err != nil {
		return nil, err
	}

	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	if err := validate.NationalID(req.OwnerNationalID); err != nil {
		return nil, err
	}
	if err := validate.Phone(req.PhoneNumber); err != nil {
		return nil, err
	}
	if err := validate.PostalCode(req.PostalCode); err != nil {
		return nil, err
	}
	if err := s.passwords.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, req); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	userID := uuid.New()
	comp := &company.Company{
		ID:                uuid.New(),
		Name:              req.CompanyName,
		OwnerFullName:     req.OwnerFullName,
		OwnerNationalID:   req.OwnerNationalID,
		OwnerBirthDate:    birthDate,
		PhoneNumber:       req.PhoneNumber,
		AddressLine1:      req.AddressLine1,
		AddressLine2:      req.AddressLine2,
		City:              req.City,
		State:             req.State,
		PostalCode:        req.PostalCode,
		Country:           req.Country,
		BusinessRegNumber: req.BusinessRegNumber,
		TaxRegNumber:      emptyToNil(req.TaxRegNumber),
		CreatedBy:         &userID,
	}
	u := &user.User{
		ID:         userID,
		Username:   req.Username,
		Email:      req.Email,
		Password:   hash,
		UserTypeID: domain.RoleUser,
		CompanyID:  &comp.ID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.companies.WithTx(tx).Create(ctx, comp); err != nil {
			return err
		}
		return s.users.WithTx(tx).Create(ctx, u)
	})
	if err != nil {
		return nil, mapUserConflict(err)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  bootstrap.AuditCompanyRegistered,
		Message: "company registered",
		Meta: map[string]any{
			"company_id": comp.ID.String(),
			"user_id":    u.ID.String(),
		},
	})

	return &RegisterResponse{
		CompanyID:   comp.ID.String(),
		CompanyName: comp.Name,
		User:        toAuthResponse(u, comp),
	}, nil
}

func (s *service) ensureUnique(ctx context.Context, req RegisterRequest) error {
	checks := []struct {
		exists func(context.Context, string) (bool, error)
		value  string
		err    error
	}{
		{s.users.ExistsByUsername, req.Username, autherrors.ErrUsernameExists},
		{s.users.ExistsByEmail, req.Email, autherrors.ErrEmailExists},
		{s.companies.ExistsByNationalID, req.OwnerNationalID, companyerrors.ErrNationalIDExists},
		{s.companies.ExistsByBusinessRegNumber, req.BusinessRegNumber, companyerrors.ErrBusinessRegNumberExists},
	}
	if tax := emptyToNil(req.TaxRegNumber); tax != nil {
		checks = append(checks, struct {
			exists func(context.Context, string) (bool, error)
			value  string
			err    error
		}{s.companies.ExistsByTaxRegNumber, *tax, companyerrors.ErrTaxRegNumberExists})
	}

	for _, c := range checks {
		exists, err := c.exists(ctx, c.value)
		if err != nil {
			return err
		}
		if exists {
			return c.err
		}
	}
	return nil
}

// Login accepts a username or an email. Unknown logins and wrong passwords
// produce the same error.
func (s *service) Login(ctx context.Context, req LoginRequest, ip string) (*TokenResponse, error) {
	u, err := s.users.FindByUsernameOrEmail(ctx, req.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			return nil, autherrors.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.passwords.Verify(req.Password, u.Password)
	if err != nil {
		s.logger.Error("stored password hash is unreadable",
			zap.String("user_id", u.ID.String()),
			zap.Error(err),
		)
		return nil, autherrors.ErrInvalidCredentials
	}
	if !ok {
		return nil, autherrors.ErrInvalidCredentials
	}

	var comp *company.Company
	if u.CompanyID != nil {
		if err := s.companies.UpdateLastLogin(ctx, *u.CompanyID, ip, s.now().UTC()); err != nil {
			return nil, err
		}
		comp, err = s.companies.GetByID(ctx, *u.CompanyID)
		if err != nil {
			return nil, err
		}
	}

	token, err := s.tokens.Issue(accessClaims(u).Map(), s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  bootstrap.AuditLoginSucceeded,
		Message: "user logged in",
		Meta: map[string]any{
			"user_id": u.ID.String(),
			"ip":      ip,
		},
	})

	return s.tokenResponse(token, toAuthResponse(u, comp)), nil
}

// Refresh re-issues a still valid access token with the same caller claims.
// The principal must still exist.
func (s *service) Refresh(ctx context.Context, accessToken string) (*TokenResponse, error) {
	claims, err := s.tokens.Verify(accessToken, true)
	if err != nil {
		return nil, err
	}
	access, err := security.ParseAccessClaims(claims)
	if err != nil {
		return nil, err
	}

	u, err := s.users.FindByID(ctx, access.Subject)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			return nil, autherrors.ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.tokens.Refresh(accessToken)
	if err != nil {
		return nil, err
	}

	return s.tokenResponse(token, toAuthResponse(u, nil)), nil
}

func (s *service) Me(ctx context.Context, caller *domain.Caller) (*AuthResponse, error) {
	if caller == nil {
		return nil, apperror.ErrUnauthorized
	}

	u, err := s.users.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	var comp *company.Company
	if u.CompanyID != nil {
		comp, err = s.companies.GetByID(ctx, *u.CompanyID)
		if err != nil {
			return nil, err
		}
	}

	resp := toAuthResponse(u, comp)
	return &resp, nil
}

func (s *service) tokenResponse(token string, u AuthResponse) *TokenResponse {
	return &TokenResponse{
		User:        u,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}
}

func accessClaims(u *user.User) security.AccessClaims {
	return security.AccessClaims{
		Subject:    u.ID,
		Username:   u.Username,
		Email:      u.Email,
		CompanyID:  u.CompanyID,
		UserTypeID: u.UserTypeID,
	}
}

func toAuthResponse(u *user.User, comp *company.Company) AuthResponse {
	resp := AuthResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		Email:      u.Email,
		UserTypeID: int(u.UserTypeID),
		Role:       u.UserTypeID.String(),
	}
	if u.CompanyID != nil {
		id := u.CompanyID.String()
		resp.CompanyID = &id
	}
	if comp != nil {
		resp.CompanyName = comp.Name
	}
	return resp
}

// mapUserConflict turns a unique violation raced past ensureUnique into the
// registration wording.
func mapUserConflict(err error) error {
	switch {
	case errors.Is(err, usererrors.ErrUsernameTaken):
		return autherrors.ErrUsernameExists
	case errors.Is(err, usererrors.ErrEmailTaken):
		return autherrors.ErrEmailExists
	}
	return err
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
