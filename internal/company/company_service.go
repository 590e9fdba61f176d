package company

import (
	"context"
	"strings"

	companyerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/company/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	GetByID(ctx context.Context, id string) (*CompanyResponse, error)
	GetMine(ctx context.Context, caller *domain.Caller) (*CompanyResponse, error)
	UpdateMine(ctx context.Context, caller *domain.Caller, req UpdateCompanyRequest) (*CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return mapToResponse(comp), nil
}

func (s *service) GetMine(ctx context.Context, caller *domain.Caller) (*CompanyResponse, error) {
	if !caller.HasCompany() {
		return nil, companyerrors.ErrNoCompany
	}

	comp, err := s.repo.GetByID(ctx, *caller.CompanyID)
	if err != nil {
		return nil, err
	}

	return mapToResponse(comp), nil
}

func (s *service) UpdateMine(ctx context.Context, caller *domain.Caller, req UpdateCompanyRequest) (*CompanyResponse, error) {
	if !caller.HasCompany() {
		return nil, companyerrors.ErrNoCompany
	}

	if req.PhoneNumber != nil {
		if err := validate.Phone(*req.PhoneNumber); err != nil {
			return nil, err
		}
	}
	if req.PostalCode != nil {
		if err := validate.PostalCode(*req.PostalCode); err != nil {
			return nil, err
		}
	}

	comp, err := s.repo.GetByID(ctx, *caller.CompanyID)
	if err != nil {
		return nil, err
	}

	applyString(&comp.Name, req.Name)
	applyString(&comp.PhoneNumber, req.PhoneNumber)
	applyString(&comp.AddressLine1, req.AddressLine1)
	applyString(&comp.City, req.City)
	applyString(&comp.State, req.State)
	applyString(&comp.PostalCode, req.PostalCode)
	applyString(&comp.Country, req.Country)
	if req.AddressLine2 != nil {
		line2 := strings.TrimSpace(*req.AddressLine2)
		if line2 == "" {
			comp.AddressLine2 = nil
		} else {
			comp.AddressLine2 = &line2
		}
	}
	updatedBy := caller.UserID
	comp.UpdatedBy = &updatedBy

	if err := s.repo.Update(ctx, comp); err != nil {
		return nil, err
	}

	s.logger.Info("company updated", zap.String("company_id", comp.ID.String()))

	return mapToResponse(comp), nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                c.ID.String(),
		Name:              c.Name,
		OwnerFullName:     c.OwnerFullName,
		OwnerNationalID:   c.OwnerNationalID,
		OwnerBirthDate:    c.OwnerBirthDate.Format(validate.DateLayout),
		PhoneNumber:       c.PhoneNumber,
		AddressLine1:      c.AddressLine1,
		AddressLine2:      c.AddressLine2,
		City:              c.City,
		State:             c.State,
		PostalCode:        c.PostalCode,
		Country:           c.Country,
		BusinessRegNumber: c.BusinessRegNumber,
		TaxRegNumber:      c.TaxRegNumber,
		SubscriptionEndAt: c.SubscriptionEndAt,
		LastLoginAt:       c.LastLoginAt,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
