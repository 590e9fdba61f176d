package product

import (
	"context"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/events"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka"
	producterrors "github.com/TheLeeJungYan/EINV-POS-API/internal/product/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/contextutil"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/money"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/storage"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=product_service.go -destination=mock/product_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller *domain.Caller, req CreateProductRequest) (*ProductResponse, error)
	GetByID(ctx context.Context, caller *domain.Caller, id string) (*ProductResponse, error)
	List(ctx context.Context, caller *domain.Caller) ([]ProductResponse, error)
	Update(ctx context.Context, caller *domain.Caller, id string, req UpdateProductRequest) (*ProductResponse, error)
	Delete(ctx context.Context, caller *domain.Caller, id string) error
	Quote(ctx context.Context, id string, req QuoteRequest) (*QuoteResponse, error)
	UploadImage(ctx context.Context, caller *domain.Caller, id string, data []byte) (*ProductResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	uploader storage.Uploader
	cache    *Cache
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	uploader storage.Uploader,
	cache *Cache,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("product.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outbox,
		uploader: uploader,
		cache:    cache,
		logger:   l,
	}
}

// Create writes the product and its whole option tree in one transaction.
func (s *service) Create(ctx context.Context, caller *domain.Caller, req CreateProductRequest) (*ProductResponse, error) {
	if !caller.HasCompany() {
		return nil, producterrors.ErrNoCompany
	}
	if !req.Price.IsPositive() || money.ToMinor(req.Price) <= 0 {
		return nil, producterrors.ErrInvalidPrice
	}
	specs, err := normalizeGroups(req.OptionGroups)
	if err != nil {
		return nil, err
	}

	status := StatusDraft
	if req.Status != "" {
		status = Status(req.Status)
	}

	p := &Product{
		ID:          uuid.New(),
		CompanyID:   *caller.CompanyID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       money.ToMinor(req.Price),
		Status:      status,
		CreatedBy:   &caller.UserID,
		UpdatedBy:   &caller.UserID,
	}
	p.OptionGroups = buildGroups(p.ID, specs)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, p); err != nil {
			return err
		}
		if err := repo.CreateGroups(ctx, p.OptionGroups); err != nil {
			return err
		}
		if err := repo.CreateValues(ctx, flattenValues(p.OptionGroups)); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, events.ProductCreated, p, caller)
	})
	if err != nil {
		s.logger.Error("create product failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx, p.ID, p.CompanyID)
	s.logger.Info("product created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("product_id", p.ID.String()),
		zap.Int("option_groups", len(p.OptionGroups)),
	)

	resp := mapToResponse(p)
	resp.IsOwner = true
	return &resp, nil
}

// GetByID returns the full tree. IsOwner reflects the caller and never
// changes the data.
func (s *service) GetByID(ctx context.Context, caller *domain.Caller, id string) (*ProductResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, producterrors.ErrInvalidProductID
	}

	resp, err := cached(ctx, s.cache, GetProductKey(pid), func(ctx context.Context) (ProductResponse, error) {
		p, err := s.repo.FindByID(ctx, pid)
		if err != nil {
			return ProductResponse{}, err
		}
		return mapToResponse(p), nil
	})
	if err != nil {
		return nil, err
	}

	resp.IsOwner = caller.HasCompany() && caller.CompanyID.String() == resp.CompanyID
	return &resp, nil
}

// List scopes to the caller's company. Anonymous callers and callers
// without a company see every active product.
func (s *service) List(ctx context.Context, caller *domain.Caller) ([]ProductResponse, error) {
	var companyID *uuid.UUID
	if caller.HasCompany() {
		companyID = caller.CompanyID
	}

	list, err := cached(ctx, s.cache, GetProductListKey(companyID), func(ctx context.Context) ([]ProductResponse, error) {
		products, err := s.repo.FindAll(ctx, companyID)
		if err != nil {
			return nil, err
		}
		out := make([]ProductResponse, 0, len(products))
		for i := range products {
			out = append(out, mapToResponse(&products[i]))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return withOwnership(list, caller), nil
}

// Update applies only the supplied fields. A supplied option tree is
// reconciled against the current one under a row lock on the product.
func (s *service) Update(ctx context.Context, caller *domain.Caller, id string, req UpdateProductRequest) (*ProductResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, producterrors.ErrInvalidProductID
	}
	if req.Price != nil && (!req.Price.IsPositive() || money.ToMinor(*req.Price) <= 0) {
		return nil, producterrors.ErrInvalidPrice
	}

	var specs []groupSpec
	if req.OptionGroups != nil {
		if specs, err = normalizeGroups(*req.OptionGroups); err != nil {
			return nil, err
		}
	}

	var updated *Product
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		p, err := repo.FindForUpdate(ctx, pid)
		if err != nil {
			return err
		}
		if err := tenant.EnsureOwner(caller, p.CompanyID); err != nil {
			return producterrors.ErrNotOwner
		}

		fields := updateFields(req)
		fields["updated_by"] = caller.UserID
		if err := repo.Update(ctx, pid, fields); err != nil {
			return err
		}

		if req.OptionGroups != nil {
			plan := planTree(pid, p.OptionGroups, specs)
			if err := applyPlan(ctx, repo, plan); err != nil {
				return err
			}
		}

		if err := s.enqueue(ctx, tx, events.ProductUpdated, p, caller); err != nil {
			return err
		}

		updated, err = repo.FindByID(ctx, pid)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, pid, updated.CompanyID)
	s.logger.Info("product updated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("product_id", pid.String()),
	)

	resp := mapToResponse(updated)
	resp.IsOwner = true
	return &resp, nil
}

// Delete soft deletes the product together with its active groups and
// values. Transactions are never touched.
func (s *service) Delete(ctx context.Context, caller *domain.Caller, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return producterrors.ErrInvalidProductID
	}

	var companyID uuid.UUID
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		p, err := repo.FindForUpdate(ctx, pid)
		if err != nil {
			return err
		}
		if err := tenant.EnsureOwner(caller, p.CompanyID); err != nil {
			return producterrors.ErrNotOwner
		}
		companyID = p.CompanyID

		plan := planTree(pid, p.OptionGroups, nil)
		if err := repo.SoftDeleteValues(ctx, plan.DeleteValueIDs); err != nil {
			return err
		}
		if err := repo.SoftDeleteGroups(ctx, plan.DeleteGroupIDs); err != nil {
			return err
		}
		if err := repo.SoftDelete(ctx, pid); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, events.ProductDeleted, p, caller)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, pid, companyID)
	s.logger.Info("product deleted",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("product_id", pid.String()),
	)
	return nil
}

func (s *service) Quote(ctx context.Context, id string, req QuoteRequest) (*QuoteResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, producterrors.ErrInvalidProductID
	}

	p, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}

	total, lines, snapshot, err := quote(p, req.Selections)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		ProductID:  p.ID.String(),
		BasePrice:  money.FromMinor(p.Price),
		Lines:      lines,
		Total:      money.FromMinor(total),
		TotalMinor: total,
		Snapshot:   snapshot,
	}, nil
}

func (s *service) UploadImage(ctx context.Context, caller *domain.Caller, id string, data []byte) (*ProductResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, producterrors.ErrInvalidProductID
	}
	if len(data) == 0 {
		return nil, producterrors.ErrImageRequired
	}

	p, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if err := tenant.EnsureOwner(caller, p.CompanyID); err != nil {
		return nil, producterrors.ErrNotOwner
	}

	url, err := s.uploader.Upload(ctx, "products/"+p.CompanyID.String(), data)
	if err != nil {
		if _, ok := apperror.As(err); !ok {
			err = apperror.IO("Failed to upload product image", err)
		}
		s.logger.Error("upload product image failed", zap.String("product_id", pid.String()), zap.Error(err))
		return nil, err
	}

	fields := map[string]any{"image": url, "updated_by": caller.UserID}
	if err := s.repo.Update(ctx, pid, fields); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, pid, p.CompanyID)

	p.Image = &url
	resp := mapToResponse(p)
	resp.IsOwner = true
	return &resp, nil
}

func (s *service) enqueue(ctx context.Context, tx *gorm.DB, eventType string, p *Product, caller *domain.Caller) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "product", p.ID.String(), eventType, events.ProductLifecycleTopic, events.ProductLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		ProductID:  p.ID.String(),
		CompanyID:  p.CompanyID.String(),
		ActorID:    caller.UserID.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func applyPlan(ctx context.Context, repo Repository, plan treePlan) error {
	if plan.Empty() {
		return nil
	}
	if err := repo.SoftDeleteValues(ctx, plan.DeleteValueIDs); err != nil {
		return err
	}
	if err := repo.SoftDeleteGroups(ctx, plan.DeleteGroupIDs); err != nil {
		return err
	}
	for _, u := range plan.GroupUpdates {
		if err := repo.UpdateGroup(ctx, u.ID, u.Fields); err != nil {
			return err
		}
	}
	for _, u := range plan.ValueUpdates {
		if err := repo.UpdateValue(ctx, u.ID, u.Fields); err != nil {
			return err
		}
	}
	if err := repo.CreateGroups(ctx, plan.NewGroups); err != nil {
		return err
	}
	return repo.CreateValues(ctx, append(plan.NewValues, flattenValues(plan.NewGroups)...))
}

func updateFields(req UpdateProductRequest) map[string]any {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = money.ToMinor(*req.Price)
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	return fields
}

// withOwnership returns a copy of list with IsOwner set for caller. A cached
// list may be shared with concurrent callers of the same load.
func withOwnership(list []ProductResponse, caller *domain.Caller) []ProductResponse {
	out := make([]ProductResponse, len(list))
	copy(out, list)
	for i := range out {
		out[i].IsOwner = caller.HasCompany() && caller.CompanyID.String() == out[i].CompanyID
	}
	return out
}

func flattenValues(groups []OptionGroup) []OptionValue {
	var values []OptionValue
	for _, g := range groups {
		values = append(values, g.Values...)
	}
	return values
}

func mapToResponse(p *Product) ProductResponse {
	resp := ProductResponse{
		ID:           p.ID.String(),
		CompanyID:    p.CompanyID.String(),
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Price:        money.FromMinor(p.Price),
		Image:        p.Image,
		Status:       string(p.Status),
		OptionGroups: make([]OptionGroupResponse, 0, len(p.OptionGroups)),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}

	for _, g := range p.OptionGroups {
		gr := OptionGroupResponse{
			ID:      g.ID.String(),
			Name:    g.Name,
			Options: make([]OptionValueResponse, 0, len(g.Values)),
		}
		for i, v := range g.Values {
			if v.IsDefault {
				gr.Default = i
			}
			gr.Options = append(gr.Options, OptionValueResponse{
				ID:      v.ID.String(),
				Option:  v.Label,
				Desc:    v.Description,
				Price:   money.FromMinor(v.Price),
				Default: v.IsDefault,
			})
		}
		resp.OptionGroups = append(resp.OptionGroups, gr)
	}

	return resp
}
