package transaction

import (
	"context"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/events"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/metrics"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/contextutil"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/counter"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/money"
	transactionerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/transaction/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const NumberPrefix = "TRX"

//go:generate mockgen -source=transaction_service.go -destination=mock/transaction_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, caller *domain.Caller, req RecordTransactionRequest) (*TransactionResponse, error)
	List(ctx context.Context, caller *domain.Caller) ([]TransactionResponse, error)
	Summary(ctx context.Context, caller *domain.Caller, date string) (*SummaryResponse, error)
	PaymentTypes(ctx context.Context) ([]PaymentTypeResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	payments PaymentTypeRepository
	counters counter.Repository
	outbox   kafka.OutboxRepository
	summary  SummaryStore
	metrics  *metrics.DomainMetrics
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	payments PaymentTypeRepository,
	counters counter.Repository,
	outbox kafka.OutboxRepository,
	summary SummaryStore,
	m *metrics.DomainMetrics,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("transaction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		payments: payments,
		counters: counters,
		outbox:   outbox,
		summary:  summary,
		metrics:  m,
		now:      time.Now,
		logger:   l,
	}
}

// Record appends one sale. Only the referenced company, product and payment
// type are checked; the amount and snapshot are stored as given.
func (s *service) Record(ctx context.Context, caller *domain.Caller, req RecordTransactionRequest) (*TransactionResponse, error) {
	if !caller.HasCompany() {
		return nil, transactionerrors.ErrNoCompany
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, transactionerrors.ErrInvalidProductID
	}

	companyID := *caller.CompanyID
	snapshot := datatypes.JSONMap(req.SelectedOptions)
	if snapshot == nil {
		snapshot = datatypes.JSONMap{}
	}

	t := &Transaction{
		ID:              uuid.New(),
		CompanyID:       companyID,
		ProductID:       productID,
		PaymentTypeID:   req.PaymentTypeID,
		Amount:          money.ToMinor(req.Amount),
		SelectedOptions: snapshot,
		CreatedBy:       &caller.UserID,
		CreatedAt:       s.now().UTC(),
	}

	var paymentType *PaymentType
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		ok, err := repo.CompanyExists(ctx, companyID)
		if err != nil {
			return err
		}
		if !ok {
			return transactionerrors.ErrCompanyNotFound
		}

		ok, err = repo.ProductExists(ctx, companyID, productID)
		if err != nil {
			return err
		}
		if !ok {
			return transactionerrors.ErrProductNotFound
		}

		paymentType, err = s.payments.WithTx(tx).FindActive(ctx, req.PaymentTypeID)
		if err != nil {
			return err
		}

		seq, err := s.counters.WithTx(tx).GetNextValue(ctx, companyID.String(), counter.TypeTransaction)
		if err != nil {
			return err
		}
		t.Number = counter.FormatNumber(NumberPrefix, seq)

		if err := repo.Create(ctx, t); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, t)
	})
	if err != nil {
		s.logger.Error("record transaction failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("company_id", companyID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.TransactionsRecorded.WithLabelValues(paymentType.Name).Inc()
		s.metrics.TransactionAmount.WithLabelValues(paymentType.Name).Add(float64(t.Amount))
	}
	s.logger.Info("transaction recorded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("transaction_id", t.ID.String()),
		zap.String("number", t.Number),
		zap.Int64("amount", t.Amount),
	)

	t.PaymentType = paymentType
	resp := mapToResponse(t)
	return &resp, nil
}

func (s *service) List(ctx context.Context, caller *domain.Caller) ([]TransactionResponse, error) {
	if caller == nil {
		return nil, transactionerrors.ErrNoCompany
	}

	list, err := s.repo.FindAll(ctx, caller)
	if err != nil {
		return nil, err
	}

	out := make([]TransactionResponse, 0, len(list))
	for i := range list {
		out = append(out, mapToResponse(&list[i]))
	}
	return out, nil
}

// Summary reads the daily counters kept by the sales consumer. An empty date
// means today in UTC.
func (s *service) Summary(ctx context.Context, caller *domain.Caller, date string) (*SummaryResponse, error) {
	if !caller.HasCompany() {
		return nil, transactionerrors.ErrNoCompany
	}

	day := s.now().UTC()
	if date != "" {
		parsed, err := time.Parse(DateLayout, date)
		if err != nil {
			return nil, transactionerrors.ErrInvalidDate
		}
		day = parsed
	}

	companyID := caller.CompanyID.String()
	count, amount, err := s.summary.Get(ctx, companyID, day)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		CompanyID:   companyID,
		Date:        day.Format(DateLayout),
		Count:       count,
		Amount:      money.FromMinor(amount),
		AmountMinor: amount,
	}, nil
}

func (s *service) PaymentTypes(ctx context.Context) ([]PaymentTypeResponse, error) {
	list, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PaymentTypeResponse, 0, len(list))
	for _, pt := range list {
		out = append(out, PaymentTypeResponse{ID: pt.ID, Name: pt.Name})
	}
	return out, nil
}

func (s *service) enqueue(ctx context.Context, tx *gorm.DB, t *Transaction) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "transaction", t.ID.String(), events.TransactionRecorded, events.TransactionRecordedTopic, events.TransactionRecordedEvent{
		EventType:     events.TransactionRecorded,
		RequestID:     rid,
		TransactionID: t.ID.String(),
		Number:        t.Number,
		CompanyID:     t.CompanyID.String(),
		ProductID:     t.ProductID.String(),
		PaymentTypeID: t.PaymentTypeID,
		Amount:        t.Amount,
		OccurredAt:    t.CreatedAt,
	})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func mapToResponse(t *Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              t.ID.String(),
		Number:          t.Number,
		CompanyID:       t.CompanyID.String(),
		ProductID:       t.ProductID.String(),
		PaymentTypeID:   t.PaymentTypeID,
		Amount:          money.FromMinor(t.Amount),
		SelectedOptions: map[string]any(t.SelectedOptions),
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
	if t.Product != nil {
		resp.ProductName = t.Product.Name
	}
	if t.PaymentType != nil {
		resp.PaymentType = t.PaymentType.Name
	}
	return resp
}
