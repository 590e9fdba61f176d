package transaction_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/events"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka"
	outboxMock "github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka/mock"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/metrics"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/product"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/counter"
	counterMock "github.com/TheLeeJungYan/EINV-POS-API/internal/shared/counter/mock"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/transaction"
	transactionerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/transaction/errors"
	transactionMock "github.com/TheLeeJungYan/EINV-POS-API/internal/transaction/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type deps struct {
	sql      sqlmock.Sqlmock
	repo     *transactionMock.MockRepository
	payments *transactionMock.MockPaymentTypeRepository
	counters *counterMock.MockRepository
	outbox   *outboxMock.MockOutboxRepository
	summary  *transactionMock.MockSummaryStore
	metrics  *metrics.DomainMetrics
	service  transaction.Service
}

func setup(t *testing.T) *deps {
	ctrl := gomock.NewController(t)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	d := &deps{
		sql:      mock,
		repo:     transactionMock.NewMockRepository(ctrl),
		payments: transactionMock.NewMockPaymentTypeRepository(ctrl),
		counters: counterMock.NewMockRepository(ctrl),
		outbox:   outboxMock.NewMockOutboxRepository(ctrl),
		summary:  transactionMock.NewMockSummaryStore(ctrl),
		metrics:  metrics.NewDomainMetrics(prometheus.NewRegistry()),
	}
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo).AnyTimes()
	d.payments.EXPECT().WithTx(gomock.Any()).Return(d.payments).AnyTimes()
	d.counters.EXPECT().WithTx(gomock.Any()).Return(d.counters).AnyTimes()
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox).AnyTimes()
	d.service = transaction.NewService(db, d.repo, d.payments, d.counters, d.outbox, d.summary, d.metrics)
	return d
}

func companyCaller() *domain.Caller {
	companyID := uuid.New()
	return &domain.Caller{UserID: uuid.New(), Username: "cashier", CompanyID: &companyID, Role: domain.RoleUser}
}

func recordRequest(productID uuid.UUID) transaction.RecordTransactionRequest {
	return transaction.RecordTransactionRequest{
		ProductID:     productID.String(),
		PaymentTypeID: 1,
		Amount:        decimal.RequireFromString("11.99"),
		SelectedOptions: map[string]any{
			"Size": map[string]any{"option": "Large", "price": 200},
		},
	}
}

func TestRecord_AppendsWithNumberAndEvent(t *testing.T) {
	d := setup(t)
	caller := companyCaller()
	productID := uuid.New()

	d.sql.ExpectBegin()
	d.repo.EXPECT().CompanyExists(gomock.Any(), *caller.CompanyID).Return(true, nil)
	d.repo.EXPECT().ProductExists(gomock.Any(), *caller.CompanyID, productID).Return(true, nil)
	d.payments.EXPECT().FindActive(gomock.Any(), uint(1)).Return(&transaction.PaymentType{ID: 1, Name: "CASH"}, nil)
	d.counters.EXPECT().GetNextValue(gomock.Any(), caller.CompanyID.String(), counter.TypeTransaction).Return(int64(7), nil)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tr *transaction.Transaction) error {
		assert.Equal(t, "TRX-000007", tr.Number)
		assert.Equal(t, int64(1199), tr.Amount)
		assert.Equal(t, *caller.CompanyID, tr.CompanyID)
		assert.Contains(t, tr.SelectedOptions, "Size")
		return nil
	})
	d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
		assert.Equal(t, events.TransactionRecordedTopic, e.Topic)

		var payload events.TransactionRecordedEvent
		require.NoError(t, json.Unmarshal(e.Payload, &payload))
		assert.Equal(t, "TRX-000007", payload.Number)
		assert.Equal(t, int64(1199), payload.Amount)
		assert.Equal(t, caller.CompanyID.String(), payload.CompanyID)
		return nil
	})
	d.sql.ExpectCommit()

	resp, err := d.service.Record(context.Background(), caller, recordRequest(productID))
	require.NoError(t, err)
	assert.Equal(t, "TRX-000007", resp.Number)
	assert.Equal(t, "CASH", resp.PaymentType)
	assert.True(t, resp.Amount.Equal(decimal.RequireFromString("11.99")))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.metrics.TransactionsRecorded.WithLabelValues("CASH")))
	assert.Equal(t, float64(1199), testutil.ToFloat64(d.metrics.TransactionAmount.WithLabelValues("CASH")))
	assert.NoError(t, d.sql.ExpectationsWereMet())
}

func TestRecord_MissingReferencesRollBack(t *testing.T) {
	t.Run("product absent or deleted", func(t *testing.T) {
		d := setup(t)
		caller := companyCaller()
		productID := uuid.New()

		d.sql.ExpectBegin()
		d.repo.EXPECT().CompanyExists(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().ProductExists(gomock.Any(), *caller.CompanyID, productID).Return(false, nil)
		d.sql.ExpectRollback()

		_, err := d.service.Record(context.Background(), caller, recordRequest(productID))
		assert.ErrorIs(t, err, transactionerrors.ErrProductNotFound)
		assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("payment type", func(t *testing.T) {
		d := setup(t)

		d.sql.ExpectBegin()
		d.repo.EXPECT().CompanyExists(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().ProductExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		d.payments.EXPECT().FindActive(gomock.Any(), uint(1)).Return(nil, transactionerrors.ErrPaymentTypeNotFound)
		d.sql.ExpectRollback()

		_, err := d.service.Record(context.Background(), companyCaller(), recordRequest(uuid.New()))
		assert.ErrorIs(t, err, transactionerrors.ErrPaymentTypeNotFound)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("company", func(t *testing.T) {
		d := setup(t)

		d.sql.ExpectBegin()
		d.repo.EXPECT().CompanyExists(gomock.Any(), gomock.Any()).Return(false, nil)
		d.sql.ExpectRollback()

		_, err := d.service.Record(context.Background(), companyCaller(), recordRequest(uuid.New()))
		assert.ErrorIs(t, err, transactionerrors.ErrCompanyNotFound)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("insert failure", func(t *testing.T) {
		d := setup(t)
		dbErr := errors.New("insert failed")

		d.sql.ExpectBegin()
		d.repo.EXPECT().CompanyExists(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().ProductExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		d.payments.EXPECT().FindActive(gomock.Any(), gomock.Any()).Return(&transaction.PaymentType{ID: 1, Name: "CASH"}, nil)
		d.counters.EXPECT().GetNextValue(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)
		d.sql.ExpectRollback()

		_, err := d.service.Record(context.Background(), companyCaller(), recordRequest(uuid.New()))
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, float64(0), testutil.ToFloat64(d.metrics.TransactionsRecorded.WithLabelValues("CASH")))
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})
}

func TestRecord_RejectedBeforeTransaction(t *testing.T) {
	d := setup(t)

	_, err := d.service.Record(context.Background(), &domain.Caller{UserID: uuid.New(), Role: domain.RoleSuperAdmin}, recordRequest(uuid.New()))
	assert.ErrorIs(t, err, transactionerrors.ErrNoCompany)

	req := recordRequest(uuid.New())
	req.ProductID = "nope"
	_, err = d.service.Record(context.Background(), companyCaller(), req)
	assert.ErrorIs(t, err, transactionerrors.ErrInvalidProductID)

	assert.NoError(t, d.sql.ExpectationsWereMet())
}

func TestList_KeepsDeletedProductNames(t *testing.T) {
	d := setup(t)
	caller := companyCaller()
	now := time.Now().UTC()

	d.repo.EXPECT().FindAll(gomock.Any(), caller).Return([]transaction.Transaction{
		{
			ID:              uuid.New(),
			Number:          "TRX-000002",
			CompanyID:       *caller.CompanyID,
			Amount:          500,
			SelectedOptions: datatypes.JSONMap{},
			CreatedAt:       now,
			Product:         &product.Product{Name: "Retired Burger", DeletedAt: gorm.DeletedAt{Time: now, Valid: true}},
			PaymentType:     &transaction.PaymentType{Name: "GRAB_PAY"},
		},
		{ID: uuid.New(), Number: "TRX-000001", CompanyID: *caller.CompanyID, Amount: 250, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	list, err := d.service.List(context.Background(), caller)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "TRX-000002", list[0].Number)
	assert.Equal(t, "Retired Burger", list[0].ProductName)
	assert.Equal(t, "GRAB_PAY", list[0].PaymentType)
	assert.True(t, list[1].Amount.Equal(decimal.RequireFromString("2.5")))
}

func TestSummary(t *testing.T) {
	t.Run("reads the requested day", func(t *testing.T) {
		d := setup(t)
		caller := companyCaller()
		day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

		d.summary.EXPECT().Get(gomock.Any(), caller.CompanyID.String(), day).Return(int64(3), int64(4500), nil)

		resp, err := d.service.Summary(context.Background(), caller, "2026-03-14")
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Count)
		assert.Equal(t, int64(4500), resp.AmountMinor)
		assert.True(t, resp.Amount.Equal(decimal.RequireFromString("45")))
		assert.Equal(t, "2026-03-14", resp.Date)
	})

	t.Run("bad date", func(t *testing.T) {
		d := setup(t)
		_, err := d.service.Summary(context.Background(), companyCaller(), "14/03/2026")
		assert.ErrorIs(t, err, transactionerrors.ErrInvalidDate)
	})

	t.Run("no company", func(t *testing.T) {
		d := setup(t)
		_, err := d.service.Summary(context.Background(), nil, "")
		assert.ErrorIs(t, err, transactionerrors.ErrNoCompany)
	})
}

func TestPaymentTypes(t *testing.T) {
	d := setup(t)
	d.payments.EXPECT().List(gomock.Any()).Return([]transaction.PaymentType{{ID: 1, Name: "CASH"}, {ID: 2, Name: "TOUCH_N_GO"}}, nil)

	list, err := d.service.PaymentTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []transaction.PaymentTypeResponse{{ID: 1, Name: "CASH"}, {ID: 2, Name: "TOUCH_N_GO"}}, list)
}
