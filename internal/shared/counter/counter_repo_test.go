package counter_test

import (
	"context"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_GetNextValue(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO company_counters`).
		WithArgs("company-1", counter.TypeTransaction).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(7))

	repo := counter.NewRepository(db)
	next, err := repo.GetNextValue(context.Background(), "company-1", counter.TypeTransaction)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "TRX-000001", counter.FormatNumber("TRX", 1))
	assert.Equal(t, "TRX-1234567", counter.FormatNumber("TRX", 1234567))
}
