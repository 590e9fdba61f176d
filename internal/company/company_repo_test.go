package company_test

import (
	"context"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/company"
	companyerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/company/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create_MapsUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := company.NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "companies"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_companies_owner_national_id"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), sampleCompany(uuid.Nil))

	assert.ErrorIs(t, err, companyerrors.ErrNationalIDExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsByNationalID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := company.NewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies" WHERE owner_national_id = \$1`).
		WithArgs("900101-14-5678").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByNationalID(context.Background(), "900101-14-5678")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := company.NewRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
}
