package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/merchants"
)

func setupMerchantRepoTest(t *testing.T) (*PostgresMerchantRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &PostgresMerchantRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func merchantRows(m *models.Merchant) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "business_name", "wallet_address",
		"api_secret_hash", "is_active", "created_at", "updated_at",
	}).AddRow(
		m.ID, m.Name, m.Email, m.BusinessName, m.WalletAddress,
		m.APISecretHash, m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
}

func sampleMerchant() *models.Merchant {
	return &models.Merchant{
		ID:            uuid.New(),
		Name:          "Mercado Central",
		Email:         "owner@mercado.example",
		BusinessName:  "Mercado Central SA",
		WalletAddress: "https://wallet.example/mercado",
		APISecretHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestCreateMerchant_Success(t *testing.T) {
	repo, mock, cleanup := setupMerchantRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO merchants").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateMerchant(context.Background(), sampleMerchant())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMerchantByID(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, merchant *models.Merchant, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				m := sampleMerchant()
				m.ID = id
				mock.ExpectQuery("SELECT (.+) FROM merchants").
					WithArgs(id).
					WillReturnRows(merchantRows(m))
			},
			assertFunc: func(t *testing.T, merchant *models.Merchant, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "owner@mercado.example", merchant.Email)
				assert.True(t, merchant.IsActive)
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery("SELECT (.+) FROM merchants").
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, merchant *models.Merchant, err error) {
				assert.Nil(t, merchant)
				assert.ErrorIs(t, err, merchants.ErrMerchantNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMerchantRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)

			merchant, err := repo.GetMerchantByID(context.Background(), id)

			tc.assertFunc(t, merchant, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMerchantByEmail_Success(t *testing.T) {
	repo, mock, cleanup := setupMerchantRepoTest(t)
	defer cleanup()

	m := sampleMerchant()
	mock.ExpectQuery("SELECT (.+) FROM merchants").
		WithArgs(m.Email).
		WillReturnRows(merchantRows(m))

	merchant, err := repo.GetMerchantByEmail(context.Background(), m.Email)

	assert.NoError(t, err)
	require.NotNil(t, merchant)
	assert.Equal(t, m.ID, merchant.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMerchantActive(t *testing.T) {
	testCases := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{
			name:         "Success",
			rowsAffected: 1,
			expectedErr:  nil,
		},
		{
			name:         "Not found",
			rowsAffected: 0,
			expectedErr:  merchants.ErrMerchantNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMerchantRepoTest(t)
			defer cleanup()

			id := uuid.New()
			mock.ExpectExec("UPDATE merchants").
				WithArgs(id, false, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			err := repo.SetMerchantActive(context.Background(), id, false)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
