package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/payments/mocks"
	"github.com/stretchr/testify/assert"
)

func TestListTransactions_ClampsPageSize(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	merchantID := uuid.New()

	// Requested limit above the configured page size is clamped
	mockRepo.EXPECT().
		ListTransactions(gomock.Any(), merchantID, "completed", 20, 0).
		Return([]*models.Transaction{}, nil)

	// Act
	txs, err := uc.ListTransactions(context.Background(), merchantID, "completed", 500, -3)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestListTransactions_RepoError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	merchantID := uuid.New()
	mockRepo.EXPECT().
		ListTransactions(gomock.Any(), merchantID, "", 10, 0).
		Return(nil, errors.New("db down"))

	// Act
	txs, err := uc.ListTransactions(context.Background(), merchantID, "", 10, 0)

	// Assert
	assert.Nil(t, txs)
	assert.Error(t, err)
}

func TestGetWalletInfo_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	wallet := &models.WalletInfo{
		URL:        "https://wallet.example/merchant",
		AssetCode:  "USD",
		AssetScale: 2,
	}
	mockGW.EXPECT().GetWalletInfo(gomock.Any()).Return(wallet, nil)

	// Act
	info, err := uc.GetWalletInfo(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, wallet, info)
}

func TestGetWalletInfo_GatewayError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	mockGW.EXPECT().GetWalletInfo(gomock.Any()).Return(nil, errors.New("gateway down"))

	// Act
	info, err := uc.GetWalletInfo(context.Background())

	// Assert
	assert.Nil(t, info)
	assert.Error(t, err)
}
