package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/merchants"
	"github.com/quetzapay/quetzapay/services/merchants/mocks"
	"github.com/stretchr/testify/assert"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "quetzapay",
		},
	}
}

func TestRegisterMerchant_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	reg := &models.MerchantRegistration{
		Name:          "Coffee Corner",
		Email:         "owner@coffeecorner.com",
		BusinessName:  "Coffee Corner Ltd",
		WalletAddress: "https://wallet.example/coffeecorner",
	}

	mockRepo.EXPECT().
		GetMerchantByEmail(gomock.Any(), reg.Email).
		Return(nil, merchants.ErrMerchantNotFound)

	var stored *models.Merchant
	mockRepo.EXPECT().
		CreateMerchant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Merchant) error {
			stored = m
			return nil
		})

	// Act
	creds, err := uc.RegisterMerchant(context.Background(), reg)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, creds.APISecret)
	assert.Len(t, creds.APISecret, 32)
	assert.True(t, creds.Merchant.IsActive)

	// Only the bcrypt hash is stored, and it verifies against the secret
	assert.NotNil(t, stored)
	assert.NotEqual(t, creds.APISecret, stored.APISecretHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.APISecretHash), []byte(creds.APISecret)))
}

func TestRegisterMerchant_InvalidEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	reg := &models.MerchantRegistration{
		Name:          "Coffee Corner",
		Email:         "not-an-email",
		WalletAddress: "https://wallet.example/coffeecorner",
	}

	// Act
	creds, err := uc.RegisterMerchant(context.Background(), reg)

	// Assert
	assert.Nil(t, creds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")
}

func TestRegisterMerchant_EmailTaken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	reg := &models.MerchantRegistration{
		Name:          "Coffee Corner",
		Email:         "owner@coffeecorner.com",
		WalletAddress: "https://wallet.example/coffeecorner",
	}

	mockRepo.EXPECT().
		GetMerchantByEmail(gomock.Any(), reg.Email).
		Return(&models.Merchant{ID: uuid.New(), Email: reg.Email}, nil)

	// Act
	creds, err := uc.RegisterMerchant(context.Background(), reg)

	// Assert
	assert.Nil(t, creds)
	assert.ErrorIs(t, err, merchants.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	secret := "4f6a2b9c8d1e0f3a4f6a2b9c8d1e0f3a"
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	assert.NoError(t, err)

	merchant := &models.Merchant{
		ID:            uuid.New(),
		Email:         "owner@coffeecorner.com",
		APISecretHash: string(hash),
		IsActive:      true,
	}

	mockRepo.EXPECT().
		GetMerchantByEmail(gomock.Any(), merchant.Email).
		Return(merchant, nil)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:     merchant.Email,
		APISecret: secret,
	})

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, merchant.ID.String(), resp.MerchantID)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_WrongSecret(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("right-secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	merchant := &models.Merchant{
		ID:            uuid.New(),
		Email:         "owner@coffeecorner.com",
		APISecretHash: string(hash),
		IsActive:      true,
	}

	mockRepo.EXPECT().
		GetMerchantByEmail(gomock.Any(), merchant.Email).
		Return(merchant, nil)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:     merchant.Email,
		APISecret: "wrong-secret",
	})

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, merchants.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	mockRepo.EXPECT().
		GetMerchantByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, merchants.ErrMerchantNotFound)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:     "ghost@example.com",
		APISecret: "whatever",
	})

	// Assert: unknown email and bad secret are indistinguishable
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, merchants.ErrInvalidCredentials)
}

func TestLogin_InactiveMerchant(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	merchant := &models.Merchant{
		ID:       uuid.New(),
		Email:    "owner@coffeecorner.com",
		IsActive: false,
	}

	mockRepo.EXPECT().
		GetMerchantByEmail(gomock.Any(), merchant.Email).
		Return(merchant, nil)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:     merchant.Email,
		APISecret: "whatever",
	})

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, merchants.ErrInvalidCredentials)
}

func TestSetMerchantActive_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	id := uuid.New()
	mockRepo.EXPECT().SetMerchantActive(gomock.Any(), id, false).Return(nil)

	// Act
	err := uc.SetMerchantActive(context.Background(), id, false)

	// Assert
	assert.NoError(t, err)
}

func TestSetMerchantActive_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMerchantRepo(ctrl)
	uc := NewMerchantUC(mockRepo, testConfig())

	id := uuid.New()
	mockRepo.EXPECT().
		SetMerchantActive(gomock.Any(), id, true).
		Return(merchants.ErrMerchantNotFound)

	// Act
	err := uc.SetMerchantActive(context.Background(), id, true)

	// Assert
	assert.True(t, errors.Is(err, merchants.ErrMerchantNotFound))
}
