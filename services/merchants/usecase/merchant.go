package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/quetzapay/quetzapay/internal/pkg/jwt"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/internal/utils"
	"github.com/quetzapay/quetzapay/services/merchants"
)

// apiSecretLength is the hex length of a generated merchant API secret
const apiSecretLength = 32

// RegisterMerchant creates a merchant account and returns its one-time API
// secret. Only the bcrypt hash is stored.
func (u *MerchantUC) RegisterMerchant(ctx context.Context, reg *models.MerchantRegistration) (*models.MerchantCredentials, error) {
	if !utils.IsValidEmail(reg.Email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if reg.Name == "" || reg.WalletAddress == "" {
		return nil, fmt.Errorf("name and wallet address are required")
	}

	existing, err := u.merchantRepo.GetMerchantByEmail(ctx, reg.Email)
	if err != nil && !errors.Is(err, merchants.ErrMerchantNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, merchants.ErrEmailTaken
	}

	secret, err := utils.GenerateRandomHex(apiSecretLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate API secret: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash API secret: %w", err)
	}

	now := time.Now()
	merchant := &models.Merchant{
		ID:            uuid.New(),
		Name:          reg.Name,
		Email:         reg.Email,
		BusinessName:  reg.BusinessName,
		WalletAddress: reg.WalletAddress,
		APISecretHash: string(hash),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.merchantRepo.CreateMerchant(ctx, merchant); err != nil {
		return nil, fmt.Errorf("failed to create merchant: %w", err)
	}

	logger.Info("Merchant registered",
		logger.String("merchant_id", merchant.ID.String()),
		logger.String("email", utils.MaskEmail(merchant.Email)))

	return &models.MerchantCredentials{
		Merchant:  *merchant,
		APISecret: secret,
	}, nil
}

// GetMerchantByID retrieves a merchant by id
func (u *MerchantUC) GetMerchantByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error) {
	return u.merchantRepo.GetMerchantByID(ctx, id)
}

// SetMerchantActive activates or deactivates a merchant account
func (u *MerchantUC) SetMerchantActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := u.merchantRepo.SetMerchantActive(ctx, id, active); err != nil {
		return err
	}

	logger.Info("Merchant activation changed",
		logger.String("merchant_id", id.String()),
		logger.Bool("active", active))
	return nil
}

// Login verifies the merchant's API secret and issues a JWT for the
// dashboard and point-of-sale endpoints
func (u *MerchantUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	merchant, err := u.merchantRepo.GetMerchantByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, merchants.ErrMerchantNotFound) {
			return nil, merchants.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}

	if !merchant.IsActive {
		return nil, merchants.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(merchant.APISecretHash), []byte(req.APISecret)); err != nil {
		logger.Warn("Failed login attempt",
			logger.String("email", utils.MaskEmail(req.Email)))
		return nil, merchants.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(merchant.ID, merchant.Email, "merchant", u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:      token,
		MerchantID: merchant.ID.String(),
		ExpiresAt:  expiresAt,
	}, nil
}
