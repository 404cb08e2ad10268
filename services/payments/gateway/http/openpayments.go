package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/quetzapay/quetzapay/internal/pkg/circuitbreaker"
	"github.com/quetzapay/quetzapay/internal/pkg/constants"
	"github.com/quetzapay/quetzapay/internal/pkg/database"
	httpclient "github.com/quetzapay/quetzapay/internal/pkg/http"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/internal/pkg/retry"
)

// opAmount is the Open Payments wire representation of a monetary amount.
// Value carries minor units as a decimal string.
type opAmount struct {
	Value      string `json:"value"`
	AssetCode  string `json:"assetCode"`
	AssetScale int    `json:"assetScale"`
}

// opWalletAddress is the wallet address resource returned by the gateway
type opWalletAddress struct {
	ID             string `json:"id"`
	PublicName     string `json:"publicName"`
	AssetCode      string `json:"assetCode"`
	AssetScale     int    `json:"assetScale"`
	AuthServer     string `json:"authServer"`
	ResourceServer string `json:"resourceServer"`
}

// opIncomingPayment is the incoming payment resource returned by the gateway
type opIncomingPayment struct {
	ID             string    `json:"id"`
	WalletAddress  string    `json:"walletAddress"`
	Completed      bool      `json:"completed"`
	State          string    `json:"state,omitempty"`
	IncomingAmount *opAmount `json:"incomingAmount,omitempty"`
	ReceivedAmount *opAmount `json:"receivedAmount,omitempty"`
	ExpiresAt      time.Time `json:"expiresAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

type opIncomingPaymentRequest struct {
	WalletAddress  string   `json:"walletAddress"`
	IncomingAmount opAmount `json:"incomingAmount"`
	ExpiresAt      string   `json:"expiresAt"`
}

// OpenPaymentsClient talks to the Open Payments gateway. Calls run through a
// circuit breaker so a flapping gateway trips fast instead of holding every
// point-of-sale request for the full timeout.
type OpenPaymentsClient struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
	redis   *database.RedisClient
	cfg     *models.Config

	// wallet is written on bootstrap and cache refresh while payment
	// creation reads it concurrently
	mu     sync.RWMutex
	wallet *models.WalletInfo
}

// NewOpenPaymentsClient creates a new Open Payments gateway client
func NewOpenPaymentsClient(cfg *models.Config, redisClient *database.RedisClient, zlog *logger.ZapLogger) *OpenPaymentsClient {
	timeout := time.Duration(cfg.OpenPayments.RequestTimeout) * time.Second
	client := httpclient.NewClient(cfg.OpenPayments.WalletAddressURL, timeout)
	client.SetHeader("Authorization", "GNAP "+cfg.OpenPayments.AccessToken)

	return &OpenPaymentsClient{
		client:  client,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("open-payments")),
		retrier: retry.NewWithDefaults(zlog),
		redis:   redisClient,
		cfg:     cfg,
	}
}

// Bootstrap resolves the configured wallet address with bounded exponential
// backoff. The process starts even when the gateway is down; later calls fall
// back to offline mode until it recovers.
func (c *OpenPaymentsClient) Bootstrap(ctx context.Context) error {
	var wallet *models.WalletInfo
	err := c.retrier.Execute(ctx, func(ctx context.Context) error {
		info, err := c.fetchWalletAddress(ctx)
		if err != nil {
			return err
		}
		wallet = info
		return nil
	})
	if err != nil {
		logger.Warn("Wallet bootstrap failed, continuing in degraded mode",
			logger.String("wallet_url", c.cfg.OpenPayments.WalletAddressURL),
			logger.Err(err))
		return err
	}
	c.setWallet(wallet)

	logger.Info("Wallet address resolved",
		logger.String("wallet_url", wallet.URL),
		logger.String("asset_code", wallet.AssetCode),
		logger.Int("asset_scale", wallet.AssetScale))
	return nil
}

// GetWalletInfo returns the wallet address metadata, served from the Redis
// cache when fresh
func (c *OpenPaymentsClient) GetWalletInfo(ctx context.Context) (*models.WalletInfo, error) {
	cacheKey := fmt.Sprintf(constants.KeyWalletInfo, c.cfg.OpenPayments.WalletAddressURL)

	cached, err := c.redis.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var info models.WalletInfo
		if err := json.Unmarshal([]byte(cached), &info); err == nil {
			return &info, nil
		}
	} else if err != nil && err != redis.Nil {
		logger.Warn("Wallet cache read failed", logger.Err(err))
	}

	info, err := c.fetchWalletAddress(ctx)
	if err != nil {
		return nil, err
	}
	c.setWallet(info)

	if data, err := json.Marshal(info); err == nil {
		ttl := time.Duration(c.cfg.Payments.WalletCacheTTLMins) * time.Minute
		if err := c.redis.Set(ctx, cacheKey, string(data), ttl); err != nil {
			logger.Warn("Wallet cache write failed", logger.Err(err))
		}
	}

	return info, nil
}

// CreateIncomingPayment asks the gateway to mint an incoming payment for the
// given amount in minor units
func (c *OpenPaymentsClient) CreateIncomingPayment(ctx context.Context, amount int64, currency string) (*models.IncomingPayment, error) {
	wallet, err := c.walletInfo(ctx)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(time.Duration(c.cfg.Payments.PaymentExpiryMins) * time.Minute)
	req := opIncomingPaymentRequest{
		WalletAddress: wallet.URL,
		IncomingAmount: opAmount{
			Value:      strconv.FormatInt(amount, 10),
			AssetCode:  currency,
			AssetScale: wallet.AssetScale,
		},
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}

	var resource opIncomingPayment
	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.PostJSON(ctx, wallet.ResourceServer+"/incoming-payments", req, &resource)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create incoming payment: %w", err)
	}

	incoming := &models.IncomingPayment{
		Reference: resource.ID,
		ExpiresAt: resource.ExpiresAt,
	}
	if incoming.ExpiresAt.IsZero() {
		incoming.ExpiresAt = expiresAt
	}

	return incoming, nil
}

// GetIncomingPayment fetches the authoritative state of an incoming payment.
// The reference is the absolute resource URL minted at creation.
func (c *OpenPaymentsClient) GetIncomingPayment(ctx context.Context, reference string) (*models.IncomingPaymentStatus, error) {
	var resource opIncomingPayment
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.GetJSON(ctx, reference, &resource)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get incoming payment: %w", err)
	}

	status := &models.IncomingPaymentStatus{
		Completed: resource.Completed,
		State:     resource.State,
	}
	if resource.ReceivedAmount != nil {
		received, err := strconv.ParseInt(resource.ReceivedAmount.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid received amount %q: %w", resource.ReceivedAmount.Value, err)
		}
		status.ReceivedAmount = received
	}

	return status, nil
}

// walletInfo returns the bootstrapped wallet, fetching it on demand when
// bootstrap did not succeed
func (c *OpenPaymentsClient) walletInfo(ctx context.Context) (*models.WalletInfo, error) {
	c.mu.RLock()
	wallet := c.wallet
	c.mu.RUnlock()

	if wallet != nil {
		return wallet, nil
	}
	return c.GetWalletInfo(ctx)
}

func (c *OpenPaymentsClient) setWallet(info *models.WalletInfo) {
	c.mu.Lock()
	c.wallet = info
	c.mu.Unlock()
}

func (c *OpenPaymentsClient) fetchWalletAddress(ctx context.Context) (*models.WalletInfo, error) {
	var resource opWalletAddress
	if err := c.client.GetJSON(ctx, c.cfg.OpenPayments.WalletAddressURL, &resource); err != nil {
		return nil, fmt.Errorf("failed to fetch wallet address: %w", err)
	}

	return &models.WalletInfo{
		URL:            resource.ID,
		PublicName:     resource.PublicName,
		AssetCode:      resource.AssetCode,
		AssetScale:     resource.AssetScale,
		AuthServer:     resource.AuthServer,
		ResourceServer: resource.ResourceServer,
	}, nil
}
