package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quetzapay/quetzapay/internal/pkg/circuitbreaker"
	"github.com/quetzapay/quetzapay/internal/pkg/constants"
	"github.com/quetzapay/quetzapay/internal/pkg/database"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
)

type gatewayFixture struct {
	client *OpenPaymentsClient
	cfg    *models.Config
	redis  *miniredis.Miniredis
	server *httptest.Server

	mu             sync.Mutex
	walletRequests int
}

// setupGatewayTest starts a fake Open Payments server plus miniredis and
// returns a client pointed at them. The mux is registered after the server
// starts so handlers can reference the server URL.
func setupGatewayTest(t *testing.T, register func(f *gatewayFixture, mux *http.ServeMux)) *gatewayFixture {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	zlog, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := &models.Config{}
	cfg.OpenPayments.WalletAddressURL = server.URL + "/wallet"
	cfg.OpenPayments.AccessToken = "test-access-token"
	cfg.OpenPayments.RequestTimeout = 5
	cfg.Payments.PaymentExpiryMins = 15
	cfg.Payments.WalletCacheTTLMins = 60

	f := &gatewayFixture{
		cfg:    cfg,
		redis:  mr,
		server: server,
	}
	f.client = NewOpenPaymentsClient(cfg, redisClient, zlog)

	if register != nil {
		register(f, mux)
	}

	return f
}

// serveWallet registers a wallet address handler that counts fetches
func (f *gatewayFixture) serveWallet(mux *http.ServeMux) {
	mux.HandleFunc("/wallet", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.walletRequests++
		f.mu.Unlock()

		json.NewEncoder(w).Encode(opWalletAddress{
			ID:             f.server.URL + "/wallet",
			PublicName:     "Mercado Central",
			AssetCode:      "USD",
			AssetScale:     2,
			AuthServer:     f.server.URL + "/auth",
			ResourceServer: f.server.URL,
		})
	})
}

func (f *gatewayFixture) walletFetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.walletRequests
}

func TestGetWalletInfo_FetchesAndCaches(t *testing.T) {
	// Arrange
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		f.serveWallet(mux)
	})

	// Act
	info, err := f.client.GetWalletInfo(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "USD", info.AssetCode)
	assert.Equal(t, 2, info.AssetScale)
	assert.Equal(t, f.server.URL, info.ResourceServer)
	assert.Equal(t, 1, f.walletFetchCount())

	// The metadata lands in the cache with the configured TTL
	cacheKey := fmt.Sprintf(constants.KeyWalletInfo, f.cfg.OpenPayments.WalletAddressURL)
	assert.True(t, f.redis.Exists(cacheKey))
	assert.Equal(t, 60*time.Minute, f.redis.TTL(cacheKey))

	// A second call is served from the cache without another fetch
	info, err = f.client.GetWalletInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", info.AssetCode)
	assert.Equal(t, 1, f.walletFetchCount())
}

func TestGetWalletInfo_CacheHit(t *testing.T) {
	// Arrange: seed the cache and serve no wallet endpoint at all
	f := setupGatewayTest(t, nil)

	seeded := models.WalletInfo{
		URL:        f.cfg.OpenPayments.WalletAddressURL,
		PublicName: "Cached Merchant",
		AssetCode:  "MXN",
		AssetScale: 2,
	}
	data, err := json.Marshal(seeded)
	require.NoError(t, err)

	cacheKey := fmt.Sprintf(constants.KeyWalletInfo, f.cfg.OpenPayments.WalletAddressURL)
	require.NoError(t, f.redis.Set(cacheKey, string(data)))

	// Act
	info, err := f.client.GetWalletInfo(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Cached Merchant", info.PublicName)
	assert.Equal(t, "MXN", info.AssetCode)
	assert.Equal(t, 0, f.walletFetchCount())
}

func TestCreateIncomingPayment_Success(t *testing.T) {
	// Arrange
	expiresAt := time.Now().Add(10 * time.Minute).UTC().Truncate(time.Second)
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		f.serveWallet(mux)
		mux.HandleFunc("/incoming-payments", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "GNAP test-access-token", r.Header.Get("Authorization"))

			var req opIncomingPaymentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, f.server.URL+"/wallet", req.WalletAddress)
			assert.Equal(t, "2500", req.IncomingAmount.Value)
			assert.Equal(t, "USD", req.IncomingAmount.AssetCode)
			assert.Equal(t, 2, req.IncomingAmount.AssetScale)
			assert.NotEmpty(t, req.ExpiresAt)

			json.NewEncoder(w).Encode(opIncomingPayment{
				ID:        f.server.URL + "/incoming-payments/op-123",
				Completed: false,
				ExpiresAt: expiresAt,
			})
		})
	})

	// Act
	incoming, err := f.client.CreateIncomingPayment(context.Background(), 2500, "USD")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, f.server.URL+"/incoming-payments/op-123", incoming.Reference)
	assert.True(t, incoming.ExpiresAt.Equal(expiresAt))
}

func TestCreateIncomingPayment_DefaultExpiry(t *testing.T) {
	// The gateway omits expiresAt; the client falls back to the configured
	// payment window
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		f.serveWallet(mux)
		mux.HandleFunc("/incoming-payments", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(opIncomingPayment{
				ID: f.server.URL + "/incoming-payments/op-456",
			})
		})
	})

	// Act
	incoming, err := f.client.CreateIncomingPayment(context.Background(), 1000, "USD")

	// Assert
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), incoming.ExpiresAt, 5*time.Second)
}

func TestCreateIncomingPayment_GatewayError(t *testing.T) {
	// Arrange
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		f.serveWallet(mux)
		mux.HandleFunc("/incoming-payments", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
		})
	})

	// Act
	incoming, err := f.client.CreateIncomingPayment(context.Background(), 1000, "USD")

	// Assert
	assert.Nil(t, incoming)
	assert.ErrorContains(t, err, "failed to create incoming payment")
}

func TestCreateIncomingPayment_BreakerOpens(t *testing.T) {
	// Five consecutive failures trip the breaker; the next call is rejected
	// without reaching the gateway
	var postRequests int
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		f.serveWallet(mux)
		mux.HandleFunc("/incoming-payments", func(w http.ResponseWriter, r *http.Request) {
			postRequests++
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
		})
	})

	for i := 0; i < 5; i++ {
		_, err := f.client.CreateIncomingPayment(context.Background(), 1000, "USD")
		assert.Error(t, err)
	}
	assert.Equal(t, 5, postRequests)

	// Act
	_, err := f.client.CreateIncomingPayment(context.Background(), 1000, "USD")

	// Assert
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, 5, postRequests)
}

func TestGetIncomingPayment_Completed(t *testing.T) {
	// Arrange
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		mux.HandleFunc("/incoming-payments/op-123", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GNAP test-access-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(opIncomingPayment{
				ID:        f.server.URL + "/incoming-payments/op-123",
				Completed: true,
				ReceivedAmount: &opAmount{
					Value:      "2500",
					AssetCode:  "USD",
					AssetScale: 2,
				},
			})
		})
	})

	// Act
	status, err := f.client.GetIncomingPayment(context.Background(), f.server.URL+"/incoming-payments/op-123")

	// Assert
	require.NoError(t, err)
	assert.True(t, status.Completed)
	assert.Equal(t, int64(2500), status.ReceivedAmount)
}

func TestGetIncomingPayment_NotFound(t *testing.T) {
	// Arrange
	f := setupGatewayTest(t, nil)

	// Act
	status, err := f.client.GetIncomingPayment(context.Background(), f.server.URL+"/incoming-payments/missing")

	// Assert
	assert.Nil(t, status)
	assert.ErrorContains(t, err, "failed to get incoming payment")
}

func TestGetIncomingPayment_InvalidReceivedAmount(t *testing.T) {
	// Arrange
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		mux.HandleFunc("/incoming-payments/op-bad", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(opIncomingPayment{
				ID:             f.server.URL + "/incoming-payments/op-bad",
				Completed:      true,
				ReceivedAmount: &opAmount{Value: "not-a-number"},
			})
		})
	})

	// Act
	status, err := f.client.GetIncomingPayment(context.Background(), f.server.URL+"/incoming-payments/op-bad")

	// Assert
	assert.Nil(t, status)
	assert.ErrorContains(t, err, "invalid received amount")
}

func TestBootstrap_ResolvesWalletOnce(t *testing.T) {
	// Arrange
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		f.serveWallet(mux)
		mux.HandleFunc("/incoming-payments", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(opIncomingPayment{
				ID:        f.server.URL + "/incoming-payments/op-789",
				ExpiresAt: time.Now().Add(15 * time.Minute),
			})
		})
	})

	// Act
	err := f.client.Bootstrap(context.Background())
	require.NoError(t, err)

	_, err = f.client.CreateIncomingPayment(context.Background(), 500, "USD")

	// Assert: creation reuses the bootstrapped wallet
	require.NoError(t, err)
	assert.Equal(t, 1, f.walletFetchCount())
}

func TestWalletInfo_ConcurrentAccess(t *testing.T) {
	// Cold wallet read on the status path racing payment creation; run with
	// the race detector enabled
	f := setupGatewayTest(t, func(f *gatewayFixture, mux *http.ServeMux) {
		f.serveWallet(mux)
		mux.HandleFunc("/incoming-payments", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(opIncomingPayment{
				ID:        f.server.URL + "/incoming-payments/op-race",
				ExpiresAt: time.Now().Add(15 * time.Minute),
			})
		})
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := f.client.GetWalletInfo(context.Background())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := f.client.CreateIncomingPayment(context.Background(), 100, "USD")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
