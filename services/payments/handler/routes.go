package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/quetzapay/quetzapay/internal/pkg/database"
	"github.com/quetzapay/quetzapay/internal/pkg/middleware"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/payments/handler/http"
	"github.com/quetzapay/quetzapay/services/payments/handler/nats"
	"github.com/quetzapay/quetzapay/services/payments/handler/websocket"
)

// Handler coordinates all protocol handlers for the payments service
type Handler struct {
	paymentHandler *http.PaymentHandler
	wsHandler      *websocket.WebSocketHandler
	natsHandler    *nats.NatsHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	paymentHandler *http.PaymentHandler,
	wsHandler *websocket.WebSocketHandler,
	natsHandler *nats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		wsHandler:      wsHandler,
		natsHandler:    natsHandler,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from the Authorization header to
			// avoid type conflicts with echo-jwt's token representation
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if merchantID, exists := claims["merchant_id"]; exists {
							c.Set("merchant_id", merchantID)
						}
						if role, exists := claims["role"]; exists {
							c.Set("role", role)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo, redisClient *database.RedisClient) error {
	// Protected routes with JWT middleware
	protected := e.Group("/payments", h.GetJWTMiddleware())

	// Creation is rate limited per merchant so a misbehaving terminal
	// cannot flood the gateway
	protected.POST("", h.paymentHandler.CreatePayment,
		middleware.MerchantRateLimiter(60, time.Minute, redisClient.GetClient()))
	protected.GET("/:id/status", h.paymentHandler.GetPaymentStatus)
	protected.GET("/transactions", h.paymentHandler.ListTransactions)
	protected.POST("/sync", h.paymentHandler.SyncTransactions)
	protected.GET("/wallet-info", h.paymentHandler.GetWalletInfo)

	// Dashboard WebSocket; the manager authenticates the Bearer token itself
	e.GET("/ws", h.wsHandler.HandleWebSocket)

	// NATS consumers feed the dashboard connections
	return h.natsHandler.InitConsumers()
}
