package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/merchants/handler/http"
)

// Handler coordinates the HTTP handlers for the merchants service
type Handler struct {
	merchantHandler *http.MerchantHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	merchantHandler *http.MerchantHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		merchantHandler: merchantHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the merchant routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.POST("/auth/login", h.merchantHandler.Login)
	e.POST("/merchants", h.merchantHandler.RegisterMerchant)

	// Protected routes
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
	})
	merchantGroup := e.Group("/merchants", jwtMiddleware)
	merchantGroup.GET("/:id", h.merchantHandler.GetMerchant)
	merchantGroup.PUT("/:id/active", h.merchantHandler.SetMerchantActive)
}
