package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/internal/utils"
	"github.com/quetzapay/quetzapay/services/merchants"
)

// MerchantHandler handles HTTP requests for merchant operations
type MerchantHandler struct {
	merchantUC merchants.MerchantUC
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(
	merchantUC merchants.MerchantUC,
) *MerchantHandler {
	return &MerchantHandler{
		merchantUC: merchantUC,
	}
}

// RegisterMerchant handles merchant sign-up requests
func (h *MerchantHandler) RegisterMerchant(c echo.Context) error {
	var reg models.MerchantRegistration
	if err := c.Bind(&reg); err != nil {
		logger.Warn("Invalid request payload for merchant registration",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	creds, err := h.merchantUC.RegisterMerchant(c.Request().Context(), &reg)
	if err != nil {
		if errors.Is(err, merchants.ErrEmailTaken) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to register merchant",
			logger.Err(err),
			logger.String("email", utils.MaskEmail(reg.Email)))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to register merchant")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Merchant registered successfully", creds)
}

// GetMerchant handles merchant retrieval requests
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid merchant ID")
	}

	merchant, err := h.merchantUC.GetMerchantByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, merchants.ErrMerchantNotFound) {
			return utils.NotFoundResponse(c, "Merchant not found")
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to retrieve merchant")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Merchant retrieved successfully", merchant)
}

// SetMerchantActive handles activation and deactivation requests
func (h *MerchantHandler) SetMerchantActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid merchant ID")
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.merchantUC.SetMerchantActive(c.Request().Context(), id, req.Active); err != nil {
		if errors.Is(err, merchants.ErrMerchantNotFound) {
			return utils.NotFoundResponse(c, "Merchant not found")
		}
		logger.Error("Failed to update merchant activation",
			logger.Err(err),
			logger.String("merchant_id", id.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update merchant")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Merchant updated successfully", map[string]bool{"active": req.Active})
}

// Login handles merchant authentication requests
func (h *MerchantHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.merchantUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, merchants.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.Error("Login failed",
			logger.Err(err),
			logger.String("email", utils.MaskEmail(req.Email)))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
