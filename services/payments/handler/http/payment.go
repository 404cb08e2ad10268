package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/internal/utils"
	"github.com/quetzapay/quetzapay/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(
	paymentUC payments.PaymentUC,
) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// CreatePayment handles payment creation requests from the point of sale
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	merchantID, err := merchantIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for payment creation",
			logger.Err(err),
			logger.String("merchant_id", merchantID.String()))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.paymentUC.CreatePayment(c.Request().Context(), merchantID, &req)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidAmount) || errors.Is(err, payments.ErrInvalidCurrency) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create payment",
			logger.Err(err),
			logger.String("merchant_id", merchantID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to create payment")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment created successfully", resp)
}

// GetPaymentStatus handles status polling for a transaction
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	resp, err := h.paymentUC.CheckStatus(c.Request().Context(), transactionID)
	if err != nil {
		if errors.Is(err, payments.ErrTransactionNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.Error("Failed to check payment status",
			logger.Err(err),
			logger.String("transaction_id", transactionID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to check payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved", resp)
}

// ListTransactions handles merchant transaction history requests
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	merchantID, err := merchantIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	status := c.QueryParam("status")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	txs, err := h.paymentUC.ListTransactions(c.Request().Context(), merchantID, status, limit, offset)
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.Err(err),
			logger.String("merchant_id", merchantID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", txs)
}

// SyncTransactions triggers the offline reconciliation pass
func (h *PaymentHandler) SyncTransactions(c echo.Context) error {
	merchantID, err := merchantIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	count, err := h.paymentUC.SyncOfflineTransactions(c.Request().Context(), merchantID)
	if err != nil {
		logger.Error("Offline sync failed",
			logger.Err(err),
			logger.String("merchant_id", merchantID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to sync transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sync completed", map[string]int{"synced_count": count})
}

// GetWalletInfo returns the merchant wallet metadata
func (h *PaymentHandler) GetWalletInfo(c echo.Context) error {
	info, err := h.paymentUC.GetWalletInfo(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get wallet info", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Wallet information unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet info retrieved", info)
}

// merchantIDFromContext reads the merchant id set by the JWT middleware
func merchantIDFromContext(c echo.Context) (uuid.UUID, error) {
	raw := c.Get("merchant_id")
	if raw == nil {
		return uuid.Nil, fmt.Errorf("missing merchant id in context")
	}

	id, err := uuid.Parse(fmt.Sprintf("%v", raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid merchant id in context")
	}

	return id, nil
}
