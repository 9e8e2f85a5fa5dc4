package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "quickspend/internal/errors"
	"quickspend/internal/services"
)

// PaymentModeHandler handles payment-mode requests.
type PaymentModeHandler struct {
	paymentModeService services.PaymentModeServicer
	auditService       services.AuditServicer
}

// NewPaymentModeHandler creates a new PaymentModeHandler.
func NewPaymentModeHandler(paymentModeService services.PaymentModeServicer, auditService services.AuditServicer) *PaymentModeHandler {
	return &PaymentModeHandler{paymentModeService: paymentModeService, auditService: auditService}
}

// CreatePaymentModeRequest represents the request payload for creating a payment mode.
type CreatePaymentModeRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Shorthand string `json:"shorthand" binding:"required,max=20"`
	Icon      string `json:"icon" binding:"max=50"`
	Color     string `json:"color" binding:"omitempty,hex_color"`
}

// UpdatePaymentModeRequest represents the request payload for updating a payment mode.
// Empty fields leave the existing values unchanged.
type UpdatePaymentModeRequest struct {
	Name      string `json:"name" binding:"max=100"`
	Shorthand string `json:"shorthand" binding:"max=20"`
	Icon      string `json:"icon" binding:"max=50"`
	Color     string `json:"color" binding:"omitempty,hex_color"`
}

// PaymentModeResponse represents a payment mode in the response.
type PaymentModeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Shorthand string `json:"shorthand"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

// CreatePaymentMode handles creating a payment mode
// @Summary     Create a payment mode
// @Description Create a payment mode with a display name and a short alias
// @Tags        payment-modes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePaymentModeRequest true "Payment mode details"
// @Success     201 {object} PaymentModeResponse "Payment mode created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate name or shorthand"
// @Router      /payment-modes [post]
func (h *PaymentModeHandler) CreatePaymentMode(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePaymentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	mode, err := h.paymentModeService.CreatePaymentMode(userID, req.Name, req.Shorthand, req.Icon, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PAYMENT_MODE", "payment_mode", mode.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "shorthand": req.Shorthand})

	c.JSON(http.StatusCreated, gin.H{"payment_mode": mode})
}

// GetPaymentModes handles listing the user's payment modes
// @Summary     List payment modes
// @Description Get all of the user's payment modes
// @Tags        payment-modes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} PaymentModeResponse "Payment modes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /payment-modes [get]
func (h *PaymentModeHandler) GetPaymentModes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	modes, err := h.paymentModeService.GetUserPaymentModes(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_modes": modes})
}

// UpdatePaymentMode handles updating a payment mode
// @Summary     Update a payment mode
// @Description Update a payment mode's name, shorthand, icon, or color
// @Tags        payment-modes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payment mode ID"
// @Param       request body UpdatePaymentModeRequest true "Fields to update"
// @Success     200 {object} PaymentModeResponse "Updated payment mode"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Duplicate name or shorthand"
// @Router      /payment-modes/{id} [put]
func (h *PaymentModeHandler) UpdatePaymentMode(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaymentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	mode, err := h.paymentModeService.UpdatePaymentMode(userID, c.Param("id"), req.Name, req.Shorthand, req.Icon, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PAYMENT_MODE", "payment_mode", mode.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"payment_mode": mode})
}

// DeletePaymentMode handles deleting a payment mode
// @Summary     Delete a payment mode
// @Description Delete a payment mode; past transactions keep their mode label
// @Tags        payment-modes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payment mode ID"
// @Success     204 "Payment mode deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /payment-modes/{id} [delete]
func (h *PaymentModeHandler) DeletePaymentMode(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	modeID := c.Param("id")
	if err := h.paymentModeService.DeletePaymentMode(userID, modeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PAYMENT_MODE", "payment_mode", modeID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
