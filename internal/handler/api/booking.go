package api

import (
	"errors"
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Save booking draft
// @Description Store the selection-stage draft for the client, replacing any existing one
// @Tags booking
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client identifier (UUID)"
// @Param request body reqdto.SaveDraftRequest true "Draft payload"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/draft [put]
func (h *BookingHandler) SaveDraft(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("client identity missing"), "Internal error", nil)
		return
	}

	var req reqdto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.cmds.SaveDraft(c.Request.Context(), clientID, params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDraft):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking draft", nil)
		case errors.Is(err, errs.ErrUnpriceableItem):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Item cannot be priced", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Get booking draft
// @Description Return the pending draft with a current price quote
// @Tags booking
// @Produce json
// @Param X-Client-ID header string true "Client identifier (UUID)"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /booking/draft [get]
func (h *BookingHandler) GetDraft(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("client identity missing"), "Internal error", nil)
		return
	}

	view, err := h.q.GetDraft(c.Request.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoDraft):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No pending booking draft", nil)
		case errors.Is(err, errs.ErrUnpriceableItem):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Item cannot be priced", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Cancel booking draft
// @Description Discard the pending draft
// @Tags booking
// @Param X-Client-ID header string true "Client identifier (UUID)"
// @Success 204
// @Router /booking/draft [delete]
func (h *BookingHandler) CancelDraft(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("client identity missing"), "Internal error", nil)
		return
	}

	if err := h.cmds.CancelDraft(c.Request.Context(), clientID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Confirm booking
// @Description Charge the pending draft and write the confirmation
// @Tags booking
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client identifier (UUID)"
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.ConfirmBookingRequest true "Payment method"
// @Success 201 {object} resdto.ConfirmationResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("client identity missing"), "Internal error", nil)
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ConfirmBooking(c.Request.Context(), clientID, idempotencyKey, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoDraft):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No pending booking draft", nil)
		case errors.Is(err, errs.ErrUnpriceableItem):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Item cannot be priced", nil)
		case errors.Is(err, errs.ErrPaymentDeclined):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment declined", nil)
		case errors.Is(err, errs.ErrDuplicateConfirmation):
			httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key reused with different parameters", nil)
		case errors.Is(err, errs.ErrIdempotencyInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Confirmation in progress", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromConfirmationView(result.Confirmation, result.IsReplayed))
}

// @Summary Get booking confirmation
// @Description Return the latest booking confirmation for the client
// @Tags booking
// @Produce json
// @Param X-Client-ID header string true "Client identifier (UUID)"
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 404 {object} map[string]string
// @Router /booking/confirmation [get]
func (h *BookingHandler) GetConfirmation(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("client identity missing"), "Internal error", nil)
		return
	}

	view, err := h.q.GetConfirmation(c.Request.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrConfirmationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking confirmation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmationView(view, false))
}

func (h *BookingHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
