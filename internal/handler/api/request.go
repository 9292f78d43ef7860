package api

import (
	"errors"
	"net/http"

	reqdto "coach-booking-engine/internal/handler/dto/request"
	resdto "coach-booking-engine/internal/handler/dto/response"
	"coach-booking-engine/internal/handler/middleware"
	"coach-booking-engine/internal/usecase/commands"
	"coach-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
}

func NewRequestHandler(requestCommands commands.RequestCommands, requestQueries queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Create booking request
// @Description Create a new booking request against a listing
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequestRequest true "Booking request"
// @Success 201 {object} resdto.BookingRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.requestCommands.CreateRequest(c.Request.Context(), req, partyID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking request failed validation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary Accept booking request
// @Description Accept a pending request and capture the stored payment method
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.AcceptResponse
// @Failure 402 {object} resdto.PaymentDeclinedResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/{id}/accept [post]
func (h *RequestHandler) AcceptRequest(c *gin.Context) {
	partyID, requestID, ok := h.partyAndRequestID(c)
	if !ok {
		return
	}

	result, err := h.requestCommands.AcceptRequest(c.Request.Context(), requestID, partyID)
	if err != nil {
		h.writeAcceptError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAcceptResult(result))
}

// @Summary Decline booking request
// @Description Decline a pending request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/decline [post]
func (h *RequestHandler) DeclineRequest(c *gin.Context) {
	partyID, requestID, ok := h.partyAndRequestID(c)
	if !ok {
		return
	}

	if err := h.requestCommands.DeclineRequest(c.Request.Context(), requestID, partyID); err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking request
// @Description Cancel a pending request as its requester
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/cancel [post]
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	partyID, requestID, ok := h.partyAndRequestID(c)
	if !ok {
		return
	}

	if err := h.requestCommands.CancelRequest(c.Request.Context(), requestID, partyID); err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get booking request
// @Description Get a booking request visible to the caller
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	partyID, requestID, ok := h.partyAndRequestID(c)
	if !ok {
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), partyID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List booking requests
// @Description List requests where the caller is requester or counterparty
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingRequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.requestQueries.ListByParty(c.Request.Context(), partyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingRequestResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromRequestView(view)
	}

	c.JSON(http.StatusOK, response)
}

func (h *RequestHandler) partyAndRequestID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return partyID, requestID, true
}

func (h *RequestHandler) writeAcceptError(c *gin.Context, err error) {
	var declined *commands.PaymentDeclinedError
	switch {
	case errors.As(err, &declined):
		c.JSON(http.StatusPaymentRequired, resdto.PaymentDeclinedResponse{
			Error:          "Payment declined",
			DeclineCode:    string(declined.Code),
			Message:        declined.Message,
			RequiresAction: declined.Code.RequiresFollowUp(),
		})
	case errors.Is(err, commands.ErrPaymentNotRecorded):
		// The charge went through but the local state write did not;
		// no automatic retry may re-charge. Flag for reconciliation.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":                  "Payment captured but booking state is inconsistent",
			"requiresReconciliation": true,
		})
	case errors.Is(err, commands.ErrPaymentMethodMissing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Request has no stored payment method",
		})
	case errors.Is(err, commands.ErrPayoutNotReady):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Payout account is not ready to receive funds",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Fee configuration produced an invalid split",
		})
	default:
		h.writeTransitionError(c, err)
	}
}

func (h *RequestHandler) writeTransitionError(c *gin.Context, err error) {
	var conflict *commands.StatusConflictError
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
	case errors.Is(err, commands.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Payment has already been processed for this request; the action is no longer possible",
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":         "Request is not pending",
			"currentStatus": conflict.Current,
		})
	case errors.Is(err, commands.ErrStatusMismatch):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Request is not pending",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
