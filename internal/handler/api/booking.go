package api

import (
	"errors"
	"net/http"

	reqdto "coach-booking-engine/internal/handler/dto/request"
	resdto "coach-booking-engine/internal/handler/dto/response"
	"coach-booking-engine/internal/handler/httperr"
	"coach-booking-engine/internal/handler/middleware"
	"coach-booking-engine/internal/pkg/errs"
	"coach-booking-engine/internal/usecase/commands"
	"coach-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Get booking
// @Description Get a booking visible to the caller
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	partyID, bookingID, ok := h.partyAndBookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), partyID, bookingID)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings where the caller is requester or counterparty
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("party id missing from context"), "Internal server error", nil)
		return
	}

	views, err := h.bookingQueries.ListByParty(c.Request.Context(), partyID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromBookingView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Attach video session
// @Description Bind an external video session id to a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AttachSessionRequest true "External session binding"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/session [post]
func (h *BookingHandler) AttachSession(c *gin.Context) {
	partyID, bookingID, ok := h.partyAndBookingID(c)
	if !ok {
		return
	}

	var req reqdto.AttachSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	err := h.bookingCommands.AttachSession(c.Request.Context(), bookingID, partyID, req.ExternalSessionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "External session id is required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) partyAndBookingID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("party id missing from context"), "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return partyID, bookingID, true
}

func (h *BookingHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
