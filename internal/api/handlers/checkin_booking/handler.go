package checkin_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	"github.com/sumonben/hotelmanagement/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking ID"
	msgNotFound         = "booking not found"
	msgNotEligible      = "booking cannot be checked in from its current status"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/checkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/checkin - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	resp, err := h.service.CheckIn(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/checkin - Not eligible: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotEligible)

		default:
			h.logger.Error("PATCH /bookings/{id}/checkin - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/checkin - Checked in: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
