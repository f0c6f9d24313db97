package payment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	"github.com/sumonben/hotelmanagement/internal/service/bookings"
)

const (
	msgInvalidRef = "invalid booking reference"
	msgNotFound   = "booking not found"
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

// Handle GET /api/v1/bookings/{bookingRef}/payment-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["bookingRef"]
	if ref == "" {
		handlers.RespondBadRequest(w, msgInvalidRef)
		return
	}

	resp, err := h.service.GetPaymentStatus(r.Context(), ref)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{ref}/payment-status - Failed: ref=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
