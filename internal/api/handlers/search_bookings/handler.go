package search_bookings

import (
	"errors"
	"net/http"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	"github.com/sumonben/hotelmanagement/internal/service/bookings"
	"github.com/sumonben/hotelmanagement/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCriteria    = "at least one of bookingRef or guestEmail is required"
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

// Handle POST /api/v1/bookings/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SearchBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Search(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCriteria)

		default:
			h.logger.Error("POST /bookings/search - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
