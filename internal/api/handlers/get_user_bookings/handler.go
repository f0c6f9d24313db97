package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	"github.com/sumonben/hotelmanagement/internal/api/middleware"
	"github.com/sumonben/hotelmanagement/internal/service/bookings"
	"github.com/sumonben/hotelmanagement/internal/service/bookings/models"
)

const (
	msgInvalidUserID = "invalid user ID"
	msgInvalidStatus = "invalid status filter"
	msgForbidden     = "access denied"
	msgUnauthorized  = "authentication required"
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

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Users can only list their own bookings
	if userID != authUserID {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%d, auth_user_id=%d", userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
