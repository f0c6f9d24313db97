package create_booking

import (
	"errors"
	"net/http"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	"github.com/sumonben/hotelmanagement/internal/api/middleware"
	uc "github.com/sumonben/hotelmanagement/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDates       = "dates must be in YYYY-MM-DD format"
	msgRoomNotFound       = "room not found"
	msgRoomNotAvailable   = "room is not available for these dates"
	msgUnauthorized       = "authentication required"
)

type Handler struct {
	usecase CreateBookingUseCase
	logger  Logger
}

func NewHandler(usecase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, uc.ErrRoomNotAvailable), errors.Is(err, uc.ErrRoomNotBookable):
			h.logger.Warn("POST /bookings - Room not available: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, uc.ErrInvalidInput),
			errors.Is(err, uc.ErrInvalidDateRange),
			errors.Is(err, uc.ErrDateInPast),
			errors.Is(err, uc.ErrTooManyGuests):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, ref=%s, user_id=%d", resp.ID, resp.BookingRef, userID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
