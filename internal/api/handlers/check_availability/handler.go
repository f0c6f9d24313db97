package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	"github.com/sumonben/hotelmanagement/internal/domain"
	uc "github.com/sumonben/hotelmanagement/internal/usecase/check_availability"
)

const (
	msgInvalidHotelID = "invalid hotel ID"
	msgInvalidRoomID  = "invalid room ID"
	msgInvalidDates   = "check_in and check_out must be dates in YYYY-MM-DD format"
	msgInvalidRange   = "check-out date must be after check-in date"
	msgRoomNotFound   = "room not found"
)

type Handler struct {
	usecase AvailabilityUseCase
	logger  Logger
}

func NewHandler(usecase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rooms/{roomId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET availability - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	checkIn, err1 := time.Parse(domain.DateFormat, r.URL.Query().Get("check_in"))
	checkOut, err2 := time.Parse(domain.DateFormat, r.URL.Query().Get("check_out"))
	if err1 != nil || err2 != nil {
		h.logger.Warn("GET availability - Invalid dates: check_in=%q, check_out=%q",
			r.URL.Query().Get("check_in"), r.URL.Query().Get("check_out"))
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &uc.Request{
		HotelID:      hotelID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, uc.ErrInvalidDateRange), errors.Is(err, uc.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET availability - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
