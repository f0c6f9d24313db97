package initiate_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	"github.com/sumonben/hotelmanagement/internal/api/middleware"
	uc "github.com/sumonben/hotelmanagement/internal/usecase/initiate_payment"
)

const (
	msgInvalidBookingID = "invalid booking ID"
	msgNotFound         = "booking not found"
	msgForbidden        = "access denied"
	msgNotPayable       = "booking is not awaiting payment"
	msgGatewayRejected  = "payment gateway rejected the request"
	msgUnauthorized     = "authentication required"
)

type Handler struct {
	usecase InitiatePaymentUseCase
	logger  Logger
}

func NewHandler(usecase InitiatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payments/initiate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payments/initiate - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &uc.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, uc.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/payments/initiate - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, uc.ErrNotPayable):
			handlers.RespondConflict(w, msgNotPayable)

		case errors.Is(err, uc.ErrGatewayRejected):
			h.logger.Warn("POST /bookings/{id}/payments/initiate - Gateway rejected: booking_id=%d", bookingID)
			handlers.RespondJSON(w, http.StatusBadGateway, handlers.ErrorResponse{Error: msgGatewayRejected})

		default:
			h.logger.Error("POST /bookings/{id}/payments/initiate - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payments/initiate - Session opened: booking_id=%d, tran_id=%s",
		bookingID, resp.TransactionID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
