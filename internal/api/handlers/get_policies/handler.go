package get_policies

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
)

const (
	msgInvalidHotelID = "invalid hotel ID"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/policies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := strconv.ParseInt(mux.Vars(r)["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/policies - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	resp, err := h.service.List(r.Context(), hotelID, includeInactive)
	if err != nil {
		h.logger.Error("GET /hotels/{id}/policies - Failed: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
