package update_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	"github.com/sumonben/hotelmanagement/internal/service/policies"
	"github.com/sumonben/hotelmanagement/internal/service/policies/models"
)

const (
	msgInvalidHotelID     = "invalid hotel ID"
	msgInvalidPolicyID    = "invalid policy ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "cancellation policy not found"
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

// Handle PUT /api/v1/hotels/{hotelId}/policies/{policyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /hotels/{id}/policies/{policyId} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	policyID, err := strconv.ParseInt(vars["policyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /hotels/{id}/policies/{policyId} - Invalid policy ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPolicyID)
		return
	}

	var req models.UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hotels/{id}/policies/{policyId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), hotelID, policyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, policies.ErrPolicyNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, policies.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /hotels/{id}/policies/{policyId} - Failed: policy_id=%d, error=%v", policyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /hotels/{id}/policies/{policyId} - Updated: policy_id=%d, refund=%d%%",
		policyID, resp.RefundPercentage)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
