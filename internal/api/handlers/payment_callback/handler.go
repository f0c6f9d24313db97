package payment_callback

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
	uc "github.com/sumonben/hotelmanagement/internal/usecase/reconcile_payment"
)

const (
	msgInvalidPayload = "invalid callback payload"
)

type Handler struct {
	usecase ReconcilePaymentUseCase
	logger  Logger
}

func NewHandler(usecase ReconcilePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/callback
//
// The gateway posts form-encoded payloads; JSON is accepted too for
// manual replays. The endpoint is unauthenticated by design: callbacks
// carry no user identity, and reconciliation never trusts them without
// gateway verification.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := parsePayload(r)
	if err != nil {
		h.logger.Warn("POST /payments/callback - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &uc.Request{Payload: payload})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrVerificationUnavailable):
			// 503 tells the gateway to redeliver the callback
			h.logger.Error("POST /payments/callback - Verification unavailable: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable,
				handlers.ErrorResponse{Error: "verification unavailable, retry later"})

		default:
			h.logger.Error("POST /payments/callback - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/callback - Reconciled: outcome=%s, booking_ref=%s, resolved_by=%s",
		resp.Outcome, resp.BookingRef, resp.ResolvedBy)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// parsePayload flattens the callback body into a string map
func parsePayload(r *http.Request) (uc.CallbackPayload, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		payload := make(uc.CallbackPayload, len(raw))
		for k, v := range raw {
			if s, ok := v.(string); ok {
				payload[k] = s
			}
		}
		return payload, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	payload := make(uc.CallbackPayload, len(r.PostForm))
	for k, values := range r.PostForm {
		if len(values) > 0 {
			payload[k] = values[0]
		}
	}
	return payload, nil
}
