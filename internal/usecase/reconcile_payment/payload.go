package reconcile_payment

import "strings"

// CallbackPayload is the flattened form/query payload of a gateway
// callback. Gateways are inconsistent about field naming across API
// versions, so every lookup goes through an ordered alias list.
type CallbackPayload map[string]string

var (
	sessionKeyAliases = []string{"sessionkey", "session_key"}
	tranIDAliases     = []string{"tran_id", "transaction_id"}
	orderNumAliases   = []string{"order_num", "order_id", "tran_order"}
	valIDAliases      = []string{"val_id", "validation_id"}
)

// FirstPresent returns the first non-empty value among the aliases,
// in order. Values are trimmed of surrounding whitespace.
func (p CallbackPayload) FirstPresent(aliases ...string) (string, bool) {
	for _, key := range aliases {
		if v, ok := p[key]; ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed, true
			}
		}
	}
	return "", false
}

// SessionKey returns the gateway session key, if present
func (p CallbackPayload) SessionKey() (string, bool) {
	return p.FirstPresent(sessionKeyAliases...)
}

// TransactionID returns the merchant transaction id, if present
func (p CallbackPayload) TransactionID() (string, bool) {
	return p.FirstPresent(tranIDAliases...)
}

// OrderNum returns the order number (our booking reference), if present
func (p CallbackPayload) OrderNum() (string, bool) {
	return p.FirstPresent(orderNumAliases...)
}

// ValidationID returns the gateway validation id, if present
func (p CallbackPayload) ValidationID() (string, bool) {
	return p.FirstPresent(valIDAliases...)
}

// Succeeded reports whether the callback claims the payment went
// through. The claim is never trusted on its own; verified payments
// still go through the gateway validation API.
func (p CallbackPayload) Succeeded() bool {
	status, ok := p.FirstPresent("status")
	if !ok {
		return false
	}
	switch strings.ToLower(status) {
	case "valid", "validated", "success", "true":
		return true
	default:
		return false
	}
}
