package reconcile_payment

// Outcome is the reconciliation verdict for one callback
type Outcome string

const (
	// OutcomeConfirmed the payment was verified and the booking confirmed
	OutcomeConfirmed Outcome = "confirmed"

	// OutcomeFailed the payment failed or could not be verified
	OutcomeFailed Outcome = "failed"

	// OutcomeUnresolved no payment could be matched to the callback;
	// nothing was mutated
	OutcomeUnresolved Outcome = "unresolved"

	// OutcomeAlreadyProcessed the matched payment was already in a
	// terminal state; the callback is a duplicate
	OutcomeAlreadyProcessed Outcome = "already_processed"
)

// Request one gateway callback to reconcile
type Request struct {
	Payload CallbackPayload
}

// Response reconciliation result
type Response struct {
	Outcome       Outcome `json:"outcome"`
	BookingID     int64   `json:"bookingId,omitempty"`
	BookingRef    string  `json:"bookingRef,omitempty"`
	TransactionID string  `json:"transactionId,omitempty"`
	ResolvedBy    string  `json:"resolvedBy,omitempty"`
}
