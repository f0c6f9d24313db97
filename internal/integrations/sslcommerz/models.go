package sslcommerz

// SessionRequest data needed to open a gateway payment session
type SessionRequest struct {
	TransactionID string
	Amount        string
	Currency      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ProductName   string
	BookingRef    string
}

// SessionResponse gateway answer to a session request
type SessionResponse struct {
	Status         string `json:"status"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
	FailedReason   string `json:"failedreason"`
}

// ValidationResponse gateway answer from the validation API.
// Status VALID or VALIDATED means the money actually moved.
type ValidationResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"tran_id"`
	ValidationID  string `json:"val_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	BankTranID    string `json:"bank_tran_id"`
	CardType      string `json:"card_type"`
	TranDate      string `json:"tran_date"`
	RiskLevel     string `json:"risk_level"`
	RiskTitle     string `json:"risk_title"`
}

// Verified reports whether the gateway confirmed the transaction
func (v *ValidationResponse) Verified() bool {
	return v.Status == "VALID" || v.Status == "VALIDATED"
}
