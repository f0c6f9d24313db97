package initiate_payment

// Request checkout session request for a pending booking
type Request struct {
	BookingID int64
	UserID    int64
}

// Response checkout session handed back to the client. The client
// redirects the customer to GatewayPageURL to complete payment.
type Response struct {
	PaymentID      int64  `json:"paymentId"`
	BookingRef     string `json:"bookingRef"`
	TransactionID  string `json:"transactionId"`
	SessionKey     string `json:"sessionKey"`
	GatewayPageURL string `json:"gatewayPageUrl"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
}
