package check_availability

import "time"

// Request availability query for one room and date range
type Request struct {
	HotelID      int64
	RoomID       int64
	CheckInDate  time.Time // date only
	CheckOutDate time.Time // date only
}

// Response availability verdict with an estimated price breakdown.
// The quote fields are only set when the room is available.
type Response struct {
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Available    bool   `json:"available"`

	Nights      int    `json:"nights,omitempty"`
	NightlyRate string `json:"nightlyRate,omitempty"`
	Subtotal    string `json:"subtotal,omitempty"`
	TaxAmount   string `json:"taxAmount,omitempty"`
	TotalPrice  string `json:"totalPrice,omitempty"`
}
