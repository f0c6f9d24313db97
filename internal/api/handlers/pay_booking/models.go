package pay_booking

import "github.com/sumonben/hotelmanagement/internal/service/bookings/models"

// PayBookingRequest HTTP request model
type PayBookingRequest struct {
	Method string  `json:"method"`
	Notes  *string `json:"notes,omitempty"`
}

// ToServiceRequest converts the HTTP request to the service model
func (r *PayBookingRequest) ToServiceRequest(userID int64) *models.PayBookingRequest {
	notes := ""
	if r.Notes != nil {
		notes = *r.Notes
	}

	return &models.PayBookingRequest{
		UserID: userID,
		Method: r.Method,
		Notes:  notes,
	}
}
