package cancel_booking

import "github.com/sumonben/hotelmanagement/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest converts the HTTP request to the service model
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &models.CancelBookingRequest{
		UserID: userID,
		Reason: reason,
	}
}
