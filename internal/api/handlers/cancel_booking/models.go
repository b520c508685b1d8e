package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	cancelBooking "github.com/m04kA/SMC-LessonBooking/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID           string `json:"bookingId"`
	InstructorID string `json:"proId"`
	Date         string `json:"date"`
	StartTime    string `json:"time"`
	SessionName  string `json:"sessionName"`
	CancelledAt  string `json:"cancelledAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:           resp.ID,
		InstructorID: resp.InstructorID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		SessionName:  resp.SessionName,
		CancelledAt:  resp.CancelledAt.Format(time.RFC3339),
	}
}
