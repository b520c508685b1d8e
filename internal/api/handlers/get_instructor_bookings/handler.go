package get_instructor_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LessonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-LessonBooking/internal/service/bookings"
)

const (
	msgInstructorNotFound = "инструктор не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID := mux.Vars(r)["instructorId"]

	result, err := h.service.GetInstructorBookings(r.Context(), instructorID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInstructorNotFound):
			h.logger.Warn("GET /instructors/{id}/bookings - Instructor not found: instructor_id=%s", instructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		default:
			h.logger.Error("GET /instructors/{id}/bookings - Failed to get bookings: instructor_id=%s, error=%v",
				instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instructors/{id}/bookings - Bookings retrieved successfully: instructor_id=%s, count=%d",
		instructorID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
