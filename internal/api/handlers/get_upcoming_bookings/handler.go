package get_upcoming_bookings

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-LessonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-LessonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-LessonBooking/internal/service/bookings/models"
)

const (
	msgMissingEmail = "email обязателен: передайте параметр email или заголовок X-User-Email"
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

// Handle GET /api/v1/bookings/upcoming
// Query params: email (optional); без него используется X-User-Email.
// Полный список без фильтра отдаёт только GET /bookings.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		email = middleware.GetIdentity(r.Context()).Email
	}
	if email == "" {
		h.logger.Warn("GET /bookings/upcoming - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result := h.service.GetUpcomingBookings(r.Context(), &models.GetUpcomingBookingsRequest{ContactEmail: email})

	h.logger.Info("GET /bookings/upcoming - Bookings retrieved successfully: email=%q, count=%d",
		email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
