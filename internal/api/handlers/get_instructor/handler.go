package get_instructor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LessonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-LessonBooking/internal/service/catalog"
)

const (
	msgInstructorNotFound = "инструктор не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID := mux.Vars(r)["instructorId"]

	result, err := h.service.GetInstructorDetails(r.Context(), instructorID)
	if err != nil {
		if errors.Is(err, catalog.ErrInstructorNotFound) {
			h.logger.Warn("GET /instructors/{id} - Instructor not found: instructor_id=%s", instructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)
			return
		}
		h.logger.Error("GET /instructors/{id} - Failed to get instructor: instructor_id=%s, error=%v", instructorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /instructors/{id} - Instructor retrieved successfully: instructor_id=%s", instructorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
