package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-LessonBooking/internal/api/handlers"
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

// Handle GET /api/v1/catalog
// Публичный endpoint - отели, поля и инструкторы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.GetCatalog(r.Context())

	h.logger.Info("GET /catalog - Catalog retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
