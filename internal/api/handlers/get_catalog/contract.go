package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-LessonBooking/internal/service/catalog/models"
)

type CatalogService interface {
	GetCatalog(ctx context.Context) *models.CatalogResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
