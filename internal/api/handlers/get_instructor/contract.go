package get_instructor

import (
	"context"

	"github.com/m04kA/SMC-LessonBooking/internal/service/catalog/models"
)

type CatalogService interface {
	GetInstructorDetails(ctx context.Context, id string) (*models.InstructorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
