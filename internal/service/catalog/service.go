package catalog

import (
	"context"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/internal/service/catalog/models"
)

// Service доступ к справочнику. Справочник неизменяем после загрузки,
// поэтому чтения не требуют блокировок.
type Service struct {
	catalog     *domain.Catalog
	instructors map[string]*domain.Instructor
	venues      map[string]*domain.Venue
	courses     map[string]*domain.Course
	logger      Logger
}

// NewService индексирует загруженный справочник
func NewService(catalog *domain.Catalog, logger Logger) *Service {
	s := &Service{
		catalog:     catalog,
		instructors: make(map[string]*domain.Instructor, len(catalog.Instructors)),
		venues:      make(map[string]*domain.Venue, len(catalog.Venues)),
		courses:     make(map[string]*domain.Course, len(catalog.Courses)),
		logger:      logger,
	}
	for i := range catalog.Instructors {
		s.instructors[catalog.Instructors[i].ID] = &catalog.Instructors[i]
	}
	for i := range catalog.Venues {
		s.venues[catalog.Venues[i].ID] = &catalog.Venues[i]
	}
	for i := range catalog.Courses {
		s.courses[catalog.Courses[i].ID] = &catalog.Courses[i]
	}
	return s
}

// GetInstructor возвращает инструктора по ID
func (s *Service) GetInstructor(_ context.Context, id string) (*domain.Instructor, error) {
	inst, ok := s.instructors[id]
	if !ok {
		return nil, ErrInstructorNotFound
	}
	return inst, nil
}

func (s *Service) GetVenue(_ context.Context, id string) (*domain.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return v, nil
}

func (s *Service) GetCourse(_ context.Context, id string) (*domain.Course, error) {
	c, ok := s.courses[id]
	if !ok {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

// GetCatalog полный справочник для клиента
func (s *Service) GetCatalog(_ context.Context) *models.CatalogResponse {
	s.logger.Info("GetCatalog: %d venues, %d courses, %d instructors",
		len(s.catalog.Venues), len(s.catalog.Courses), len(s.catalog.Instructors))
	return models.FromDomainCatalog(s.catalog)
}

// GetInstructorDetails инструктор с расписанием и типами занятий
func (s *Service) GetInstructorDetails(ctx context.Context, id string) (*models.InstructorResponse, error) {
	inst, err := s.GetInstructor(ctx, id)
	if err != nil {
		s.logger.Warn("GetInstructorDetails: instructor id=%s not found", id)
		return nil, err
	}
	return models.FromDomainInstructor(inst), nil
}
