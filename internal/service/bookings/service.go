package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LessonBooking/internal/service/bookings/models"
	catalogService "github.com/m04kA/SMC-LessonBooking/internal/service/catalog"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo  BookingRepository
	catalog      CatalogService
	policy       CancellationPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog CatalogService,
	policy CancellationPolicy,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		policy:       policy,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	return models.FromDomainBooking(booking, s.policy.CanCancel(booking, now)), nil
}

// GetAll возвращает все живые бронирования в порядке создания
func (s *Service) GetAll(ctx context.Context) *models.BookingListResponse {
	bookings := s.bookingRepo.ListAll(ctx)
	s.logger.Info("GetAll: fetched %d bookings", len(bookings))
	return s.toList(bookings)
}

// GetInstructorBookings возвращает бронирования инструктора в порядке создания
func (s *Service) GetInstructorBookings(ctx context.Context, instructorID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetInstructorBookings: fetching bookings for instructor=%s", instructorID)

	if _, err := s.catalog.GetInstructor(ctx, instructorID); err != nil {
		if errors.Is(err, catalogService.ErrInstructorNotFound) {
			s.logger.Warn("GetInstructorBookings: instructor id=%s not found", instructorID)
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("GetInstructorBookings: failed to get instructor id=%s: %v", instructorID, err)
		return nil, fmt.Errorf("%w: GetInstructorBookings - catalog error: %v", ErrInternal, err)
	}

	bookings := s.bookingRepo.ListByInstructor(ctx, instructorID)
	s.logger.Info("GetInstructorBookings: fetched %d bookings for instructor=%s", len(bookings), instructorID)
	return s.toList(bookings), nil
}

// GetUpcomingBookings возвращает будущие бронирования по времени начала.
// Если указан email, остаются только бронирования с этим контактом.
func (s *Service) GetUpcomingBookings(ctx context.Context, req *models.GetUpcomingBookingsRequest) *models.BookingListResponse {
	now := s.timeProvider.Now()
	upcoming := s.bookingRepo.ListUpcoming(ctx, now)

	email := strings.TrimSpace(req.ContactEmail)
	if email != "" {
		filtered := make([]domain.Booking, 0, len(upcoming))
		for _, b := range upcoming {
			if strings.EqualFold(b.Contact.Email, email) {
				filtered = append(filtered, b)
			}
		}
		upcoming = filtered
	}

	s.logger.Info("GetUpcomingBookings: fetched %d bookings, email=%q", len(upcoming), email)
	return s.toList(upcoming)
}

func (s *Service) toList(bookings []domain.Booking) *models.BookingListResponse {
	now := s.timeProvider.Now()
	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, s.policy.CanCancel(b, now)))
	}
	return resp
}
