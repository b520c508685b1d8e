package api

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LessonBooking/internal/api/middleware"
)

// Routes обработчики всех endpoint'ов /api/v1
type Routes struct {
	GetCatalog            http.HandlerFunc
	GetInstructor         http.HandlerFunc
	GetAvailableSlots     http.HandlerFunc
	GetMonthCalendar      http.HandlerFunc
	GetInstructorBookings http.HandlerFunc
	ListBookings          http.HandlerFunc
	GetUpcomingBookings   http.HandlerFunc
	GetBooking            http.HandlerFunc
	CreateBooking         http.HandlerFunc
	CancelBooking         http.HandlerFunc
}

// RouterOptions Metrics == nil отключает метрики; RequestsPerMinute <= 0 отключает ограничение частоты
type RouterOptions struct {
	Metrics           middleware.HTTPMetrics
	MetricsPath       string
	MetricsHandler    http.Handler
	RequestsPerMinute int
}

// NewRouter собирает таблицу маршрутов сервиса
func NewRouter(routes Routes, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		if opts.MetricsHandler != nil {
			r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
		}
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.IdentityMiddleware)

	// ============================================================
	// READ ROUTES
	// ============================================================

	// Справочник
	api.HandleFunc("/catalog", routes.GetCatalog).Methods(http.MethodGet)
	api.HandleFunc("/instructors/{instructorId}", routes.GetInstructor).Methods(http.MethodGet)

	// Доступность инструктора
	api.HandleFunc("/instructors/{instructorId}/available-slots", routes.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/instructors/{instructorId}/calendar", routes.GetMonthCalendar).Methods(http.MethodGet)
	api.HandleFunc("/instructors/{instructorId}/bookings", routes.GetInstructorBookings).Methods(http.MethodGet)

	// Бронирования; /bookings/upcoming регистрируется раньше /bookings/{bookingId}
	api.HandleFunc("/bookings", routes.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/upcoming", routes.GetUpcomingBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", routes.GetBooking).Methods(http.MethodGet)

	// ============================================================
	// MUTATING ROUTES (ограничение частоты по IP)
	// ============================================================

	// Пути пересекаются с GET маршрутами выше: mux сбрасывает ErrMethodMismatch,
	// когда метод совпадает у маршрута из этого подроутера
	mutating := api.PathPrefix("").Subrouter()
	if opts.RequestsPerMinute > 0 {
		mutating.Use(httprate.LimitByIP(opts.RequestsPerMinute, time.Minute))
	}

	// Создание бронирования
	mutating.HandleFunc("/bookings", routes.CreateBooking).Methods(http.MethodPost)

	// Отмена бронирования
	mutating.HandleFunc("/bookings/{bookingId}/cancel", routes.CancelBooking).Methods(http.MethodPatch)

	return r
}
