package snapshot

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// record формат элемента сохранённого массива "userBookings"
type record struct {
	BookingID   string  `json:"bookingId"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	ProID       string  `json:"proId"`
	HotelID     string  `json:"hotelId"`
	CourseID    string  `json:"courseId"`
	SessionName string  `json:"sessionName"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration,omitempty"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Notes       string  `json:"notes"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// Encode сериализует бронирования в JSON массив, сохраняя порядок
func Encode(bookings []domain.Booking) ([]byte, error) {
	records := make([]record, 0, len(bookings))
	for _, b := range bookings {
		r := record{
			BookingID:   b.ID,
			Date:        b.Date.Format(domain.DateFormat),
			Time:        b.StartTime.String(),
			ProID:       b.InstructorID,
			HotelID:     b.VenueID,
			CourseID:    b.CourseID,
			SessionName: b.SessionName,
			Price:       b.Price,
			Duration:    b.DurationMinutes,
			Name:        b.Contact.Name,
			Email:       b.Contact.Email,
			Phone:       b.Contact.Phone,
			Notes:       b.Contact.Notes,
		}
		if !b.CreatedAt.IsZero() {
			r.CreatedAt = b.CreatedAt.Format(time.RFC3339Nano)
		}
		records = append(records, r)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// Decode разбирает JSON массив; даты интерпретируются в loc.
// Пустой payload означает пустой список.
func Decode(data []byte, loc *time.Location) ([]domain.Booking, error) {
	if len(data) == 0 {
		return []domain.Booking{}, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	bookings := make([]domain.Booking, 0, len(records))
	for i, r := range records {
		date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%s): bad date %q", ErrCorruptSnapshot, i, r.BookingID, r.Date)
		}
		startTime, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%s): bad time %q", ErrCorruptSnapshot, i, r.BookingID, r.Time)
		}

		b := domain.Booking{
			ID:              r.BookingID,
			Date:            date,
			StartTime:       startTime,
			InstructorID:    r.ProID,
			VenueID:         r.HotelID,
			CourseID:        r.CourseID,
			SessionName:     r.SessionName,
			Price:           r.Price,
			DurationMinutes: r.Duration,
			Contact: domain.Contact{
				Name:  r.Name,
				Email: r.Email,
				Phone: r.Phone,
				Notes: r.Notes,
			},
		}
		if r.CreatedAt != "" {
			if created, err := time.Parse(time.RFC3339Nano, r.CreatedAt); err == nil {
				b.CreatedAt = created.In(loc)
			}
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
