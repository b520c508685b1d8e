package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-LessonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-LessonBooking/pkg/logger"
)

type stubService struct {
	gotID string
	resp  *models.BookingResponse
	err   error
}

func (s *stubService) GetByID(_ context.Context, id string) (*models.BookingResponse, error) {
	s.gotID = id
	return s.resp, s.err
}

func serve(svc *stubService, bookingID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Found(t *testing.T) {
	svc := &stubService{resp: &models.BookingResponse{ID: "b1", Date: "2025-07-20", StartTime: "10:00", CanCancel: true}}

	rec := serve(svc, "b1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b1", svc.gotID)

	var got models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "b1", got.ID)
	assert.True(t, got.CanCancel)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty id", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"unexpected", bookings.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, "b1")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
