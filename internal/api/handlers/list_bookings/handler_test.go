package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-LessonBooking/pkg/logger"
)

type stubService struct {
	resp *models.BookingListResponse
}

func (s *stubService) GetAll(context.Context) *models.BookingListResponse {
	return s.resp
}

func TestHandle(t *testing.T) {
	t.Run("bookings in creation order", func(t *testing.T) {
		svc := &stubService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "b1"}, {ID: "b2"}}}}

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var got models.BookingListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Bookings, 2)
		assert.Equal(t, "b1", got.Bookings[0].ID)
		assert.Equal(t, "b2", got.Bookings[1].ID)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := &stubService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
	})
}
