package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"reservation-service/internal/repository"
	"reservation-service/internal/service"
	"reservation-service/pkg/config"
	"reservation-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "handler_test"},
	})
	os.Exit(m.Run())
}

type stubReservationService struct {
	createFn func(service.CreateReservationInput) (*service.ReservationResponse, error)
	listFn   func(repository.ReservationFilters, int, int) ([]service.ReservationSummary, error)
	cancelFn func(uint) (*service.CancelResult, error)
}

func (s *stubReservationService) Create(input service.CreateReservationInput) (*service.ReservationResponse, error) {
	return s.createFn(input)
}

func (s *stubReservationService) List(filters repository.ReservationFilters, page, pageSize int) ([]service.ReservationSummary, error) {
	return s.listFn(filters, page, pageSize)
}

func (s *stubReservationService) Cancel(id uint) (*service.CancelResult, error) {
	return s.cancelFn(id)
}

func request(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, h(c))
	return rec
}

func TestCreateReservation_InvalidDateFormat(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	body := `{"property_id":1,"client_name":"Maria","client_email":"maria@example.com",` +
		`"start_date":"01/02/2030","end_date":"2030-02-05","guests_quantity":2}`
	rec := request(t, h.Create, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "start_date")
}

func TestCreateReservation_Success(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{
		createFn: func(input service.CreateReservationInput) (*service.ReservationResponse, error) {
			assert.Equal(t, uint(1), input.PropertyID)
			assert.Equal(t, "maria@example.com", input.ClientEmail)
			assert.Equal(t, 2, input.GuestsQuantity)
			return &service.ReservationResponse{
				ID:             7,
				StartDate:      "2030-02-01",
				EndDate:        "2030-02-05",
				GuestsQuantity: 2,
				Price:          decimal.RequireFromString("600.00"),
				Active:         true,
			}, nil
		},
	})

	body := `{"property_id":1,"client_name":"Maria","client_email":"maria@example.com",` +
		`"start_date":"2030-02-01","end_date":"2030-02-05","guests_quantity":2}`
	rec := request(t, h.Create, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.Contains(t, rec.Body.String(), `"price":"600`)
}

func TestCreateReservation_ConflictMapsTo409(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{
		createFn: func(service.CreateReservationInput) (*service.ReservationResponse, error) {
			return nil, service.ErrConflict
		},
	})

	body := `{"property_id":1,"client_name":"Maria","client_email":"maria@example.com",` +
		`"start_date":"2030-02-01","end_date":"2030-02-05","guests_quantity":2}`
	rec := request(t, h.Create, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelReservation_UnknownIDIsStillOK(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{
		cancelFn: func(id uint) (*service.CancelResult, error) {
			return &service.CancelResult{ID: id, Cancelled: false, Message: "reservation not found"}, nil
		},
	})

	rec := request(t, h.Cancel, http.MethodDelete, "/api/reservations/999", "", "id", "999")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancelled":false`)
	assert.Contains(t, rec.Body.String(), "reservation not found")
}

func TestCancelReservation_InvalidID(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	rec := request(t, h.Cancel, http.MethodDelete, "/api/reservations/abc", "", "id", "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListReservations_DefaultsToActiveOnly(t *testing.T) {
	var captured repository.ReservationFilters
	h := NewReservationHandler(&stubReservationService{
		listFn: func(filters repository.ReservationFilters, page, pageSize int) ([]service.ReservationSummary, error) {
			captured = filters
			return []service.ReservationSummary{}, nil
		},
	})

	rec := request(t, h.List, http.MethodGet, "/api/reservations?client_email=maria@example.com", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, captured.ActiveOnly)
	assert.Equal(t, "maria@example.com", captured.ClientEmail)
}

func TestListReservations_ActiveOnlyFalse(t *testing.T) {
	var captured repository.ReservationFilters
	h := NewReservationHandler(&stubReservationService{
		listFn: func(filters repository.ReservationFilters, page, pageSize int) ([]service.ReservationSummary, error) {
			captured = filters
			return []service.ReservationSummary{}, nil
		},
	})

	rec := request(t, h.List, http.MethodGet, "/api/reservations?active_only=false&property_id=3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, captured.ActiveOnly)
	assert.Equal(t, uint(3), captured.PropertyID)
}
