package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"reservation-service/internal/repository"
	"reservation-service/internal/service"
	"reservation-service/pkg/logger"
	"reservation-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ReservationRequest defines the structure for reservation creation requests
type ReservationRequest struct {
	PropertyID     uint   `json:"property_id"`
	ClientName     string `json:"client_name"`
	ClientEmail    string `json:"client_email"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	GuestsQuantity int    `json:"guests_quantity"`
}

// ReservationHandler serves the reservation endpoints
type ReservationHandler struct {
	reservations service.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// Create handles creating a new reservation through the validated workflow
func (h *ReservationHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Creating new reservation")

	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	start, err := time.Parse(service.DateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_date, expected YYYY-MM-DD"})
	}
	end, err := time.Parse(service.DateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_date, expected YYYY-MM-DD"})
	}

	log.Info("Reservation creation request",
		zap.Uint("property_id", req.PropertyID),
		zap.String("client_email", req.ClientEmail),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
		zap.Int("guests_quantity", req.GuestsQuantity))

	defer prometheus.TrackDBOperation("insert")(time.Now())
	reservation, err := h.reservations.Create(service.CreateReservationInput{
		PropertyID:     req.PropertyID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		StartDate:      start,
		EndDate:        end,
		GuestsQuantity: req.GuestsQuantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			prometheus.RecordBookingConflict()
		}
		log.Warn("Failed to create reservation",
			zap.Uint("property_id", req.PropertyID),
			zap.Error(err))
		return errorResponse(c, log, err)
	}

	prometheus.RecordReservationOperation("create")
	log.Info("Reservation created successfully",
		zap.Uint("reservation_id", reservation.ID),
		zap.Uint("property_id", reservation.Property.ID),
		zap.String("price", reservation.Price.String()))
	return c.JSON(http.StatusCreated, reservation)
}

// List handles retrieving reservations with optional filtering
func (h *ReservationHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing reservations with filters")

	filters := repository.ReservationFilters{
		ClientEmail: c.QueryParam("client_email"),
		ActiveOnly:  true,
	}
	if raw := c.QueryParam("active_only"); raw != "" {
		activeOnly, err := strconv.ParseBool(raw)
		if err != nil {
			log.Warn("Invalid active_only parameter", zap.String("value", raw))
		} else {
			filters.ActiveOnly = activeOnly
		}
	}
	if raw := c.QueryParam("property_id"); raw != "" {
		propertyID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			log.Warn("Invalid property_id parameter", zap.String("value", raw))
		} else {
			filters.PropertyID = uint(propertyID)
		}
	}

	page, pageSize := pagination(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	reservations, err := h.reservations.List(filters, page, pageSize)
	if err != nil {
		log.Error("Failed to list reservations", zap.Error(err))
		return errorResponse(c, log, err)
	}

	prometheus.RecordReservationOperation("list")
	log.Info("Reservations retrieved successfully", zap.Int("count", len(reservations)))
	return c.JSON(http.StatusOK, reservations)
}

// Cancel handles the soft-delete of a reservation. The response is always
// a structured result; cancelling an unknown id is not an HTTP error.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	log.Info("Cancelling reservation", zap.Uint64("reservation_id", id))

	defer prometheus.TrackDBOperation("update")(time.Now())
	result, err := h.reservations.Cancel(uint(id))
	if err != nil {
		log.Error("Failed to cancel reservation",
			zap.Uint64("reservation_id", id),
			zap.Error(err))
		return errorResponse(c, log, err)
	}

	prometheus.RecordReservationOperation("cancel")
	log.Info("Reservation cancel processed",
		zap.Uint64("reservation_id", id),
		zap.Bool("cancelled", result.Cancelled),
		zap.String("message", result.Message))
	return c.JSON(http.StatusOK, result)
}
