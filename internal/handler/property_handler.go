package handler

import (
	"net/http"
	"strconv"
	"time"

	"reservation-service/internal/repository"
	"reservation-service/internal/service"
	"reservation-service/pkg/logger"
	"reservation-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PropertyRequest defines the structure for property creation requests
type PropertyRequest struct {
	Title               string          `json:"title"`
	AddressStreet       string          `json:"address_street"`
	AddressNumber       string          `json:"address_number"`
	AddressNeighborhood string          `json:"address_neighborhood"`
	AddressCity         string          `json:"address_city"`
	AddressState        string          `json:"address_state"`
	Country             string          `json:"country"`
	Rooms               int             `json:"rooms"`
	Capacity            int             `json:"capacity"`
	PricePerNight       decimal.Decimal `json:"price_per_night"`
}

// PropertyHandler serves the property endpoints
type PropertyHandler struct {
	properties   service.PropertyService
	availability service.AvailabilityService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(properties service.PropertyService, availability service.AvailabilityService) *PropertyHandler {
	return &PropertyHandler{properties: properties, availability: availability}
}

// Create handles creating a new property with its address
func (h *PropertyHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Creating new property")

	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Country == "" {
		req.Country = "Brasil"
	}

	log.Info("Property creation request",
		zap.String("title", req.Title),
		zap.String("city", req.AddressCity),
		zap.Int("capacity", req.Capacity),
		zap.String("price_per_night", req.PricePerNight.String()))

	defer prometheus.TrackDBOperation("insert")(time.Now())
	property, err := h.properties.Create(service.CreatePropertyInput{
		Title:         req.Title,
		Street:        req.AddressStreet,
		Number:        req.AddressNumber,
		Neighborhood:  req.AddressNeighborhood,
		City:          req.AddressCity,
		State:         req.AddressState,
		Country:       req.Country,
		Rooms:         req.Rooms,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		log.Warn("Failed to create property", zap.Error(err))
		return errorResponse(c, log, err)
	}

	prometheus.RecordPropertyOperation("create")
	log.Info("Property created successfully",
		zap.Uint("property_id", property.ID),
		zap.String("title", property.Title))
	return c.JSON(http.StatusCreated, property)
}

// List handles retrieving properties with optional filtering and pagination
func (h *PropertyHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing properties with filters")

	filters := repository.PropertyFilters{
		City:         c.QueryParam("city"),
		State:        c.QueryParam("state"),
		Neighborhood: c.QueryParam("neighborhood"),
	}

	if raw := c.QueryParam("max_capacity"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			log.Warn("Invalid max_capacity parameter", zap.String("value", raw))
		} else {
			filters.MaxCapacity = value
		}
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil || !value.IsPositive() {
			log.Warn("Invalid max_price parameter", zap.String("value", raw))
		} else {
			filters.MaxPrice = value
		}
	}

	page, pageSize := pagination(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	properties, err := h.properties.List(filters, page, pageSize)
	if err != nil {
		log.Error("Failed to list properties", zap.Error(err))
		return errorResponse(c, log, err)
	}

	prometheus.RecordPropertyOperation("list")
	log.Info("Properties retrieved successfully", zap.Int("count", len(properties)))
	return c.JSON(http.StatusOK, properties)
}

// CheckAvailability handles the read-only availability check for a property
func (h *PropertyHandler) CheckAvailability(c echo.Context) error {
	log := logger.FromEcho(c)

	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}

	start, err := time.Parse(service.DateLayout, c.QueryParam("start_date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_date, expected YYYY-MM-DD"})
	}
	end, err := time.Parse(service.DateLayout, c.QueryParam("end_date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_date, expected YYYY-MM-DD"})
	}
	if !end.After(start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be after start_date"})
	}
	guests, err := strconv.Atoi(c.QueryParam("guests_quantity"))
	if err != nil || guests < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests_quantity must be a positive integer"})
	}

	log.Info("Checking property availability",
		zap.Uint64("property_id", propertyID),
		zap.String("start_date", c.QueryParam("start_date")),
		zap.String("end_date", c.QueryParam("end_date")),
		zap.Int("guests_quantity", guests))

	defer prometheus.TrackDBOperation("query")(time.Now())
	result, err := h.availability.Check(uint(propertyID), start, end, guests)
	if err != nil {
		log.Error("Availability check failed", zap.Error(err))
		return errorResponse(c, log, err)
	}

	prometheus.RecordAvailabilityCheck(result.Outcome)
	log.Info("Availability check completed",
		zap.Uint64("property_id", propertyID),
		zap.Bool("available", result.Available),
		zap.String("outcome", result.Outcome))
	return c.JSON(http.StatusOK, result)
}

// pagination reads the 1-indexed page and page_size query parameters,
// falling back to defaults on anything unparsable
func pagination(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	pageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
	return page, pageSize
}
