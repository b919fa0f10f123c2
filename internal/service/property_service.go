package service

import (
	"time"

	"reservation-service/internal/model"
	"reservation-service/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CreatePropertyInput holds the validated-to-be fields for a new property
// and its address
type CreatePropertyInput struct {
	Title         string
	Street        string
	Number        string
	Neighborhood  string
	City          string
	State         string
	Country       string
	Rooms         int
	Capacity      int
	PricePerNight decimal.Decimal
}

// PropertyResponse is the hydrated property representation returned by
// creation and listing
type PropertyResponse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Address       model.Address   `json:"address"`
	Rooms         int             `json:"rooms"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PropertyService manages property listings
type PropertyService interface {
	Create(input CreatePropertyInput) (*PropertyResponse, error)
	List(filters repository.PropertyFilters, page, pageSize int) ([]PropertyResponse, error)
}

type propertyService struct {
	properties repository.PropertyRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(properties repository.PropertyRepository) PropertyService {
	return &propertyService{properties: properties}
}

// Create validates the business constraints and persists the property with
// its address as an atomic pair
func (s *propertyService) Create(input CreatePropertyInput) (*PropertyResponse, error) {
	if input.Title == "" {
		return nil, validationError("title is required")
	}
	if input.Street == "" || input.Number == "" || input.Neighborhood == "" ||
		input.City == "" || input.State == "" || input.Country == "" {
		return nil, validationError("all address fields are required")
	}
	if input.Rooms <= 0 {
		return nil, validationError("rooms must be greater than zero")
	}
	if input.Capacity <= 0 {
		return nil, validationError("capacity must be greater than zero")
	}
	if !input.PricePerNight.IsPositive() {
		return nil, validationError("price per night must be greater than zero")
	}
	if input.PricePerNight.Exponent() < -2 {
		return nil, validationError("price per night must have at most 2 decimal places")
	}

	address := model.Address{
		Street:       input.Street,
		Number:       input.Number,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
	}
	property := model.Property{
		Title:         input.Title,
		Rooms:         input.Rooms,
		Capacity:      input.Capacity,
		PricePerNight: input.PricePerNight,
	}

	if err := s.properties.CreateWithAddress(&property, &address); err != nil {
		return nil, err
	}

	created, err := s.properties.GetWithAddress(property.ID)
	if err != nil {
		return nil, err
	}
	response := toPropertyResponse(created)
	return &response, nil
}

// List returns a page of properties with their addresses. Pages are
// 1-indexed; the page size defaults to 20 and is capped at 100.
func (s *propertyService) List(filters repository.PropertyFilters, page, pageSize int) ([]PropertyResponse, error) {
	offset, limit := paginate(page, pageSize)

	properties, err := s.properties.List(filters, offset, limit)
	if err != nil {
		return nil, err
	}

	result := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		result = append(result, toPropertyResponse(&properties[i]))
	}
	return result, nil
}

func toPropertyResponse(property *model.Property) PropertyResponse {
	return PropertyResponse{
		ID:            property.ID,
		Title:         property.Title,
		Address:       property.Address,
		Rooms:         property.Rooms,
		Capacity:      property.Capacity,
		PricePerNight: property.PricePerNight,
		CreatedAt:     property.CreatedAt,
		UpdatedAt:     property.UpdatedAt,
	}
}

func paginate(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return (page - 1) * pageSize, pageSize
}
