package service

import (
	"errors"
	"regexp"
	"time"

	"reservation-service/internal/model"
	"reservation-service/internal/repository"

	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateReservationInput holds the requested reservation fields
type CreateReservationInput struct {
	PropertyID     uint
	ClientName     string
	ClientEmail    string
	StartDate      time.Time
	EndDate        time.Time
	GuestsQuantity int
}

// PropertySummary is the property excerpt embedded in reservation responses
type PropertySummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	City  string `json:"city"`
	State string `json:"state"`
}

// ClientSummary is the client excerpt embedded in reservation responses
type ClientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReservationResponse is the hydrated reservation returned by creation
type ReservationResponse struct {
	ID             uint            `json:"id"`
	Property       PropertySummary `json:"property"`
	Client         ClientSummary   `json:"client"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	GuestsQuantity int             `json:"guests_quantity"`
	Price          decimal.Decimal `json:"price"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ReservationSummary is the flattened row shape used by listings
type ReservationSummary struct {
	ID             uint            `json:"id"`
	PropertyTitle  string          `json:"property_title"`
	ClientName     string          `json:"client_name"`
	ClientEmail    string          `json:"client_email"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	GuestsQuantity int             `json:"guests_quantity"`
	Price          decimal.Decimal `json:"price"`
	Active         bool            `json:"active"`
}

// CancelResult reports the outcome of a cancellation attempt. Cancelling
// an unknown or already-cancelled reservation is a structured result, not
// an error.
type CancelResult struct {
	ID        uint   `json:"id"`
	Cancelled bool   `json:"cancelled"`
	Message   string `json:"message"`
}

// ReservationService manages the reservation lifecycle
type ReservationService interface {
	Create(input CreateReservationInput) (*ReservationResponse, error)
	List(filters repository.ReservationFilters, page, pageSize int) ([]ReservationSummary, error)
	Cancel(id uint) (*CancelResult, error)
}

type reservationService struct {
	reservations repository.ReservationRepository
	properties   repository.PropertyRepository
	clients      repository.ClientRepository
	availability AvailabilityService
}

// NewReservationService creates a new reservation service
func NewReservationService(
	reservations repository.ReservationRepository,
	properties repository.PropertyRepository,
	clients repository.ClientRepository,
	availability AvailabilityService,
) ReservationService {
	return &reservationService{
		reservations: reservations,
		properties:   properties,
		clients:      clients,
		availability: availability,
	}
}

// Create runs the reservation workflow: input validation, availability
// check, client resolution, price computation, persistence, hydration.
// The repository re-checks conflicts inside its transaction, so a racing
// request that passed the availability check here still loses cleanly.
func (s *reservationService) Create(input CreateReservationInput) (*ReservationResponse, error) {
	if input.PropertyID == 0 {
		return nil, validationError("property id is required")
	}
	if input.ClientName == "" {
		return nil, validationError("client name is required")
	}
	if !emailPattern.MatchString(input.ClientEmail) {
		return nil, validationError("client email is invalid")
	}
	if input.GuestsQuantity <= 0 {
		return nil, validationError("guests quantity must be greater than zero")
	}

	start := Day(input.StartDate)
	end := Day(input.EndDate)
	if !end.After(start) {
		return nil, validationError("end date must be after start date")
	}
	if start.Before(Today()) {
		return nil, validationError("start date cannot be in the past")
	}

	verdict, err := s.availability.Check(input.PropertyID, start, end, input.GuestsQuantity)
	if err != nil {
		return nil, err
	}
	if !verdict.Available {
		if verdict.Outcome == OutcomePropertyNotFound {
			return nil, notFoundError(verdict.Message)
		}
		return nil, conflictError(verdict.Message)
	}

	client, err := s.clients.GetOrCreateByEmail(input.ClientName, input.ClientEmail)
	if err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(input.PropertyID)
	if err != nil {
		return nil, err
	}

	nights := Nights(start, end)
	price := TotalPrice(property.PricePerNight, nights)

	reservation := model.Reservation{
		PropertyID:     input.PropertyID,
		ClientID:       client.ID,
		StartDate:      start,
		EndDate:        end,
		GuestsQuantity: input.GuestsQuantity,
		Price:          price,
		Active:         true,
	}
	if err := s.reservations.Create(&reservation); err != nil {
		if errors.Is(err, repository.ErrDateConflict) {
			return nil, conflictError("not available for requested dates")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("property not found")
		}
		return nil, err
	}

	details, err := s.reservations.GetWithDetails(reservation.ID)
	if err != nil {
		return nil, err
	}

	return &ReservationResponse{
		ID: details.ID,
		Property: PropertySummary{
			ID:    details.Property.ID,
			Title: details.Property.Title,
			City:  details.Property.Address.City,
			State: details.Property.Address.State,
		},
		Client: ClientSummary{
			ID:    details.Client.ID,
			Name:  details.Client.Name,
			Email: details.Client.Email,
		},
		StartDate:      details.StartDate.Format(DateLayout),
		EndDate:        details.EndDate.Format(DateLayout),
		GuestsQuantity: details.GuestsQuantity,
		Price:          details.Price,
		Active:         details.Active,
		CreatedAt:      details.CreatedAt,
		UpdatedAt:      details.UpdatedAt,
	}, nil
}

// List returns a page of flattened reservation summaries
func (s *reservationService) List(filters repository.ReservationFilters, page, pageSize int) ([]ReservationSummary, error) {
	offset, limit := paginate(page, pageSize)

	reservations, err := s.reservations.List(filters, offset, limit)
	if err != nil {
		return nil, err
	}

	result := make([]ReservationSummary, 0, len(reservations))
	for i := range reservations {
		res := &reservations[i]
		result = append(result, ReservationSummary{
			ID:             res.ID,
			PropertyTitle:  res.Property.Title,
			ClientName:     res.Client.Name,
			ClientEmail:    res.Client.Email,
			StartDate:      res.StartDate.Format(DateLayout),
			EndDate:        res.EndDate.Format(DateLayout),
			GuestsQuantity: res.GuestsQuantity,
			Price:          res.Price,
			Active:         res.Active,
		})
	}
	return result, nil
}

// Cancel marks a reservation inactive. The result always carries the id,
// a cancelled flag and a message so callers can branch without handling
// errors for the expected miss cases.
func (s *reservationService) Cancel(id uint) (*CancelResult, error) {
	reservation, err := s.reservations.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &CancelResult{ID: id, Cancelled: false, Message: "reservation not found"}, nil
		}
		return nil, err
	}

	if !reservation.Active {
		return &CancelResult{ID: id, Cancelled: false, Message: "reservation already cancelled"}, nil
	}

	cancelled, err := s.reservations.Cancel(id)
	if err != nil {
		return nil, err
	}
	if !cancelled {
		// Lost a race with another cancel between the read and the update
		return &CancelResult{ID: id, Cancelled: false, Message: "reservation already cancelled"}, nil
	}
	return &CancelResult{ID: id, Cancelled: true, Message: "reservation cancelled successfully"}, nil
}
