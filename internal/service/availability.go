package service

import (
	"errors"
	"fmt"
	"time"

	"reservation-service/internal/repository"
)

// Availability check outcomes, used for metrics and error classification
const (
	OutcomeAvailable        = "available"
	OutcomePropertyNotFound = "property_not_found"
	OutcomeDateConflict     = "date_conflict"
	OutcomeCapacityExceeded = "capacity_exceeded"
)

// ConflictSummary identifies a reservation blocking the requested range
type ConflictSummary struct {
	ID        uint   `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// AvailabilityResult is the verdict of an availability check
type AvailabilityResult struct {
	PropertyID              uint              `json:"property_id"`
	Available               bool              `json:"available"`
	Message                 string            `json:"message"`
	ConflictingReservations []ConflictSummary `json:"conflicting_reservations,omitempty"`
	Outcome                 string            `json:"-"`
}

// AvailabilityService decides whether a property can take a reservation
// for a date range and guest count. The same verdict backs the read-only
// availability endpoint and the reservation creation workflow.
type AvailabilityService interface {
	Check(propertyID uint, start, end time.Time, guests int) (*AvailabilityResult, error)
}

type availabilityService struct {
	properties repository.PropertyRepository
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(properties repository.PropertyRepository) AvailabilityService {
	return &availabilityService{properties: properties}
}

// Check runs the checks in order, short-circuiting on the first failure:
// property existence, date conflicts, capacity. Date conflicts come before
// capacity because they are the more common rejection reason.
func (s *availabilityService) Check(propertyID uint, start, end time.Time, guests int) (*AvailabilityResult, error) {
	property, err := s.properties.GetByID(propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &AvailabilityResult{
				PropertyID: propertyID,
				Available:  false,
				Message:    "property not found",
				Outcome:    OutcomePropertyNotFound,
			}, nil
		}
		return nil, err
	}

	conflicts, err := s.properties.FindConflicts(propertyID, Day(start), Day(end))
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		summaries := make([]ConflictSummary, 0, len(conflicts))
		for _, res := range conflicts {
			summaries = append(summaries, ConflictSummary{
				ID:        res.ID,
				StartDate: res.StartDate.Format(DateLayout),
				EndDate:   res.EndDate.Format(DateLayout),
			})
		}
		return &AvailabilityResult{
			PropertyID:              propertyID,
			Available:               false,
			Message:                 "not available for requested dates",
			ConflictingReservations: summaries,
			Outcome:                 OutcomeDateConflict,
		}, nil
	}

	if guests > property.Capacity {
		return &AvailabilityResult{
			PropertyID: propertyID,
			Available:  false,
			Message:    fmt.Sprintf("capacity exceeded: max %d guests", property.Capacity),
			Outcome:    OutcomeCapacityExceeded,
		}, nil
	}

	return &AvailabilityResult{
		PropertyID: propertyID,
		Available:  true,
		Message:    "available for requested dates",
		Outcome:    OutcomeAvailable,
	}, nil
}
