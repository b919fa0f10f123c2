package repository

import (
	"errors"
	"strings"

	"reservation-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationFilters holds the optional filters for reservation listings
type ReservationFilters struct {
	ClientEmail string
	PropertyID  uint
	ActiveOnly  bool
}

// ReservationRepository defines the persistence contract for reservations
type ReservationRepository interface {
	Create(reservation *model.Reservation) error
	GetByID(id uint) (*model.Reservation, error)
	GetWithDetails(id uint) (*model.Reservation, error)
	List(filters ReservationFilters, offset, limit int) ([]model.Reservation, error)
	Cancel(id uint) (bool, error)
	ExistsByID(id uint) (bool, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository backed by GORM
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// Create persists a reservation inside a transaction that re-checks date
// conflicts while holding a row lock on the property. Two racing requests
// for overlapping dates serialize on the lock, so the loser sees the
// winner's row and gets ErrDateConflict instead of double-booking.
func (r *reservationRepository) Create(reservation *model.Reservation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var property model.Property
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&property, reservation.PropertyID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		err = tx.Model(&model.Reservation{}).
			Where("property_id = ? AND active = ? AND start_date < ? AND end_date > ?",
				reservation.PropertyID, true, reservation.EndDate, reservation.StartDate).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDateConflict
		}

		return tx.Create(reservation).Error
	})
}

func (r *reservationRepository) GetByID(id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	err := r.db.First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// GetWithDetails loads the reservation with its property, the property's
// address and the client
func (r *reservationRepository) GetWithDetails(id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	err := r.db.
		Preload("Property").
		Preload("Property.Address").
		Preload("Client").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) List(filters ReservationFilters, offset, limit int) ([]model.Reservation, error) {
	query := r.db.Model(&model.Reservation{}).
		Preload("Property").
		Preload("Client")

	if filters.ClientEmail != "" {
		query = query.
			Joins("JOIN clients ON clients.id = reservations.client_id").
			Where("clients.email = ?", strings.ToLower(filters.ClientEmail))
	}
	if filters.PropertyID > 0 {
		query = query.Where("reservations.property_id = ?", filters.PropertyID)
	}
	if filters.ActiveOnly {
		query = query.Where("reservations.active = ?", true)
	}

	var reservations []model.Reservation
	err := query.Offset(offset).Limit(limit).Order("reservations.id").Find(&reservations).Error
	return reservations, err
}

// Cancel marks a reservation inactive. It reports whether a row was
// actually updated, so cancelling an unknown or already-cancelled id is a
// no-op rather than an error.
func (r *reservationRepository) Cancel(id uint) (bool, error) {
	result := r.db.Model(&model.Reservation{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *reservationRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Reservation{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
