package repository

import (
	"errors"
	"strings"
	"time"

	"reservation-service/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PropertyFilters holds the optional filters for property listings.
// Zero values mean "not set".
type PropertyFilters struct {
	City         string
	State        string
	Neighborhood string
	MaxCapacity  int
	MaxPrice     decimal.Decimal
}

// PropertyRepository defines the persistence contract for properties
type PropertyRepository interface {
	CreateWithAddress(property *model.Property, address *model.Address) error
	GetByID(id uint) (*model.Property, error)
	GetWithAddress(id uint) (*model.Property, error)
	List(filters PropertyFilters, offset, limit int) ([]model.Property, error)
	ExistsByID(id uint) (bool, error)
	FindConflicts(propertyID uint, start, end time.Time) ([]model.Reservation, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository backed by GORM
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// CreateWithAddress inserts the address and the property in one transaction
// so the pair is atomic
func (r *propertyRepository) CreateWithAddress(property *model.Property, address *model.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(address).Error; err != nil {
			return err
		}
		property.AddressID = address.ID
		return tx.Create(property).Error
	})
}

func (r *propertyRepository) GetByID(id uint) (*model.Property, error) {
	var property model.Property
	err := r.db.First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) GetWithAddress(id uint) (*model.Property, error) {
	var property model.Property
	err := r.db.Preload("Address").First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// List returns properties joined with their addresses, applying the
// case-insensitive substring filters and pagination
func (r *propertyRepository) List(filters PropertyFilters, offset, limit int) ([]model.Property, error) {
	query := r.db.Model(&model.Property{}).
		Joins("JOIN addresses ON addresses.id = properties.address_id").
		Preload("Address")

	if filters.City != "" {
		query = query.Where("LOWER(addresses.city) LIKE ?", "%"+strings.ToLower(filters.City)+"%")
	}
	if filters.State != "" {
		query = query.Where("LOWER(addresses.state) LIKE ?", "%"+strings.ToLower(filters.State)+"%")
	}
	if filters.Neighborhood != "" {
		query = query.Where("LOWER(addresses.neighborhood) LIKE ?", "%"+strings.ToLower(filters.Neighborhood)+"%")
	}
	if filters.MaxCapacity > 0 {
		query = query.Where("properties.capacity <= ?", filters.MaxCapacity)
	}
	if filters.MaxPrice.IsPositive() {
		query = query.Where("properties.price_per_night <= ?", filters.MaxPrice)
	}

	var properties []model.Property
	err := query.Offset(offset).Limit(limit).Find(&properties).Error
	return properties, err
}

func (r *propertyRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Property{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindConflicts returns the active reservations of the property whose
// end-exclusive date ranges overlap [start, end)
func (r *propertyRepository) FindConflicts(propertyID uint, start, end time.Time) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := r.db.
		Where("property_id = ? AND active = ? AND start_date < ? AND end_date > ?",
			propertyID, true, end, start).
		Order("start_date").
		Find(&reservations).Error
	return reservations, err
}
