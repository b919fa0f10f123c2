package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is a date-range booking of a property. Dates are stored as
// whole days with an end-exclusive range: the checkout day is free for a
// new checkin. Reservations are never hard-deleted; cancellation flips
// Active to false.
type Reservation struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	PropertyID     uint            `json:"property_id" gorm:"not null;index"`
	Property       Property        `json:"property" gorm:"foreignKey:PropertyID"`
	ClientID       uint            `json:"client_id" gorm:"not null;index"`
	Client         Client          `json:"client" gorm:"foreignKey:ClientID"`
	StartDate      time.Time       `json:"start_date" gorm:"type:date;not null"`
	EndDate        time.Time       `json:"end_date" gorm:"type:date;not null"`
	GuestsQuantity int             `json:"guests_quantity" gorm:"not null"`
	Price          decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Active         bool            `json:"active" gorm:"default:true;index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
