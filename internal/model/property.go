package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property represents a rentable property listing. Capacity and nightly
// price are validated at creation and never mutated afterwards.
type Property struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	Title         string          `json:"title" gorm:"type:varchar(255);not null"`
	AddressID     uint            `json:"address_id" gorm:"not null"`
	Address       Address         `json:"address" gorm:"foreignKey:AddressID"`
	Rooms         int             `json:"rooms" gorm:"not null"`
	Capacity      int             `json:"capacity" gorm:"not null"`
	PricePerNight decimal.Decimal `json:"price_per_night" gorm:"type:numeric(10,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
