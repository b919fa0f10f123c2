package model

import "time"

// Address is the physical location of a property. Each address belongs to
// exactly one property and is created together with it.
type Address struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Street       string    `json:"street" gorm:"type:varchar(255);not null"`
	Number       string    `json:"number" gorm:"type:varchar(50);not null"`
	Neighborhood string    `json:"neighborhood" gorm:"type:varchar(100);not null"`
	City         string    `json:"city" gorm:"type:varchar(100);not null;index"`
	State        string    `json:"state" gorm:"type:varchar(100);not null"`
	Country      string    `json:"country" gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `json:"created_at"`
}
