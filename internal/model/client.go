package model

import "time"

// Client is a guest identified by a unique, lower-cased email address.
// Repeated reservation attempts with the same email reuse the same record.
type Client struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time `json:"created_at"`
}
