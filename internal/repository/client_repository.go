package repository

import (
	"errors"
	"strings"

	"reservation-service/internal/model"

	"gorm.io/gorm"
)

// ClientRepository defines the persistence contract for clients
type ClientRepository interface {
	GetOrCreateByEmail(name, email string) (*model.Client, error)
	GetByID(id uint) (*model.Client, error)
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository backed by GORM
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// GetOrCreateByEmail looks up a client by normalized email and creates one
// when missing. An existing record is returned unchanged, so the first
// name ever written for an email wins. The unique index on email keeps
// concurrent callers from creating duplicates.
func (r *clientRepository) GetOrCreateByEmail(name, email string) (*model.Client, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var client model.Client
	err := r.db.
		Where("email = ?", normalized).
		Attrs(model.Client{Name: name, Email: normalized}).
		FirstOrCreate(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetByID(id uint) (*model.Client, error) {
	var client model.Client
	err := r.db.First(&client, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}
