package service

import (
	"sort"
	"strings"
	"time"

	"reservation-service/internal/model"
	"reservation-service/internal/repository"

	"github.com/shopspring/decimal"
)

// fakeStore is an in-memory stand-in for the database, shared by the fake
// repositories so conflict checks see the same reservations the
// reservation repository writes.
type fakeStore struct {
	properties   map[uint]model.Property
	addresses    map[uint]model.Address
	clients      map[uint]model.Client
	reservations map[uint]model.Reservation
	nextID       uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		properties:   make(map[uint]model.Property),
		addresses:    make(map[uint]model.Address),
		clients:      make(map[uint]model.Client),
		reservations: make(map[uint]model.Reservation),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

// seedProperty inserts a property with an address and returns its id
func (s *fakeStore) seedProperty(title string, capacity int, price string, city, state string) uint {
	address := model.Address{
		ID:           s.id(),
		Street:       "Rua das Flores",
		Number:       "100",
		Neighborhood: "Centro",
		City:         city,
		State:        state,
		Country:      "Brasil",
	}
	s.addresses[address.ID] = address

	property := model.Property{
		ID:            s.id(),
		Title:         title,
		AddressID:     address.ID,
		Address:       address,
		Rooms:         2,
		Capacity:      capacity,
		PricePerNight: decimal.RequireFromString(price),
	}
	s.properties[property.ID] = property
	return property.ID
}

// seedReservation inserts an active reservation directly, bypassing the
// workflow
func (s *fakeStore) seedReservation(propertyID, clientID uint, start, end time.Time) uint {
	reservation := model.Reservation{
		ID:             s.id(),
		PropertyID:     propertyID,
		ClientID:       clientID,
		StartDate:      start,
		EndDate:        end,
		GuestsQuantity: 1,
		Price:          decimal.Zero,
		Active:         true,
	}
	s.reservations[reservation.ID] = reservation
	return reservation.ID
}

type fakePropertyRepo struct {
	store *fakeStore
}

func (r *fakePropertyRepo) CreateWithAddress(property *model.Property, address *model.Address) error {
	address.ID = r.store.id()
	address.CreatedAt = time.Now()
	r.store.addresses[address.ID] = *address

	property.ID = r.store.id()
	property.AddressID = address.ID
	property.Address = *address
	property.CreatedAt = time.Now()
	property.UpdatedAt = property.CreatedAt
	r.store.properties[property.ID] = *property
	return nil
}

func (r *fakePropertyRepo) GetByID(id uint) (*model.Property, error) {
	property, ok := r.store.properties[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &property, nil
}

func (r *fakePropertyRepo) GetWithAddress(id uint) (*model.Property, error) {
	property, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	property.Address = r.store.addresses[property.AddressID]
	return property, nil
}

func (r *fakePropertyRepo) List(filters repository.PropertyFilters, offset, limit int) ([]model.Property, error) {
	var matched []model.Property
	for _, property := range r.store.properties {
		property.Address = r.store.addresses[property.AddressID]
		if filters.City != "" && !containsFold(property.Address.City, filters.City) {
			continue
		}
		if filters.State != "" && !containsFold(property.Address.State, filters.State) {
			continue
		}
		if filters.Neighborhood != "" && !containsFold(property.Address.Neighborhood, filters.Neighborhood) {
			continue
		}
		if filters.MaxCapacity > 0 && property.Capacity > filters.MaxCapacity {
			continue
		}
		if filters.MaxPrice.IsPositive() && property.PricePerNight.GreaterThan(filters.MaxPrice) {
			continue
		}
		matched = append(matched, property)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return window(matched, offset, limit), nil
}

func (r *fakePropertyRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.store.properties[id]
	return ok, nil
}

func (r *fakePropertyRepo) FindConflicts(propertyID uint, start, end time.Time) ([]model.Reservation, error) {
	var conflicts []model.Reservation
	for _, res := range r.store.reservations {
		if res.PropertyID == propertyID && res.Active && Overlaps(res.StartDate, res.EndDate, start, end) {
			conflicts = append(conflicts, res)
		}
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].StartDate.Before(conflicts[j].StartDate) })
	return conflicts, nil
}

type fakeClientRepo struct {
	store *fakeStore
}

func (r *fakeClientRepo) GetOrCreateByEmail(name, email string) (*model.Client, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, client := range r.store.clients {
		if client.Email == normalized {
			return &client, nil
		}
	}
	client := model.Client{
		ID:        r.store.id(),
		Name:      name,
		Email:     normalized,
		CreatedAt: time.Now(),
	}
	r.store.clients[client.ID] = client
	return &client, nil
}

func (r *fakeClientRepo) GetByID(id uint) (*model.Client, error) {
	client, ok := r.store.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &client, nil
}

type fakeReservationRepo struct {
	store *fakeStore
}

func (r *fakeReservationRepo) Create(reservation *model.Reservation) error {
	if _, ok := r.store.properties[reservation.PropertyID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.store.reservations {
		if existing.PropertyID == reservation.PropertyID && existing.Active &&
			Overlaps(existing.StartDate, existing.EndDate, reservation.StartDate, reservation.EndDate) {
			return repository.ErrDateConflict
		}
	}
	reservation.ID = r.store.id()
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt
	r.store.reservations[reservation.ID] = *reservation
	return nil
}

func (r *fakeReservationRepo) GetByID(id uint) (*model.Reservation, error) {
	reservation, ok := r.store.reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &reservation, nil
}

func (r *fakeReservationRepo) GetWithDetails(id uint) (*model.Reservation, error) {
	reservation, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	property := r.store.properties[reservation.PropertyID]
	property.Address = r.store.addresses[property.AddressID]
	reservation.Property = property
	reservation.Client = r.store.clients[reservation.ClientID]
	return reservation, nil
}

func (r *fakeReservationRepo) List(filters repository.ReservationFilters, offset, limit int) ([]model.Reservation, error) {
	var matched []model.Reservation
	for _, res := range r.store.reservations {
		client := r.store.clients[res.ClientID]
		if filters.ClientEmail != "" && client.Email != strings.ToLower(filters.ClientEmail) {
			continue
		}
		if filters.PropertyID > 0 && res.PropertyID != filters.PropertyID {
			continue
		}
		if filters.ActiveOnly && !res.Active {
			continue
		}
		res.Property = r.store.properties[res.PropertyID]
		res.Client = client
		matched = append(matched, res)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return window(matched, offset, limit), nil
}

func (r *fakeReservationRepo) Cancel(id uint) (bool, error) {
	reservation, ok := r.store.reservations[id]
	if !ok || !reservation.Active {
		return false, nil
	}
	reservation.Active = false
	r.store.reservations[id] = reservation
	return true, nil
}

func (r *fakeReservationRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.store.reservations[id]
	return ok, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
