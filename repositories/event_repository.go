// File: /repositories/event_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"

	"eventure-api/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Insert persists a new event row.
func (r *EventRepository) Insert(event *models.Event) error {
	return r.db.Create(event).Error
}

// FindByID fetches a single event; returns gorm.ErrRecordNotFound when the
// id is unknown.
func (r *EventRepository) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDWithRefs fetches an event with its location, category and creator
// preloaded, for read endpoints.
func (r *EventRepository) FindByIDWithRefs(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Location").Preload("Category").Preload("Creator").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Save writes the event back in place.
func (r *EventRepository) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

// FindByCreator lists all events created by the given user.
func (r *EventRepository) FindByCreator(creatorID string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("Location").Preload("Category").
		Where("creator_id = ?", creatorID).
		Order("starting_date ASC").
		Find(&events).Error
	return events, err
}

// Upcoming lists events that have not started yet, optionally filtered by a
// name substring.
func (r *EventRepository) Upcoming(search string, limit, offset int) ([]models.Event, error) {
	query := r.db.Preload("Location").Preload("Category").
		Where("starting_date > ?", time.Now())

	if search != "" {
		query = query.Where("event_name LIKE ?", "%"+search+"%")
	}

	var events []models.Event
	err := query.Order("starting_date ASC").Offset(offset).Limit(limit).Find(&events).Error
	return events, err
}
