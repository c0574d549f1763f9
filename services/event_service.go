// File: /services/event_service.go
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"eventure-api/models"
	"eventure-api/repositories"
)

// UserDirectory resolves the acting user for event operations. The
// production implementation is repositories.UserRepository; tests inject a
// stub.
type UserDirectory interface {
	FindByUsername(username string) (*models.User, error)
}

// Server-fault messages. Clients match on these strings, so they stay
// byte-for-byte as the legacy API reported them (create without a trailing
// period, update with one).
var (
	ErrCreateServerFault = errors.New("An error occured on the server")
	ErrUpdateServerFault = errors.New("An error occured on the server.")
)

// Accepted layouts for incoming date strings, tried in order. Layouts
// without an offset are taken as UTC.
var eventDateLayouts = []string{
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05Z07:00",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

type EventService struct {
	events  *repositories.EventRepository
	lookups *repositories.LookupRepository
	users   UserDirectory
}

func NewEventService(db *gorm.DB, users UserDirectory) *EventService {
	return &EventService{
		events:  repositories.NewEventRepository(db),
		lookups: repositories.NewLookupRepository(db),
		users:   users,
	}
}

// CreateEvent validates the request and persists a new event owned by the
// acting user. Business-rule failures come back as a failed
// EventActionResult; unexpected collaborator faults come back as an error
// and are surfaced by the controller as a server error.
func (s *EventService) CreateEvent(req models.CreateEventRequest, username string) (*models.EventActionResult, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, ErrCreateServerFault
	}

	location, err := s.lookups.FindLocationByName(req.Location)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EventActionFailed("Couldn't find location."), nil
		}
		return nil, ErrCreateServerFault
	}

	category, err := s.lookups.FindCategoryByName(req.Category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EventActionFailed("Couldn't find category."), nil
		}
		return nil, ErrCreateServerFault
	}

	startingDate, err := parseEventDate(req.StartingDate)
	if err != nil {
		return models.EventActionFailed("Invalid starting date format."), nil
	}

	endingDate, err := parseEventDate(req.EndingDate)
	if err != nil {
		return models.EventActionFailed("Invalid ending date format."), nil
	}

	if !startingDate.Before(endingDate) {
		return models.EventActionFailed("Starting date must precede ending date."), nil
	}

	if req.HeadCount < 0 || req.RecommendedAge < 0 || req.Price < 0 {
		return models.EventActionFailed("Head count, recommended age and price must be non-negative."), nil
	}

	event := &models.Event{
		EventName:      req.EventName,
		Description:    req.Description,
		StartingDate:   startingDate,
		EndingDate:     endingDate,
		HeadCount:      req.HeadCount,
		RecommendedAge: req.RecommendedAge,
		Price:          req.Price,
		LocationID:     location.ID,
		CategoryID:     category.ID,
		CreatorID:      user.ID,
	}

	if err := s.events.Insert(event); err != nil {
		return nil, ErrCreateServerFault
	}

	return models.EventActionSucceed("Event created", event), nil
}

// UpdateEvent overwrites the mutable fields of an existing event. Fields
// left empty in the request keep their stored values. Last writer wins;
// there is no version stamp on events.
func (s *EventService) UpdateEvent(req models.UpdateEventRequest, id uint, username string) (*models.UpdateEventResult, error) {
	if _, err := s.users.FindByUsername(username); err != nil {
		return nil, ErrUpdateServerFault
	}

	event, err := s.events.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UpdateEventFail(), nil
		}
		return nil, ErrUpdateServerFault
	}

	if req.Location != "" {
		location, err := s.lookups.FindLocationByName(req.Location)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.UpdateEventFailed("Couldn't find location."), nil
			}
			return nil, ErrUpdateServerFault
		}
		event.LocationID = location.ID
	}

	if req.Category != "" {
		category, err := s.lookups.FindCategoryByName(req.Category)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.UpdateEventFailed("Couldn't find category."), nil
			}
			return nil, ErrUpdateServerFault
		}
		event.CategoryID = category.ID
	}

	if req.StartingDate != "" {
		startingDate, err := parseEventDate(req.StartingDate)
		if err != nil {
			return models.UpdateEventFailed("Invalid starting date format."), nil
		}
		event.StartingDate = startingDate
	}

	if req.EndingDate != "" {
		endingDate, err := parseEventDate(req.EndingDate)
		if err != nil {
			return models.UpdateEventFailed("Invalid ending date format."), nil
		}
		event.EndingDate = endingDate
	}

	if !event.StartingDate.Before(event.EndingDate) {
		return models.UpdateEventFailed("Starting date must precede ending date."), nil
	}

	if req.EventName != "" {
		event.EventName = req.EventName
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.HeadCount != nil {
		event.HeadCount = *req.HeadCount
	}
	if req.RecommendedAge != nil {
		event.RecommendedAge = *req.RecommendedAge
	}
	if req.Price != nil {
		event.Price = *req.Price
	}

	if err := s.events.Save(event); err != nil {
		return nil, ErrUpdateServerFault
	}

	return models.UpdateEventOk(), nil
}

// GetEvent fetches a single event with its references resolved.
func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	return s.events.FindByIDWithRefs(id)
}

// UpcomingEvents lists events that have not started yet.
func (s *EventService) UpcomingEvents(search string, limit, offset int) ([]models.Event, error) {
	return s.events.Upcoming(search, limit, offset)
}

// EventsByCreator lists the acting user's own events.
func (s *EventService) EventsByCreator(username string) ([]models.Event, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.events.FindByCreator(user.ID)
}

func parseEventDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
