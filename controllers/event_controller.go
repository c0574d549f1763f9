// File: /controllers/event_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventure-api/models"
	"eventure-api/services"
	"eventure-api/utils"
)

type EventController struct {
	eventService *services.EventService
}

func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent validates and persists a new event for the acting user.
func (ec *EventController) CreateEvent(c *gin.Context) {
	username := c.GetString("username")

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	result, err := ec.eventService.CreateEvent(req, username)
	if err != nil {
		log.Printf("CreateEvent failed for %q: %v", username, err)
		utils.SendError(c, http.StatusInternalServerError, "An error occured on the server")
		return
	}

	if !result.Succeeded {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdateEvent overwrites the mutable fields of an existing event.
func (ec *EventController) UpdateEvent(c *gin.Context) {
	username := c.GetString("username")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendValidationError(c, "Invalid event id")
		return
	}

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	result, serviceErr := ec.eventService.UpdateEvent(req, uint(id), username)
	if serviceErr != nil {
		log.Printf("UpdateEvent failed for %q: %v", username, serviceErr)
		utils.SendError(c, http.StatusInternalServerError, "An error occured on the server.")
		return
	}

	if !result.Succeeded {
		status := http.StatusBadRequest
		if result.Message == "Event not found." {
			status = http.StatusNotFound
		}
		c.JSON(status, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEvent returns a single event with its location, category and creator.
func (ec *EventController) GetEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendValidationError(c, "Invalid event id")
		return
	}

	event, err := ec.eventService.GetEvent(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Event not found")
			return
		}
		log.Printf("GetEvent %d failed: %v", id, err)
		utils.SendError(c, http.StatusInternalServerError, "An error occured on the server")
		return
	}

	event.Creator.Password = ""
	c.JSON(http.StatusOK, event)
}

// GetEvents lists upcoming events, optionally filtered by name.
func (ec *EventController) GetEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	events, err := ec.eventService.UpcomingEvents(c.Query("search"), limit, offset)
	if err != nil {
		log.Printf("GetEvents failed: %v", err)
		utils.SendError(c, http.StatusInternalServerError, "An error occured on the server")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"page":   page,
		"limit":  limit,
	})
}

// GetCreatedEvents lists the acting user's own events.
func (ec *EventController) GetCreatedEvents(c *gin.Context) {
	username := c.GetString("username")

	events, err := ec.eventService.EventsByCreator(username)
	if err != nil {
		log.Printf("GetCreatedEvents failed for %q: %v", username, err)
		utils.SendError(c, http.StatusInternalServerError, "An error occured on the server")
		return
	}

	c.JSON(http.StatusOK, events)
}
