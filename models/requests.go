// File: /models/requests.go
package models

// Request DTOs bound from JSON by the controllers and handed to the
// services. Dates travel as strings and are parsed by the event service so
// a malformed date is a validation failure, not a binding error.

type CreateEventRequest struct {
	EventName      string  `json:"event_name" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	StartingDate   string  `json:"starting_date" binding:"required"`
	EndingDate     string  `json:"ending_date" binding:"required"`
	HeadCount      int     `json:"head_count" binding:"gte=0"`
	RecommendedAge int     `json:"recommended_age" binding:"gte=0"`
	Price          float64 `json:"price" binding:"gte=0"`
	Location       string  `json:"location" binding:"required"`
	Category       string  `json:"category" binding:"required"`
}

// UpdateEventRequest overwrites only the fields that are set; empty strings
// leave the stored value untouched.
type UpdateEventRequest struct {
	EventName      string   `json:"event_name"`
	Description    string   `json:"description"`
	StartingDate   string   `json:"starting_date"`
	EndingDate     string   `json:"ending_date"`
	HeadCount      *int     `json:"head_count" binding:"omitempty,gte=0"`
	RecommendedAge *int     `json:"recommended_age" binding:"omitempty,gte=0"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	Location       string   `json:"location"`
	Category       string   `json:"category"`
}

type LoginRequest struct {
	UserName string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	UserName string `json:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse is returned by POST /api/login on success; the token itself
// travels in the "token" cookie.
type LoginResponse struct {
	UserName string   `json:"username"`
	Roles    []string `json:"roles"`
}
