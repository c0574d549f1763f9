// File: /models/location.go
package models

// Location is immutable reference data imported once at startup.
// Events reference a location by id; lookups are by name, exact match.
type Location struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`
}
