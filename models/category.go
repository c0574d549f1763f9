// File: /models/category.go
package models

// Category is immutable reference data imported once at startup.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:255"`
}
