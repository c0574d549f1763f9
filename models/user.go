// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserName  string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Role      string    `json:"role" gorm:"not null;default:'User';size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	CreatedEvents []Event `json:"created_events,omitempty" gorm:"foreignKey:CreatorID"`
}
