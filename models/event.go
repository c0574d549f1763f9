// File: /models/event.go
package models

import (
	"time"
)

type Event struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	EventName      string    `json:"event_name" gorm:"not null;size:255"`
	Description    string    `json:"description" gorm:"not null;type:text"`
	StartingDate   time.Time `json:"starting_date" gorm:"not null"`
	EndingDate     time.Time `json:"ending_date" gorm:"not null"`
	HeadCount      int       `json:"head_count" gorm:"not null"`
	RecommendedAge int       `json:"recommended_age" gorm:"default:0"`
	Price          float64   `json:"price" gorm:"not null;default:0"`
	LocationID     uint      `json:"location_id" gorm:"not null"`
	CategoryID     uint      `json:"category_id" gorm:"not null"`
	CreatorID      string    `json:"creator_id" gorm:"not null;size:191"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Location Location `json:"location" gorm:"foreignKey:LocationID"`
	Category Category `json:"category" gorm:"foreignKey:CategoryID"`
	Creator  User     `json:"creator" gorm:"foreignKey:CreatorID"`
}
