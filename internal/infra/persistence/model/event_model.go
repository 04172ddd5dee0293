package model

import "time"

// EventModel is the GORM-specific struct for the 'events' table.
// It represents a crisis event shown on the map.
type EventModel struct {
	ID          int64   `gorm:"primary_key;autoIncrement"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
	Radius      float64 `gorm:"not null"`
	Severity    string  `gorm:"type:varchar(50);not null"`
	StartTime   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
