// Package entity contains the core business objects of the project.
package entity

import "time"

// Event is a crisis incident drawn on the map: a circle around a coordinate
// with a severity and an optional start time.
type Event struct {
	ID          int64
	Title       string
	Description string
	Latitude    float64
	Longitude   float64
	Radius      float64 // Affected radius in meters.
	Severity    string
	StartTime   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
