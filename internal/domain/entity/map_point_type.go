// Package entity contains the core business objects of the project.
package entity

import "time"

// MapPointType is a catalog entry used to classify locations on the map,
// e.g. "Shelter" or "Water distribution point".
type MapPointType struct {
	ID          int64
	Title       string
	IconURL     string
	Description string
	OpeningTime string // Free-form opening hours, e.g. "9:00-17:00".
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
