package model

import "time"

// MapPointTypeModel is the GORM-specific struct for the 'map_point_types' table.
// It represents a category of map points, e.g. shelters or water stations.
type MapPointTypeModel struct {
	ID          int64  `gorm:"primary_key;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	IconURL     string `gorm:"type:varchar(512)"`
	Description string `gorm:"type:text"`
	OpeningTime string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MapPointTypeModel) TableName() string {
	return "map_point_types"
}
