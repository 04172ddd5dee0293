package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel is the GORM-specific struct for the 'refresh_tokens' table.
// The token value itself is the primary key, so lookup and rotation hit the
// primary index directly.
type RefreshTokenModel struct {
	Token     string    `gorm:"type:varchar(512);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
