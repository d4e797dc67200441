package models

import (
	"time"

	"github.com/tracklet-io/tracklet/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:50;not null"`
	Email        string    `gorm:"size:100;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// All returns every model for schema creation in tests and dev auto-migrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&TicketModel{},
		&TicketRelationModel{},
	}
}
