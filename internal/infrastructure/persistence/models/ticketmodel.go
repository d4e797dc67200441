package models

import (
	"time"

	"github.com/tracklet-io/tracklet/internal/shared/constants"
)

// TicketModel is the persistence model for tickets. Status and Priority hold
// enum ordinals so ORDER BY follows enum order.
type TicketModel struct {
	ID          uint       `gorm:"primaryKey"`
	Status      int        `gorm:"not null;index"`
	Priority    int        `gorm:"not null;index"`
	Title       string     `gorm:"size:200;not null"`
	Description string     `gorm:"size:2000;not null"`
	Author      string     `gorm:"size:100;not null;index"`
	Assignee    string     `gorm:"size:100;not null;index"`
	IsDeleted   bool       `gorm:"not null"`
	DeletedAt   *time.Time
	ParentID    *uint      `gorm:"index"`
	CreatedAt   time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime:false"`

	Parent   *TicketModel          `gorm:"foreignKey:ParentID"`
	Outgoing []TicketRelationModel `gorm:"foreignKey:FromTicketID"`
	Incoming []TicketRelationModel `gorm:"foreignKey:ToTicketID"`
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return constants.TableTickets
}

// TicketRelationModel is a directed typed edge. The composite primary key
// makes each (from, to, type) triple unique.
type TicketRelationModel struct {
	FromTicketID uint `gorm:"primaryKey;autoIncrement:false;check:chk_ticket_relations_not_self,from_ticket_id <> to_ticket_id"`
	ToTicketID   uint `gorm:"primaryKey;autoIncrement:false;index"`
	RelationType int  `gorm:"primaryKey;autoIncrement:false"`

	FromTicket *TicketModel `gorm:"foreignKey:FromTicketID"`
	ToTicket   *TicketModel `gorm:"foreignKey:ToTicketID"`
}

// TableName specifies the table name for GORM
func (TicketRelationModel) TableName() string {
	return constants.TableTicketRelations
}
