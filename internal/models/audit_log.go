package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records one schedule mutation (create, update, delete, duplicate,
// set-default) for the owning user's activity view.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uuid.UUID `gorm:"type:uuid;index" json:"owner_id"`
	Action  string    `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:36" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
