package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySchedule is the stored aggregate root. Weekly days and date
// overrides live in child tables and are loaded with the schedule.
type AvailabilitySchedule struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	IsDefault      bool   `gorm:"default:false" json:"is_default"`
	Timezone       string `gorm:"size:64" json:"timezone"`
	EventTypeCount int    `gorm:"default:0" json:"event_type_count"`

	Days      []ScheduleDay      `gorm:"constraint:OnDelete:CASCADE;" json:"days"`
	Overrides []ScheduleOverride `gorm:"constraint:OnDelete:CASCADE;" json:"overrides"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleDay is one weekday row of the weekly template, always 7 per
// schedule. Slots are stored as a JSON-encoded list of {start,end} pairs.
type ScheduleDay struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ScheduleID uuid.UUID `gorm:"type:uuid;index;not null" json:"schedule_id"`

	Weekday int    `gorm:"not null" json:"weekday"`
	Enabled bool   `json:"enabled"`
	Slots   string `gorm:"type:text" json:"slots"`
}

// ScheduleOverride is one date-specific exception row. Date is unique per
// schedule.
type ScheduleOverride struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ScheduleID uuid.UUID `gorm:"type:uuid;index:idx_schedule_override_date,unique;not null" json:"schedule_id"`

	Date  string `gorm:"size:10;index:idx_schedule_override_date,unique;not null" json:"date"`
	Type  string `gorm:"size:20;not null" json:"type"`
	Slots string `gorm:"type:text" json:"slots"`
}
