package dto

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleListItemDTO is the trimmed row the schedule list screen renders:
// no template or overrides, just the grouped summary string.
type ScheduleListItemDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	IsDefault      bool      `json:"isDefault"`
	Timezone       string    `json:"timezone"`
	Summary        string    `json:"summary"`
	EventTypeCount int       `json:"eventTypeCount"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TimeGridOptionDTO is one 15-minute picker entry.
type TimeGridOptionDTO struct {
	Value string `json:"value"` // 24-hour HH:MM
	Label string `json:"label"` // 12-hour display
}
