package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
//
// IDs are integers assigned by the database in insertion order. The UI sorts
// same-day ledger movements by ID, so the monotonic assignment matters.
type DefaultModel struct {
	ID        uint64    `json:"id" example:"17"` // Sequential ID of the resource
	CreatedAt time.Time `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-04-17T20:14:01.048145Z"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}
