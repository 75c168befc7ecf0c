package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultModel is the base model for all other models in CoinCraft.
type DefaultModel struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stamp initializes the ID and the timestamps of a new resource.
func (m *DefaultModel) Stamp(now time.Time) {
	m.ID = uuid.New()
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch updates the UpdatedAt timestamp.
func (m *DefaultModel) Touch(now time.Time) {
	m.UpdatedAt = now
}
