package model

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

// PriceSnapshot ... Historical value point keyed by (entity, time). The refresh
// sweep records these so 24h deltas come from real history rather than a
// placeholder.
type PriceSnapshot struct {
	BaseModel
	EntityType string    `gorm:"not null;index:idx_price_snapshots_entity" json:"entityType"`
	EntityID   uuid.UUID `gorm:"type:VARCHAR(36);not null;index:idx_price_snapshots_entity" json:"entityId"`
	Value      float64   `gorm:"not null" json:"value"`
	RecordedAt time.Time `gorm:"not null;index:idx_price_snapshots_recorded_at" json:"recordedAt"`
}
