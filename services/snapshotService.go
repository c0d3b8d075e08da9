package services

import (
	"time"

	Config "rwa-adapter/config"
	"rwa-adapter/database"
	"rwa-adapter/model"
	"rwa-adapter/utility/appError"
	"rwa-adapter/utility/logger"

	uuid "github.com/satori/go.uuid"
)

//SnapshotService object. Records historical value points so 24h deltas are
//derived from persisted history.
type SnapshotService struct {
	Config     Config.Data
	Repository database.IMarketRepository
	Now        func() time.Time
}

func NewSnapshotService(config Config.Data, repository database.IMarketRepository) *SnapshotService {
	baseService := SnapshotService{
		Config:     config,
		Repository: repository,
		Now:        time.Now,
	}
	return &baseService
}

// Record ... Appends a value point for an entity. Best effort, errors are logged.
func (service *SnapshotService) Record(entityType string, entityID uuid.UUID, value float64) {
	snapshot := model.PriceSnapshot{
		EntityType: entityType,
		EntityID:   entityID,
		Value:      value,
		RecordedAt: service.Now(),
	}
	if err := service.Repository.Create(&snapshot); err != nil {
		logger.Error("Error recording %s snapshot for %v : %s", entityType, entityID, err)
	}
}

// ChangeOver24h ... Computes the percentage and absolute change of the current
// value against the newest snapshot at least 24 hours old. Returns zeros when no
// history exists yet.
func (service *SnapshotService) ChangeOver24h(entityType string, entityID uuid.UUID, currentValue float64) (float64, float64) {
	cutoff := service.Now().Add(-24 * time.Hour)
	snapshot := model.PriceSnapshot{}
	if err := service.Repository.GetLatestSnapshotBefore(entityType, entityID, cutoff, &snapshot); err != nil {
		if !appError.IsNotFound(err) {
			logger.Warning("Error fetching %s snapshot for %v : %s", entityType, entityID, err)
		}
		return 0, 0
	}
	if snapshot.Value == 0 {
		return 0, 0
	}
	changeAmount := currentValue - snapshot.Value
	return changeAmount / snapshot.Value * 100, changeAmount
}
