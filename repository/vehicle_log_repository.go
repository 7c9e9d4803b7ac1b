// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prabodha-fernando/autoslot/models"
	"gorm.io/gorm"
)

// VehicleLogRepositoryImpl implements VehicleLogRepository interface
type VehicleLogRepositoryImpl struct {
	*BaseRepository[models.VehicleLog, models.VehicleLogFilter]
}

// NewVehicleLogRepository creates a new vehicle log repository
func NewVehicleLogRepository(db *gorm.DB) VehicleLogRepository {
	return &VehicleLogRepositoryImpl{
		BaseRepository: NewBaseRepository[models.VehicleLog, models.VehicleLogFilter](db),
	}
}

// ByUUID retrieves a vehicle log by UUID
func (r *VehicleLogRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.VehicleLog, error) {
	db := r.getDB(ctx)

	var log models.VehicleLog
	err := db.Where("uuid = ?", uuid).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vehicle log by UUID: %w", err)
	}

	return &log, nil
}

// List retrieves vehicle logs matching the filter with pagination
func (r *VehicleLogRepositoryImpl) List(ctx context.Context, filter models.VehicleLogFilter, limit, offset int) ([]*models.VehicleLog, error) {
	db := r.getDB(ctx)

	query := db.Model(&models.VehicleLog{})
	if filter.VehicleNumber != nil {
		query = query.Where("vehicle_number = ?", *filter.VehicleNumber)
	}
	if filter.VehicleType != nil {
		query = query.Where("vehicle_type = ?", *filter.VehicleType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.EnteredAfter != nil {
		query = query.Where("entry_time >= ?", *filter.EnteredAfter)
	}
	if filter.EnteredBefore != nil {
		query = query.Where("entry_time <= ?", *filter.EnteredBefore)
	}

	var logs []*models.VehicleLog
	err := query.Order("entry_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle logs: %w", err)
	}

	return logs, nil
}

// ListInside retrieves all vehicles currently inside the lot
func (r *VehicleLogRepositoryImpl) ListInside(ctx context.Context) ([]*models.VehicleLog, error) {
	db := r.getDB(ctx)

	var logs []*models.VehicleLog
	err := db.Where("status = ?", models.VehicleStatusInside).
		Order("entry_time DESC").
		Find(&logs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles inside: %w", err)
	}

	return logs, nil
}

// MarkExited records the exit of a vehicle that is still inside. Exiting an
// already-exited log is a no-op at this layer; callers check the status first.
func (r *VehicleLogRepositoryImpl) MarkExited(ctx context.Context, logID uint, exitTime time.Time) error {
	db := r.getDB(ctx)

	err := db.Model(&models.VehicleLog{}).
		Where("id = ? AND status = ?", logID, models.VehicleStatusInside).
		Updates(map[string]any{
			"status":     models.VehicleStatusExited,
			"exit_time":  exitTime,
			"updated_at": time.Now().UTC(),
		}).Error

	if err != nil {
		return fmt.Errorf("failed to mark vehicle log as exited: %w", err)
	}

	return nil
}
