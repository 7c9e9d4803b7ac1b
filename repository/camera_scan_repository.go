// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/prabodha-fernando/autoslot/models"
	"gorm.io/gorm"
)

// CameraScanRepositoryImpl implements CameraScanRepository interface
type CameraScanRepositoryImpl struct {
	*BaseRepository[models.CameraScan, models.CameraScanFilter]
}

// NewCameraScanRepository creates a new camera scan repository
func NewCameraScanRepository(db *gorm.DB) CameraScanRepository {
	return &CameraScanRepositoryImpl{
		BaseRepository: NewBaseRepository[models.CameraScan, models.CameraScanFilter](db),
	}
}

// ByUUID retrieves a camera scan by UUID
func (r *CameraScanRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.CameraScan, error) {
	db := r.getDB(ctx)

	var scan models.CameraScan
	err := db.Where("uuid = ?", uuid).First(&scan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find camera scan by UUID: %w", err)
	}

	return &scan, nil
}

// ByScanNumber retrieves a camera scan by its allocated number
func (r *CameraScanRepositoryImpl) ByScanNumber(ctx context.Context, number int64) (*models.CameraScan, error) {
	db := r.getDB(ctx)

	var scan models.CameraScan
	err := db.Where("scan_number = ?", number).First(&scan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find camera scan by number: %w", err)
	}

	return &scan, nil
}

// ListRecent retrieves camera scans newest first with pagination
func (r *CameraScanRepositoryImpl) ListRecent(ctx context.Context, limit, offset int) ([]*models.CameraScan, error) {
	db := r.getDB(ctx)

	var scans []*models.CameraScan
	err := db.Order("scanned_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&scans).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list camera scans: %w", err)
	}

	return scans, nil
}
