// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/prabodha-fernando/autoslot/models"
	"gorm.io/gorm"
)

// IncidentRepositoryImpl implements IncidentRepository interface
type IncidentRepositoryImpl struct {
	*BaseRepository[models.Incident, models.IncidentFilter]
}

// NewIncidentRepository creates a new incident repository
func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &IncidentRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Incident, models.IncidentFilter](db),
	}
}

// ByUUID retrieves an incident by UUID
func (r *IncidentRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.Incident, error) {
	db := r.getDB(ctx)

	var incident models.Incident
	err := db.Where("uuid = ?", uuid).Preload("AssignedOfficer").First(&incident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find incident by UUID: %w", err)
	}

	return &incident, nil
}

// List retrieves incidents matching the filter with pagination
func (r *IncidentRepositoryImpl) List(ctx context.Context, filter models.IncidentFilter, limit, offset int) ([]*models.Incident, error) {
	db := r.getDB(ctx)

	query := db.Model(&models.Incident{})
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", *filter.Severity)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AssignedOfficerID != nil {
		query = query.Where("assigned_officer_id = ?", *filter.AssignedOfficerID)
	}
	if filter.ScanNumber != nil {
		query = query.Where("scan_number = ?", *filter.ScanNumber)
	}
	if filter.OccurredAfter != nil {
		query = query.Where("occurred_at >= ?", *filter.OccurredAfter)
	}
	if filter.OccurredBefore != nil {
		query = query.Where("occurred_at <= ?", *filter.OccurredBefore)
	}

	var incidents []*models.Incident
	err := query.Order("occurred_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("AssignedOfficer").
		Find(&incidents).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	return incidents, nil
}

// Delete removes an incident row
func (r *IncidentRepositoryImpl) Delete(ctx context.Context, incidentID uint) error {
	db := r.getDB(ctx)

	err := db.Delete(&models.Incident{}, incidentID).Error
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	return nil
}
