// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/prabodha-fernando/autoslot/models"
	"gorm.io/gorm"
)

// SecurityOfficerRepositoryImpl implements SecurityOfficerRepository interface
type SecurityOfficerRepositoryImpl struct {
	*BaseRepository[models.SecurityOfficer, models.SecurityOfficerFilter]
}

// NewSecurityOfficerRepository creates a new security officer repository
func NewSecurityOfficerRepository(db *gorm.DB) SecurityOfficerRepository {
	return &SecurityOfficerRepositoryImpl{
		BaseRepository: NewBaseRepository[models.SecurityOfficer, models.SecurityOfficerFilter](db),
	}
}

// ByUUID retrieves an officer by UUID
func (r *SecurityOfficerRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.SecurityOfficer, error) {
	db := r.getDB(ctx)

	var officer models.SecurityOfficer
	err := db.Where("uuid = ?", uuid).First(&officer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find officer by UUID: %w", err)
	}

	return &officer, nil
}

// ByOfficerNumber retrieves an officer by their allocated number
func (r *SecurityOfficerRepositoryImpl) ByOfficerNumber(ctx context.Context, number int64) (*models.SecurityOfficer, error) {
	db := r.getDB(ctx)

	var officer models.SecurityOfficer
	err := db.Where("officer_number = ?", number).First(&officer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find officer by number: %w", err)
	}

	return &officer, nil
}

// List retrieves officers matching the filter with pagination
func (r *SecurityOfficerRepositoryImpl) List(ctx context.Context, filter models.SecurityOfficerFilter, limit, offset int) ([]*models.SecurityOfficer, error) {
	db := r.getDB(ctx)

	query := db.Model(&models.SecurityOfficer{})
	if filter.Shift != nil {
		query = query.Where("shift = ?", *filter.Shift)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filter.CreatedBefore)
	}

	var officers []*models.SecurityOfficer
	err := query.Order("officer_number ASC").
		Limit(limit).
		Offset(offset).
		Find(&officers).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list officers: %w", err)
	}

	return officers, nil
}

// Delete removes an officer row
func (r *SecurityOfficerRepositoryImpl) Delete(ctx context.Context, officerID uint) error {
	db := r.getDB(ctx)

	err := db.Delete(&models.SecurityOfficer{}, officerID).Error
	if err != nil {
		return fmt.Errorf("failed to delete officer: %w", err)
	}

	return nil
}
