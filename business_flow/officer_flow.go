// Package businessflow contains the core business logic and use cases for the parking-lot workflows
package businessflow

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/config"
	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	"gorm.io/gorm"
)

// OfficerFlow handles security officer roster operations
type OfficerFlow interface {
	Create(ctx context.Context, request *dto.CreateOfficerRequest) (*dto.OfficerDTO, error)
	List(ctx context.Context, shift *string, page dto.Pagination) (*dto.ListOfficersResponse, error)
	Update(ctx context.Context, officerUUID string, request *dto.UpdateOfficerRequest) (*dto.OfficerDTO, error)
	Delete(ctx context.Context, officerUUID string) error
}

// OfficerFlowImpl implements the officer business flow
type OfficerFlowImpl struct {
	officerRepo  repository.SecurityOfficerRepository
	sequenceRepo repository.SequenceRepository
	seqConfig    config.SequenceConfig
	db           *gorm.DB
}

// NewOfficerFlow creates a new officer flow instance
func NewOfficerFlow(
	officerRepo repository.SecurityOfficerRepository,
	sequenceRepo repository.SequenceRepository,
	seqConfig config.SequenceConfig,
	db *gorm.DB,
) OfficerFlow {
	return &OfficerFlowImpl{
		officerRepo:  officerRepo,
		sequenceRepo: sequenceRepo,
		seqConfig:    seqConfig,
		db:           db,
	}
}

// Create adds a security officer, allocating the next officer number first.
// A failed insert after allocation leaves a gap in the numbering.
func (of *OfficerFlowImpl) Create(ctx context.Context, request *dto.CreateOfficerRequest) (*dto.OfficerDTO, error) {
	number, err := of.sequenceRepo.Next(ctx, models.OfficerCounter, of.seqConfig.OfficerStart)
	if err != nil {
		return nil, NewBusinessError("SEQUENCE_ALLOCATION_FAILED", "Failed to allocate officer number", err)
	}

	officer := &models.SecurityOfficer{
		UUID:          uuid.New(),
		OfficerNumber: number,
		Name:          strings.TrimSpace(request.Name),
		ContactNumber: strings.TrimSpace(request.ContactNumber),
		Shift:         request.Shift,
	}

	if err := of.officerRepo.Save(ctx, officer); err != nil {
		return nil, NewBusinessError("CREATE_OFFICER_FAILED", "Failed to create officer", err)
	}

	out := ToOfficerDTO(*officer)
	return &out, nil
}

// List returns officers, optionally filtered by shift
func (of *OfficerFlowImpl) List(ctx context.Context, shift *string, page dto.Pagination) (*dto.ListOfficersResponse, error) {
	filter := models.SecurityOfficerFilter{Shift: shift}
	officers, err := of.officerRepo.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, NewBusinessError("LIST_OFFICERS_FAILED", "Failed to list officers", err)
	}

	out := make([]dto.OfficerDTO, 0, len(officers))
	for _, o := range officers {
		out = append(out, ToOfficerDTO(*o))
	}

	return &dto.ListOfficersResponse{Officers: out}, nil
}

// Update modifies an officer's details
func (of *OfficerFlowImpl) Update(ctx context.Context, officerUUID string, request *dto.UpdateOfficerRequest) (*dto.OfficerDTO, error) {
	var updated *models.SecurityOfficer

	err := repository.WithTransaction(ctx, of.db, func(ctx context.Context) error {
		officer, err := of.officerRepo.ByUUID(ctx, officerUUID)
		if err != nil {
			return err
		}
		if officer == nil {
			return ErrOfficerNotFound
		}

		officer.Name = strings.TrimSpace(request.Name)
		officer.ContactNumber = strings.TrimSpace(request.ContactNumber)
		officer.Shift = request.Shift

		if err := of.officerRepo.Update(ctx, officer); err != nil {
			return err
		}

		updated = officer
		return nil
	})

	if err != nil {
		return nil, NewBusinessError("UPDATE_OFFICER_FAILED", "Failed to update officer", err)
	}

	out := ToOfficerDTO(*updated)
	return &out, nil
}

// Delete removes an officer from the roster
func (of *OfficerFlowImpl) Delete(ctx context.Context, officerUUID string) error {
	officer, err := of.officerRepo.ByUUID(ctx, officerUUID)
	if err != nil {
		return NewBusinessError("DELETE_OFFICER_FAILED", "Failed to load officer", err)
	}
	if officer == nil {
		return NewBusinessError("OFFICER_NOT_FOUND", "Officer not found", ErrOfficerNotFound)
	}

	if err := of.officerRepo.Delete(ctx, officer.ID); err != nil {
		return NewBusinessError("DELETE_OFFICER_FAILED", "Failed to delete officer", err)
	}

	return nil
}
