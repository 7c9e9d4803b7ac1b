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
	"github.com/prabodha-fernando/autoslot/utils"
	"gorm.io/gorm"
)

// IncidentFlow handles incident reporting. Status transitions are free-form:
// any recorded status may move to any other, there is no workflow engine.
type IncidentFlow interface {
	Create(ctx context.Context, request *dto.CreateIncidentRequest) (*dto.IncidentDTO, error)
	List(ctx context.Context, status, severity *string, page dto.Pagination) (*dto.ListIncidentsResponse, error)
	Update(ctx context.Context, incidentUUID string, request *dto.UpdateIncidentRequest) (*dto.IncidentDTO, error)
	Delete(ctx context.Context, incidentUUID string) error
}

// IncidentFlowImpl implements the incident business flow
type IncidentFlowImpl struct {
	incidentRepo repository.IncidentRepository
	officerRepo  repository.SecurityOfficerRepository
	scanRepo     repository.CameraScanRepository
	sequenceRepo repository.SequenceRepository
	seqConfig    config.SequenceConfig
	db           *gorm.DB
}

// NewIncidentFlow creates a new incident flow instance
func NewIncidentFlow(
	incidentRepo repository.IncidentRepository,
	officerRepo repository.SecurityOfficerRepository,
	scanRepo repository.CameraScanRepository,
	sequenceRepo repository.SequenceRepository,
	seqConfig config.SequenceConfig,
	db *gorm.DB,
) IncidentFlow {
	return &IncidentFlowImpl{
		incidentRepo: incidentRepo,
		officerRepo:  officerRepo,
		scanRepo:     scanRepo,
		sequenceRepo: sequenceRepo,
		seqConfig:    seqConfig,
		db:           db,
	}
}

// Create reports an incident, optionally linked to a camera scan
func (inf *IncidentFlowImpl) Create(ctx context.Context, request *dto.CreateIncidentRequest) (*dto.IncidentDTO, error) {
	if request.ScanNumber != nil {
		scan, err := inf.scanRepo.ByScanNumber(ctx, *request.ScanNumber)
		if err != nil {
			return nil, NewBusinessError("CREATE_INCIDENT_FAILED", "Failed to look up camera scan", err)
		}
		if scan == nil {
			return nil, NewBusinessError("SCAN_NOT_FOUND", "Camera scan not found", ErrScanNotFound)
		}
	}

	number, err := inf.sequenceRepo.Next(ctx, models.IncidentCounter, inf.seqConfig.IncidentStart)
	if err != nil {
		return nil, NewBusinessError("SEQUENCE_ALLOCATION_FAILED", "Failed to allocate incident number", err)
	}

	incident := &models.Incident{
		UUID:           uuid.New(),
		IncidentNumber: number,
		ScanNumber:     request.ScanNumber,
		Type:           request.Type,
		Description:    strings.TrimSpace(request.Description),
		Severity:       request.Severity,
		Status:         models.IncidentStatusOpen,
		OccurredAt:     utils.UTCNow(),
	}

	if err := inf.incidentRepo.Save(ctx, incident); err != nil {
		return nil, NewBusinessError("CREATE_INCIDENT_FAILED", "Failed to create incident", err)
	}

	out := ToIncidentDTO(*incident)
	return &out, nil
}

// List returns incidents, optionally filtered by status and severity
func (inf *IncidentFlowImpl) List(ctx context.Context, status, severity *string, page dto.Pagination) (*dto.ListIncidentsResponse, error) {
	filter := models.IncidentFilter{Status: status, Severity: severity}
	incidents, err := inf.incidentRepo.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, NewBusinessError("LIST_INCIDENTS_FAILED", "Failed to list incidents", err)
	}

	out := make([]dto.IncidentDTO, 0, len(incidents))
	for _, i := range incidents {
		out = append(out, ToIncidentDTO(*i))
	}

	return &dto.ListIncidentsResponse{Incidents: out}, nil
}

// Update changes an incident's status, assignment or resolution notes
func (inf *IncidentFlowImpl) Update(ctx context.Context, incidentUUID string, request *dto.UpdateIncidentRequest) (*dto.IncidentDTO, error) {
	var updated *models.Incident

	err := repository.WithTransaction(ctx, inf.db, func(ctx context.Context) error {
		incident, err := inf.incidentRepo.ByUUID(ctx, incidentUUID)
		if err != nil {
			return err
		}
		if incident == nil {
			return ErrIncidentNotFound
		}

		if request.AssignedOfficerID != nil {
			officer, err := inf.officerRepo.ByID(ctx, *request.AssignedOfficerID)
			if err != nil {
				return err
			}
			if officer == nil {
				return ErrOfficerNotFound
			}
			incident.AssignedOfficerID = request.AssignedOfficerID
			incident.AssignedOfficer = officer
		}

		incident.Status = request.Status
		if request.ResolutionNotes != "" {
			incident.ResolutionNotes = request.ResolutionNotes
		}

		if err := inf.incidentRepo.Update(ctx, incident); err != nil {
			return err
		}

		updated = incident
		return nil
	})

	if err != nil {
		return nil, NewBusinessError("UPDATE_INCIDENT_FAILED", "Failed to update incident", err)
	}

	out := ToIncidentDTO(*updated)
	return &out, nil
}

// Delete removes an incident
func (inf *IncidentFlowImpl) Delete(ctx context.Context, incidentUUID string) error {
	incident, err := inf.incidentRepo.ByUUID(ctx, incidentUUID)
	if err != nil {
		return NewBusinessError("DELETE_INCIDENT_FAILED", "Failed to load incident", err)
	}
	if incident == nil {
		return NewBusinessError("INCIDENT_NOT_FOUND", "Incident not found", ErrIncidentNotFound)
	}

	if err := inf.incidentRepo.Delete(ctx, incident.ID); err != nil {
		return NewBusinessError("DELETE_INCIDENT_FAILED", "Failed to delete incident", err)
	}

	return nil
}
