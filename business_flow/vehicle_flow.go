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

// VehicleFlow handles vehicle entry and exit logging
type VehicleFlow interface {
	Entry(ctx context.Context, request *dto.VehicleEntryRequest) (*dto.VehicleLogDTO, error)
	List(ctx context.Context, status *string, page dto.Pagination) (*dto.ListVehicleLogsResponse, error)
	ListInside(ctx context.Context) (*dto.ListVehicleLogsResponse, error)
	Exit(ctx context.Context, logUUID string) (*dto.VehicleLogDTO, error)
}

// VehicleFlowImpl implements the vehicle business flow
type VehicleFlowImpl struct {
	vehicleRepo  repository.VehicleLogRepository
	sequenceRepo repository.SequenceRepository
	seqConfig    config.SequenceConfig
	db           *gorm.DB
}

// NewVehicleFlow creates a new vehicle flow instance
func NewVehicleFlow(
	vehicleRepo repository.VehicleLogRepository,
	sequenceRepo repository.SequenceRepository,
	seqConfig config.SequenceConfig,
	db *gorm.DB,
) VehicleFlow {
	return &VehicleFlowImpl{
		vehicleRepo:  vehicleRepo,
		sequenceRepo: sequenceRepo,
		seqConfig:    seqConfig,
		db:           db,
	}
}

// Entry records a vehicle entering the lot
func (vf *VehicleFlowImpl) Entry(ctx context.Context, request *dto.VehicleEntryRequest) (*dto.VehicleLogDTO, error) {
	number, err := vf.sequenceRepo.Next(ctx, models.VehicleCounter, vf.seqConfig.VehicleStart)
	if err != nil {
		return nil, NewBusinessError("SEQUENCE_ALLOCATION_FAILED", "Failed to allocate vehicle log number", err)
	}

	log := &models.VehicleLog{
		UUID:             uuid.New(),
		VehicleLogNumber: number,
		VehicleNumber:    strings.ToUpper(strings.TrimSpace(request.VehicleNumber)),
		DriverName:       strings.TrimSpace(request.DriverName),
		VehicleType:      request.VehicleType,
		Status:           models.VehicleStatusInside,
		EntryTime:        utils.UTCNow(),
	}

	if err := vf.vehicleRepo.Save(ctx, log); err != nil {
		return nil, NewBusinessError("VEHICLE_ENTRY_FAILED", "Failed to record vehicle entry", err)
	}

	out := ToVehicleLogDTO(*log)
	return &out, nil
}

// List returns vehicle logs, optionally filtered by status
func (vf *VehicleFlowImpl) List(ctx context.Context, status *string, page dto.Pagination) (*dto.ListVehicleLogsResponse, error) {
	filter := models.VehicleLogFilter{Status: status}
	logs, err := vf.vehicleRepo.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, NewBusinessError("LIST_VEHICLE_LOGS_FAILED", "Failed to list vehicle logs", err)
	}

	return &dto.ListVehicleLogsResponse{Logs: toVehicleLogDTOs(logs)}, nil
}

// ListInside returns all vehicles currently inside the lot
func (vf *VehicleFlowImpl) ListInside(ctx context.Context) (*dto.ListVehicleLogsResponse, error) {
	logs, err := vf.vehicleRepo.ListInside(ctx)
	if err != nil {
		return nil, NewBusinessError("LIST_VEHICLE_LOGS_FAILED", "Failed to list vehicles inside", err)
	}

	return &dto.ListVehicleLogsResponse{Logs: toVehicleLogDTOs(logs)}, nil
}

// Exit marks a vehicle as exited. Exiting twice is rejected.
func (vf *VehicleFlowImpl) Exit(ctx context.Context, logUUID string) (*dto.VehicleLogDTO, error) {
	var updated *models.VehicleLog

	err := repository.WithTransaction(ctx, vf.db, func(ctx context.Context) error {
		log, err := vf.vehicleRepo.ByUUID(ctx, logUUID)
		if err != nil {
			return err
		}
		if log == nil {
			return ErrVehicleLogNotFound
		}
		if !log.IsInside() {
			return ErrVehicleAlreadyExited
		}

		exitTime := utils.UTCNow()
		if err := vf.vehicleRepo.MarkExited(ctx, log.ID, exitTime); err != nil {
			return err
		}

		log.Status = models.VehicleStatusExited
		log.ExitTime = &exitTime
		updated = log
		return nil
	})

	if err != nil {
		return nil, NewBusinessError("VEHICLE_EXIT_FAILED", "Failed to record vehicle exit", err)
	}

	out := ToVehicleLogDTO(*updated)
	return &out, nil
}

func toVehicleLogDTOs(logs []*models.VehicleLog) []dto.VehicleLogDTO {
	out := make([]dto.VehicleLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToVehicleLogDTO(*l))
	}
	return out
}
