// Package businessflow contains the core business logic and use cases for the parking-lot workflows
package businessflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/config"
	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	"github.com/prabodha-fernando/autoslot/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ScanListCacheKey is the cache key for the first page of the scan listing
const ScanListCacheKey = "camera_scans:recent"

// CameraFlow handles camera scan ingestion and listing. Detections are
// supplied by the caller; nothing here talks to real cameras.
type CameraFlow interface {
	Create(ctx context.Context, request *dto.CreateScanRequest) (*dto.CameraScanDTO, error)
	List(ctx context.Context, page dto.Pagination) (*dto.ListScansResponse, error)
}

// CameraFlowImpl implements the camera scan business flow
type CameraFlowImpl struct {
	scanRepo     repository.CameraScanRepository
	sequenceRepo repository.SequenceRepository
	seqConfig    config.SequenceConfig
	cacheConfig  *config.CacheConfig
	rc           *redis.Client
	db           *gorm.DB
}

// NewCameraFlow creates a new camera flow instance
func NewCameraFlow(
	scanRepo repository.CameraScanRepository,
	sequenceRepo repository.SequenceRepository,
	seqConfig config.SequenceConfig,
	cacheConfig *config.CacheConfig,
	rc *redis.Client,
	db *gorm.DB,
) CameraFlow {
	return &CameraFlowImpl{
		scanRepo:     scanRepo,
		sequenceRepo: sequenceRepo,
		seqConfig:    seqConfig,
		cacheConfig:  cacheConfig,
		rc:           rc,
		db:           db,
	}
}

func redisKey(cfg config.CacheConfig, key string) string {
	if cfg.RedisPrefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", cfg.RedisPrefix, key)
}

// cachedScanPage wraps a cached listing with the page size it was built for.
// A page cached for one size must never be served to a request for another.
type cachedScanPage struct {
	PageSize int                   `json:"page_size"`
	Response dto.ListScansResponse `json:"response"`
}

func encodeScanPage(limit int, resp *dto.ListScansResponse) ([]byte, error) {
	return json.Marshal(cachedScanPage{PageSize: limit, Response: *resp})
}

// decodeScanPage returns the cached response only when it was stored for the
// requested page size. Unreadable or mismatched entries are treated as misses.
func decodeScanPage(bs []byte, limit int) (*dto.ListScansResponse, bool) {
	var entry cachedScanPage
	if err := json.Unmarshal(bs, &entry); err != nil {
		return nil, false
	}
	if entry.PageSize != limit || entry.Response.Scans == nil {
		return nil, false
	}
	return &entry.Response, true
}

// Create stores a camera scan and invalidates the cached listing
func (cf *CameraFlowImpl) Create(ctx context.Context, request *dto.CreateScanRequest) (*dto.CameraScanDTO, error) {
	number, err := cf.sequenceRepo.Next(ctx, models.ScanCounter, cf.seqConfig.ScanStart)
	if err != nil {
		return nil, NewBusinessError("SEQUENCE_ALLOCATION_FAILED", "Failed to allocate scan number", err)
	}

	detections, err := json.Marshal(request.DetectedVehicles)
	if err != nil {
		return nil, NewBusinessError("CREATE_SCAN_FAILED", "Failed to encode detections", err)
	}

	scan := &models.CameraScan{
		UUID:             uuid.New(),
		ScanNumber:       number,
		ScannedAt:        utils.UTCNow(),
		DetectedVehicles: detections,
	}

	if err := cf.scanRepo.Save(ctx, scan); err != nil {
		return nil, NewBusinessError("CREATE_SCAN_FAILED", "Failed to store camera scan", err)
	}

	if cf.rc != nil && cf.cacheConfig != nil && cf.cacheConfig.Enabled {
		_ = cf.rc.Del(ctx, redisKey(*cf.cacheConfig, ScanListCacheKey)).Err()
	}

	out := ToCameraScanDTO(*scan)
	return &out, nil
}

// List returns camera scans newest first. The first page is served from
// Redis when available.
func (cf *CameraFlowImpl) List(ctx context.Context, page dto.Pagination) (*dto.ListScansResponse, error) {
	cacheable := cf.rc != nil && cf.cacheConfig != nil && cf.cacheConfig.Enabled && page.Offset() == 0
	cacheKey := ""

	if cacheable {
		cacheKey = redisKey(*cf.cacheConfig, ScanListCacheKey)
		if bs, err := cf.rc.Get(ctx, cacheKey).Bytes(); err == nil && len(bs) > 0 {
			if out, ok := decodeScanPage(bs, page.Limit()); ok {
				return out, nil
			}
		}
	}

	scans, err := cf.scanRepo.ListRecent(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, NewBusinessError("LIST_SCANS_FAILED", "Failed to list camera scans", err)
	}

	out := &dto.ListScansResponse{Scans: make([]dto.CameraScanDTO, 0, len(scans))}
	for _, s := range scans {
		out.Scans = append(out.Scans, ToCameraScanDTO(*s))
	}

	if cacheable {
		if bs, err := encodeScanPage(page.Limit(), out); err == nil {
			_ = cf.rc.Set(ctx, cacheKey, bs, cf.cacheConfig.DefaultTTL).Err()
		}
	}

	return out, nil
}
