// Package businessflow contains the core business logic and use cases for the parking-lot workflows
package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prabodha-fernando/autoslot/app/dto"
	"github.com/prabodha-fernando/autoslot/app/services"
	"github.com/prabodha-fernando/autoslot/config"
	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prabodha-fernando/autoslot/repository"
	"github.com/prabodha-fernando/autoslot/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthFlow handles employee registration and authentication
type AuthFlow interface {
	Register(ctx context.Context, request *dto.RegisterRequest, metadata *ClientMetadata) (*dto.RegisterResponse, error)
	Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.TokenResponse, error)
	Me(ctx context.Context, employeeID uint) (*dto.EmployeeDTO, error)
}

// AuthFlowImpl implements the authentication business flow
type AuthFlowImpl struct {
	employeeRepo repository.EmployeeRepository
	sequenceRepo repository.SequenceRepository
	auditRepo    repository.AuditLogRepository
	tokenService services.TokenService
	seqConfig    config.SequenceConfig
	bcryptCost   int
	db           *gorm.DB
}

// NewAuthFlow creates a new auth flow instance
func NewAuthFlow(
	employeeRepo repository.EmployeeRepository,
	sequenceRepo repository.SequenceRepository,
	auditRepo repository.AuditLogRepository,
	tokenService services.TokenService,
	seqConfig config.SequenceConfig,
	bcryptCost int,
	db *gorm.DB,
) AuthFlow {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthFlowImpl{
		employeeRepo: employeeRepo,
		sequenceRepo: sequenceRepo,
		auditRepo:    auditRepo,
		tokenService: tokenService,
		seqConfig:    seqConfig,
		bcryptCost:   bcryptCost,
		db:           db,
	}
}

// Register creates a new employee account. The employee number is allocated
// before the insert; if the insert then fails the number stays consumed and
// the counter keeps a gap.
func (af *AuthFlowImpl) Register(ctx context.Context, request *dto.RegisterRequest, metadata *ClientMetadata) (*dto.RegisterResponse, error) {
	if err := af.validateRegisterRequest(ctx, request); err != nil {
		return nil, NewBusinessError("REGISTER_VALIDATION_FAILED", "Registration validation failed", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), af.bcryptCost)
	if err != nil {
		return nil, NewBusinessError("REGISTER_FAILED", "Failed to hash password", err)
	}

	number, err := af.sequenceRepo.Next(ctx, models.EmployeeCounter, af.seqConfig.EmployeeStart)
	if err != nil {
		return nil, NewBusinessError("SEQUENCE_ALLOCATION_FAILED", "Failed to allocate employee number", err)
	}

	employee := &models.Employee{
		UUID:           uuid.New(),
		EmployeeNumber: number,
		Name:           strings.TrimSpace(request.Name),
		Age:            request.Age,
		ContactNumber:  strings.TrimSpace(request.ContactNumber),
		NIC:            strings.TrimSpace(request.NIC),
		Email:          strings.TrimSpace(request.Email),
		PasswordHash:   string(passwordHash),
		Role:           strings.TrimSpace(request.Role),
		IsActive:       utils.ToPtr(true),
	}

	resp, err := af.WithRegisterTransaction(ctx, func(ctx context.Context) (*dto.RegisterResponse, error) {
		if err := af.employeeRepo.Save(ctx, employee); err != nil {
			return nil, err
		}

		return &dto.RegisterResponse{
			Msg:      "Employee registered",
			Employee: ToEmployeeDTO(*employee),
		}, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Registration failed: %s", err.Error())
		_ = af.LogAuthAttempt(ctx, nil, models.AuditActionRegisterFailed, errMsg, false, &errMsg, metadata)

		if dup := duplicateEmployeeIdentity(err); dup != nil {
			return nil, NewBusinessError("REGISTER_VALIDATION_FAILED", "Registration validation failed", dup)
		}
		return nil, NewBusinessError("REGISTER_FAILED", "Registration failed", err)
	}

	msg := fmt.Sprintf("Employee registered: %s", employee.PublicID())
	_ = af.LogAuthAttempt(ctx, employee, models.AuditActionRegisterCompleted, msg, true, nil, metadata)

	return resp, nil
}

// Login authenticates an employee with email and password. Unknown email and
// wrong password are indistinguishable to the caller.
func (af *AuthFlowImpl) Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.TokenResponse, error) {
	var employee *models.Employee

	resp, err := af.WithLoginTransaction(ctx, func(ctx context.Context) (*dto.TokenResponse, error) {
		var err error
		employee, err = af.employeeRepo.ByEmail(ctx, strings.TrimSpace(request.Email))
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, ErrInvalidCredentials
		}

		if !utils.IsTrue(employee.IsActive) {
			return nil, ErrAccountInactive
		}

		if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(request.Password)); err != nil {
			return nil, ErrInvalidCredentials
		}

		if err := af.employeeRepo.UpdateLastLogin(ctx, employee.ID, utils.UTCNow()); err != nil {
			return nil, err
		}

		token, err := af.tokenService.GenerateToken(employee.ID)
		if err != nil {
			return nil, err
		}

		return &dto.TokenResponse{Token: token}, nil
	})

	if err != nil {
		errMsg := fmt.Sprintf("Login failed: %s", err.Error())
		_ = af.LogAuthAttempt(ctx, employee, models.AuditActionLoginFailed, errMsg, false, &errMsg, metadata)

		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	msg := fmt.Sprintf("Employee logged in: %d", employee.ID)
	_ = af.LogAuthAttempt(ctx, employee, models.AuditActionLoginSuccessful, msg, true, nil, metadata)

	return resp, nil
}

// Me returns the authenticated employee
func (af *AuthFlowImpl) Me(ctx context.Context, employeeID uint) (*dto.EmployeeDTO, error) {
	employee, err := af.employeeRepo.ByID(ctx, employeeID)
	if err != nil {
		return nil, NewBusinessError("GET_EMPLOYEE_FAILED", "Failed to load employee", err)
	}
	if employee == nil {
		return nil, NewBusinessError("EMPLOYEE_NOT_FOUND", "Employee not found", ErrEmployeeNotFound)
	}

	out := ToEmployeeDTO(*employee)
	return &out, nil
}

// validateRegisterRequest checks duplicate identity constraints. Email
// comparison is case-insensitive.
func (af *AuthFlowImpl) validateRegisterRequest(ctx context.Context, request *dto.RegisterRequest) error {
	existing, err := af.employeeRepo.ByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyExists
	}

	existing, err = af.employeeRepo.ByNIC(ctx, strings.TrimSpace(request.NIC))
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrNICAlreadyExists
	}

	return nil
}

// LogAuthAttempt records an authentication event in the audit log
func (af *AuthFlowImpl) LogAuthAttempt(ctx context.Context, employee *models.Employee, action string, description string, success bool, errMsg *string, metadata *ClientMetadata) error {
	var employeeID *uint
	if employee != nil && employee.ID != 0 {
		employeeID = &employee.ID
	}

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		EmployeeID:   employeeID,
		Action:       action,
		Description:  &description,
		Success:      utils.ToPtr(success),
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		ErrorMessage: errMsg,
	}

	requestID := ctx.Value(RequestIDKey)
	if requestID != nil {
		requestIDStr, ok := requestID.(string)
		if ok {
			audit.RequestID = &requestIDStr
		}
	}

	return af.auditRepo.Save(ctx, audit)
}

func (af *AuthFlowImpl) WithRegisterTransaction(ctx context.Context, fn func(context.Context) (*dto.RegisterResponse, error)) (*dto.RegisterResponse, error) {
	var result *dto.RegisterResponse
	var fnErr error

	err := repository.WithTransaction(ctx, af.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}

func (af *AuthFlowImpl) WithLoginTransaction(ctx context.Context, fn func(context.Context) (*dto.TokenResponse, error)) (*dto.TokenResponse, error) {
	var result *dto.TokenResponse
	var fnErr error

	err := repository.WithTransaction(ctx, af.db, func(ctx context.Context) error {
		result, fnErr = fn(ctx)
		return fnErr
	})

	if err != nil {
		return nil, err
	}
	return result, fnErr
}
