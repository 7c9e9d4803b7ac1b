package businessflow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return fmt.Errorf("insert employees: %w", &pgconn.PgError{
		Code:           pgUniqueViolation,
		ConstraintName: constraint,
	})
}

func TestDuplicateEmployeeIdentity(t *testing.T) {
	t.Run("EmailIndex", func(t *testing.T) {
		err := duplicateEmployeeIdentity(uniqueViolation("uk_employees_email_lower"))
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("NICIndex", func(t *testing.T) {
		err := duplicateEmployeeIdentity(uniqueViolation("uk_employees_nic"))
		assert.ErrorIs(t, err, ErrNICAlreadyExists)
	})

	t.Run("OtherConstraint", func(t *testing.T) {
		assert.Nil(t, duplicateEmployeeIdentity(uniqueViolation("uk_employees_uuid")))
	})

	t.Run("OtherPgError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23503"})
		assert.Nil(t, duplicateEmployeeIdentity(err))
	})

	t.Run("PlainError", func(t *testing.T) {
		assert.Nil(t, duplicateEmployeeIdentity(errors.New("connection refused")))
	})
}
