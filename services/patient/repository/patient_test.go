package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stillwithyou/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunRepo builds the repository over a dry-run gorm session: statements
// are prepared but never executed, which is enough to exercise the identity
// and timestamp assignment Save performs before touching the database.
func newDryRunRepo(t *testing.T) domain.PatientRepo {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	assert.NoError(t, err)
	return NewPatientRepository(db)
}

func TestSave_InsertAssignsIdentity(t *testing.T) {
	repo := newDryRunRepo(t)

	patient := domain.Patient{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}

	err := repo.Save(context.Background(), &patient)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, patient.ID)
	assert.False(t, patient.CreatedAt.IsZero())
	assert.Equal(t, patient.CreatedAt, patient.UpdatedAt)
}

func TestSave_UpdateRefreshesUpdatedAtOnly(t *testing.T) {
	repo := newDryRunRepo(t)

	created := time.Now().Add(-time.Hour)
	id := uuid.New()
	patient := domain.Patient{
		ID:        id,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		CreatedAt: created,
		UpdatedAt: created,
	}

	err := repo.Save(context.Background(), &patient)
	assert.NoError(t, err)
	assert.Equal(t, id, patient.ID, "an assigned id is never reassigned")
	assert.Equal(t, created, patient.CreatedAt, "CreatedAt is set exactly once")
	assert.True(t, patient.UpdatedAt.After(patient.CreatedAt))
}

func TestTranslateSaveError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_patients_email",
	}

	err := translateSaveError(pgErr)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestTranslateSaveError_WrappedUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505"})

	err := translateSaveError(wrapped)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestTranslateSaveError_OtherPgError(t *testing.T) {
	// 23502 is not_null_violation; only unique violations become the
	// duplicate-email sentinel, everything else stays an infra failure.
	pgErr := &pgconn.PgError{Code: "23502"}

	err := translateSaveError(pgErr)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestTranslateSaveError_PlainError(t *testing.T) {
	err := translateSaveError(fmt.Errorf("connection refused"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.NotErrorIs(t, err, domain.ErrPatientNotFound)
}
