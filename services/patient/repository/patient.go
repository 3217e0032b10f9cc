package repository

import (
	"context"
	"errors"
	"fmt"
	"stillwithyou/domain"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(database *gorm.DB) domain.PatientRepo {
	return &patientRepository{
		db: database,
	}
}

// Save inserts when the ID is unset and updates otherwise. Timestamps are
// assigned here, at the storage boundary: CreatedAt exactly once on insert,
// UpdatedAt on every save. The unique index on email is the authoritative
// uniqueness guarantee under concurrent writers; a violation surfaces as
// domain.ErrDuplicateEmail regardless of any caller-side pre-check.
func (pr *patientRepository) Save(ctx context.Context, patient *domain.Patient) error {
	now := time.Now()

	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
		patient.CreatedAt = now
		patient.UpdatedAt = now

		if err := pr.db.WithContext(ctx).Create(patient).Error; err != nil {
			return translateSaveError(err)
		}
		return nil
	}

	patient.UpdatedAt = now

	if err := pr.db.WithContext(ctx).Save(patient).Error; err != nil {
		return translateSaveError(err)
	}
	return nil
}

func (pr *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	var patient domain.Patient

	err := pr.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("could not get patient by id: %v", err)
	}

	return &patient, nil
}

func (pr *patientRepository) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	var patient domain.Patient

	err := pr.db.WithContext(ctx).Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("could not get patient by email: %v", err)
	}

	return &patient, nil
}

func (pr *patientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := pr.db.WithContext(ctx).Model(&domain.Patient{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("could not check email existence: %v", err)
	}

	return count > 0, nil
}

func (pr *patientRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	err := pr.db.WithContext(ctx).Model(&domain.Patient{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("could not check patient existence: %v", err)
	}

	return count > 0, nil
}

// DeleteByID removes the row permanently. Deleting an absent id is a no-op
// here; the usecase layer is responsible for surfacing not-found.
func (pr *patientRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	err := pr.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Patient{}).Error
	if err != nil {
		return fmt.Errorf("could not delete patient: %v", err)
	}

	return nil
}

func (pr *patientRepository) GetAll(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient

	err := pr.db.WithContext(ctx).Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("could not get all patients: %v", err)
	}

	return patients, nil
}

// translateSaveError maps a Postgres unique violation (23505) on the email
// index to the domain sentinel. Everything else is an infrastructure failure.
func translateSaveError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicateEmail
	}
	return fmt.Errorf("could not save patient: %v", err)
}
