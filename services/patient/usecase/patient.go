package usecase

import (
	"context"
	"strings"
	"time"

	"stillwithyou/domain"

	"github.com/google/uuid"
)

type patientUC struct {
	patientRepo domain.PatientRepo
	TimeOut     time.Duration
}

func NewPatientUseCase(repo domain.PatientRepo, timeOut time.Duration) domain.PatientUseCase {
	return &patientUC{
		patientRepo: repo,
		TimeOut:     timeOut,
	}
}

// Register validates the payload, rejects an already registered email and
// saves a fresh record. The ExistsByEmail check is a fast path only: two
// concurrent registrations with the same email both pass it, and the store's
// unique constraint rejects the second save.
func (pUC *patientUC) Register(ctx context.Context, payload *domain.RegisterPatientPayload) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	taken, err := pUC.patientRepo.ExistsByEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateEmail
	}

	patient := &domain.Patient{
		Name:         payload.Name,
		Email:        payload.Email,
		HospitalName: payload.HospitalName,
		RoomNumber:   payload.RoomNumber,
	}

	if err := pUC.patientRepo.Save(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

func (pUC *patientUC) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	patient, err := pUC.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (pUC *patientUC) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	patient, err := pUC.patientRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (pUC *patientUC) GetAll(ctx context.Context) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	patients, err := pUC.patientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// Update loads the record, overwrites only the fields present in the payload
// and saves. Email never changes here. An empty payload still refreshes
// UpdatedAt through the save.
func (pUC *patientUC) Update(ctx context.Context, id uuid.UUID, payload *domain.UpdatePatientPayload) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	patient, err := pUC.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		patient.Name = *payload.Name
	}
	if payload.HospitalName != nil {
		patient.HospitalName = payload.HospitalName
	}
	if payload.RoomNumber != nil {
		patient.RoomNumber = payload.RoomNumber
	}

	if err := pUC.patientRepo.Save(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// Delete checks existence first so an absent id surfaces as not-found. The
// check and the removal are not atomic; a racing writer between them is an
// accepted limitation, the store has no existence backstop for deletes.
func (pUC *patientUC) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	exists, err := pUC.patientRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPatientNotFound
	}

	return pUC.patientRepo.DeleteByID(ctx, id)
}
