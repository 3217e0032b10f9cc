package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

type Patient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(150);not null" json:"name" valid:"required~Name is required"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email" valid:"required~Email is required,email~Invalid email format"`
	HospitalName *string   `gorm:"type:varchar(255)" json:"hospital_name"`
	RoomNumber   *string   `gorm:"type:varchar(20)" json:"room_number"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

type RegisterPatientPayload struct {
	Name         string  `json:"name" valid:"required~Name is required"`
	Email        string  `json:"email" valid:"required~Email is required,email~Invalid email format"`
	HospitalName *string `json:"hospital_name" valid:"-"`
	RoomNumber   *string `json:"room_number" valid:"-"`
}

// UpdatePatientPayload carries a partial update. A nil field is left untouched,
// a non-nil field overwrites, including overwriting with an empty string for the
// optional fields. Email is deliberately absent: it cannot change after registration.
type UpdatePatientPayload struct {
	Name         *string `json:"name"`
	HospitalName *string `json:"hospital_name"`
	RoomNumber   *string `json:"room_number"`
}

// Normalize trims the required fields and lowercases the email. Email uniqueness
// is case-insensitive: every email is stored and compared in lower case.
func (p *RegisterPatientPayload) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
}

func (p *RegisterPatientPayload) Validate() error {
	if _, err := govalidator.ValidateStruct(p); err != nil {
		return NewValidationError(govalidator.ErrorsByField(err))
	}
	return nil
}

func (p *UpdatePatientPayload) Normalize() {
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		p.Name = &trimmed
	}
}

func (p *UpdatePatientPayload) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return NewValidationError(map[string]string{"Name": "Name is required"})
	}
	return nil
}

type PatientRepo interface {
	Save(ctx context.Context, patient *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByEmail(ctx context.Context, email string) (*Patient, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]Patient, error)
}

type PatientUseCase interface {
	Register(ctx context.Context, payload *RegisterPatientPayload) (*Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByEmail(ctx context.Context, email string) (*Patient, error)
	GetAll(ctx context.Context) ([]Patient, error)
	Update(ctx context.Context, id uuid.UUID, payload *UpdatePatientPayload) (*Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
