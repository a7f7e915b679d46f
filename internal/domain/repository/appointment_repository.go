package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
)

// AppointmentFilterParams holds filtering options for listing appointments
type AppointmentFilterParams struct {
	Date   string
	Status *enum.AppointmentStatus
}

// AppointmentRepository defines the interface for appointment operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *AppointmentFilterParams) ([]entity.Appointment, error)
	ListAll(ctx context.Context) ([]entity.Appointment, error)
	ReplaceAll(ctx context.Context, appointments []entity.Appointment) error
}
