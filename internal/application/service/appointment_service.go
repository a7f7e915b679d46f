package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
	"github.com/tallerlab/taller-api/internal/domain/repository"
	"github.com/tallerlab/taller-api/pkg/apperror"
)

// AppointmentService handles appointment scheduling operations
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appointmentRepo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo}
}

// CreateAppointmentInput represents the input for creating an appointment
type CreateAppointmentInput struct {
	Date       string
	Time       string
	ClientName string
	Plate      string
	Issue      string
}

// CreateAppointment creates a new appointment in pending state
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	if input.Date == "" {
		input.Date = today()
	}

	appointment := &entity.Appointment{
		Date:       input.Date,
		Time:       input.Time,
		ClientName: input.ClientName,
		Plate:      input.Plate,
		Issue:      input.Issue,
		Status:     enum.AppointmentPending,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListAppointmentsInput represents the input for listing appointments
type ListAppointmentsInput struct {
	Date   string
	Status *enum.AppointmentStatus
}

// ListAppointments lists appointments with filtering, soonest first
func (s *AppointmentService) ListAppointments(ctx context.Context, input *ListAppointmentsInput) ([]entity.Appointment, error) {
	params := &repository.AppointmentFilterParams{
		Date:   input.Date,
		Status: input.Status,
	}
	return s.appointmentRepo.List(ctx, params)
}

// UpdateAppointmentStatus changes the status of an appointment
func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	appointment.Status = status

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// DeleteAppointment deletes an appointment
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}
	return s.appointmentRepo.Delete(ctx, id)
}
