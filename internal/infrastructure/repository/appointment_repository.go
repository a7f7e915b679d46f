package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	domainRepo "github.com/tallerlab/taller-api/internal/domain/repository"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) List(ctx context.Context, params *domainRepo.AppointmentFilterParams) ([]entity.Appointment, error) {
	var appointments []entity.Appointment

	query := r.db.WithContext(ctx).Model(&entity.Appointment{})
	if params.Date != "" {
		query = query.Where("date = ?", params.Date)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	err := query.Order("date ASC, time ASC").Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).Order("date ASC, time ASC").Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) ReplaceAll(ctx context.Context, appointments []entity.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		if len(appointments) == 0 {
			return nil
		}
		return tx.Create(&appointments).Error
	})
}
