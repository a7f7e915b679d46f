package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/repository"
	"github.com/tallerlab/taller-api/pkg/apperror"
)

// BackupFile is the portable snapshot of the whole store. Collections are
// pointers so an import can tell an absent key (leave the collection alone)
// from an empty one (wipe it).
type BackupFile struct {
	Date         string                   `json:"date"`
	Orders       *[]entity.WorkOrder      `json:"orders,omitempty"`
	Expenses     *[]entity.Expense        `json:"expenses,omitempty"`
	Appointments *[]entity.Appointment    `json:"appointments,omitempty"`
	Settings     *entity.WorkshopSettings `json:"settings,omitempty"`
	Winners      *[]entity.RaffleWinner   `json:"winners,omitempty"`
}

// BackupService exports and restores full-store snapshots
type BackupService struct {
	orderRepo       repository.WorkOrderRepository
	expenseRepo     repository.ExpenseRepository
	appointmentRepo repository.AppointmentRepository
	raffleRepo      repository.RaffleRepository
	settingsRepo    repository.SettingsRepository
}

// NewBackupService creates a new backup service
func NewBackupService(
	orderRepo repository.WorkOrderRepository,
	expenseRepo repository.ExpenseRepository,
	appointmentRepo repository.AppointmentRepository,
	raffleRepo repository.RaffleRepository,
	settingsRepo repository.SettingsRepository,
) *BackupService {
	return &BackupService{
		orderRepo:       orderRepo,
		expenseRepo:     expenseRepo,
		appointmentRepo: appointmentRepo,
		raffleRepo:      raffleRepo,
		settingsRepo:    settingsRepo,
	}
}

// Export snapshots every collection into one backup file
func (s *BackupService) Export(ctx context.Context) (*BackupFile, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	winners, err := s.raffleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &BackupFile{
		Date:         time.Now().Format(time.RFC3339),
		Orders:       &orders,
		Expenses:     &expenses,
		Appointments: &appointments,
		Settings:     settings,
		Winners:      &winners,
	}, nil
}

// Import restores collections from a backup payload. Only the keys present in
// the payload are touched; malformed JSON is rejected before any write, so a
// bad file never leaves the store half restored.
func (s *BackupService) Import(ctx context.Context, data []byte) error {
	var backup BackupFile
	if err := json.Unmarshal(data, &backup); err != nil {
		return apperror.NewBadRequestError("Invalid backup file: " + err.Error())
	}

	if backup.Orders != nil {
		if err := s.orderRepo.ReplaceAll(ctx, *backup.Orders); err != nil {
			return err
		}
	}
	if backup.Expenses != nil {
		if err := s.expenseRepo.ReplaceAll(ctx, *backup.Expenses); err != nil {
			return err
		}
	}
	if backup.Appointments != nil {
		if err := s.appointmentRepo.ReplaceAll(ctx, *backup.Appointments); err != nil {
			return err
		}
	}
	if backup.Winners != nil {
		if err := s.raffleRepo.ReplaceAll(ctx, *backup.Winners); err != nil {
			return err
		}
	}
	if backup.Settings != nil {
		if err := s.settingsRepo.Save(ctx, backup.Settings); err != nil {
			return err
		}
	}

	return nil
}
