package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	domainRepo "github.com/tallerlab/taller-api/internal/domain/repository"
	"gorm.io/gorm"
)

type raffleRepository struct {
	db *gorm.DB
}

// NewRaffleRepository creates a new raffle repository
func NewRaffleRepository(db *gorm.DB) domainRepo.RaffleRepository {
	return &raffleRepository{db: db}
}

func (r *raffleRepository) Create(ctx context.Context, winner *entity.RaffleWinner) error {
	return r.db.WithContext(ctx).Create(winner).Error
}

func (r *raffleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RaffleWinner, error) {
	var winner entity.RaffleWinner
	err := r.db.WithContext(ctx).First(&winner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &winner, nil
}

func (r *raffleRepository) Update(ctx context.Context, winner *entity.RaffleWinner) error {
	return r.db.WithContext(ctx).Save(winner).Error
}

func (r *raffleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.RaffleWinner{}, "id = ?", id).Error
}

func (r *raffleRepository) ListAll(ctx context.Context) ([]entity.RaffleWinner, error) {
	var winners []entity.RaffleWinner
	err := r.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&winners).Error
	return winners, err
}

func (r *raffleRepository) ReplaceAll(ctx context.Context, winners []entity.RaffleWinner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.RaffleWinner{}).Error; err != nil {
			return err
		}
		if len(winners) == 0 {
			return nil
		}
		return tx.Create(&winners).Error
	})
}
