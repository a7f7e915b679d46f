package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
)

// RaffleRepository defines the interface for raffle winner records
type RaffleRepository interface {
	Create(ctx context.Context, winner *entity.RaffleWinner) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RaffleWinner, error)
	Update(ctx context.Context, winner *entity.RaffleWinner) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListAll returns winners ordered by date descending
	ListAll(ctx context.Context) ([]entity.RaffleWinner, error)
	ReplaceAll(ctx context.Context, winners []entity.RaffleWinner) error
}
