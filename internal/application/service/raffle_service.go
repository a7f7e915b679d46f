package service

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/repository"
	"github.com/tallerlab/taller-api/pkg/apperror"
)

// RaffleService handles promotional raffle draws and winner records
type RaffleService struct {
	raffleRepo repository.RaffleRepository
	orderRepo  repository.WorkOrderRepository
}

// NewRaffleService creates a new raffle service
func NewRaffleService(raffleRepo repository.RaffleRepository, orderRepo repository.WorkOrderRepository) *RaffleService {
	return &RaffleService{raffleRepo: raffleRepo, orderRepo: orderRepo}
}

// Draw picks a uniformly random client from the work order history and
// records them as the winner of the given prize. Each distinct client name
// counts once no matter how many orders they have.
func (s *RaffleService) Draw(ctx context.Context, prize string) (*entity.RaffleWinner, error) {
	if prize == "" {
		return nil, apperror.NewBadRequestError("Prize is required")
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type client struct {
		name  string
		phone string
	}
	seen := make(map[string]bool)
	clients := make([]client, 0, len(orders))
	for _, o := range orders {
		if o.ClientName == "" || seen[o.ClientName] {
			continue
		}
		seen[o.ClientName] = true
		clients = append(clients, client{name: o.ClientName, phone: o.ClientPhone})
	}

	if len(clients) == 0 {
		return nil, apperror.NewBadRequestError("No clients to draw from")
	}

	picked := clients[rand.IntN(len(clients))]

	winner := &entity.RaffleWinner{
		Date:        today(),
		ClientName:  picked.name,
		ClientPhone: picked.phone,
		Prize:       prize,
	}

	if err := s.raffleRepo.Create(ctx, winner); err != nil {
		return nil, err
	}
	return winner, nil
}

// ListWinners lists every winner record, most recent first
func (s *RaffleService) ListWinners(ctx context.Context) ([]entity.RaffleWinner, error) {
	return s.raffleRepo.ListAll(ctx)
}

// ToggleRedeemed flips the redemption flag on a winner record. Redeeming
// stamps today as the redemption date; un-redeeming keeps the old date.
func (s *RaffleService) ToggleRedeemed(ctx context.Context, id uuid.UUID) (*entity.RaffleWinner, error) {
	winner, err := s.raffleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, apperror.NewNotFoundError("Raffle winner")
	}

	winner.IsRedeemed = !winner.IsRedeemed
	if winner.IsRedeemed {
		winner.RedemptionDate = today()
	}

	if err := s.raffleRepo.Update(ctx, winner); err != nil {
		return nil, err
	}
	return winner, nil
}

// DeleteWinner deletes a winner record
func (s *RaffleService) DeleteWinner(ctx context.Context, id uuid.UUID) error {
	winner, err := s.raffleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if winner == nil {
		return apperror.NewNotFoundError("Raffle winner")
	}
	return s.raffleRepo.Delete(ctx, id)
}
