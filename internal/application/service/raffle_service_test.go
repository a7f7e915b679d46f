package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerlab/taller-api/internal/domain/entity"
)

func seedOrdersForDraw(ctx context.Context, repo *fakeWorkOrderRepo) {
	repo.Create(ctx, &entity.WorkOrder{ID: "5090", Date: "2025-01-10", ClientName: "Ana", ClientPhone: "+56 9 1111 1111"})
	repo.Create(ctx, &entity.WorkOrder{ID: "5091", Date: "2025-02-10", ClientName: "Pedro"})
	// Repeat customer: must count once in the pool
	repo.Create(ctx, &entity.WorkOrder{ID: "5092", Date: "2025-03-10", ClientName: "Ana", ClientPhone: "+56 9 1111 1111"})
}

func TestDrawPicksClientFromOrders(t *testing.T) {
	ctx := context.Background()
	orderRepo := newFakeWorkOrderRepo()
	seedOrdersForDraw(ctx, orderRepo)
	svc := NewRaffleService(newFakeRaffleRepo(), orderRepo)

	winner, err := svc.Draw(ctx, "Cambio de aceite gratis")
	require.NoError(t, err)
	assert.Contains(t, []string{"Ana", "Pedro"}, winner.ClientName)
	assert.Equal(t, "Cambio de aceite gratis", winner.Prize)
	assert.Equal(t, today(), winner.Date)
	assert.False(t, winner.IsRedeemed)
}

func TestDrawRequiresPrizeAndClients(t *testing.T) {
	ctx := context.Background()
	svc := NewRaffleService(newFakeRaffleRepo(), newFakeWorkOrderRepo())

	_, err := svc.Draw(ctx, "")
	assert.Error(t, err)

	_, err = svc.Draw(ctx, "Lavado gratis")
	assert.Error(t, err)
}

func TestToggleRedeemedKeepsStaleDate(t *testing.T) {
	ctx := context.Background()
	orderRepo := newFakeWorkOrderRepo()
	seedOrdersForDraw(ctx, orderRepo)
	svc := NewRaffleService(newFakeRaffleRepo(), orderRepo)

	winner, err := svc.Draw(ctx, "Lavado gratis")
	require.NoError(t, err)

	winner, err = svc.ToggleRedeemed(ctx, winner.ID)
	require.NoError(t, err)
	assert.True(t, winner.IsRedeemed)
	assert.Equal(t, today(), winner.RedemptionDate)

	winner, err = svc.ToggleRedeemed(ctx, winner.ID)
	require.NoError(t, err)
	assert.False(t, winner.IsRedeemed)
	assert.Equal(t, today(), winner.RedemptionDate)
}

func TestDeleteWinner(t *testing.T) {
	ctx := context.Background()
	orderRepo := newFakeWorkOrderRepo()
	seedOrdersForDraw(ctx, orderRepo)
	raffleRepo := newFakeRaffleRepo()
	svc := NewRaffleService(raffleRepo, orderRepo)

	winner, err := svc.Draw(ctx, "Lavado gratis")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWinner(ctx, winner.ID))

	winners, _ := svc.ListWinners(ctx)
	assert.Empty(t, winners)
}
