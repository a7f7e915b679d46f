package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/finance"
	"github.com/tallerlab/taller-api/internal/domain/repository"
	"github.com/tallerlab/taller-api/pkg/apperror"
)

// LedgerService exposes the consolidated reimbursement ledger built from
// standalone expenses and internally funded work order lines
type LedgerService struct {
	expenseService *ExpenseService
	orderService   *WorkOrderService
	expenseRepo    repository.ExpenseRepository
	orderRepo      repository.WorkOrderRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	expenseService *ExpenseService,
	orderService *WorkOrderService,
	expenseRepo repository.ExpenseRepository,
	orderRepo repository.WorkOrderRepository,
) *LedgerService {
	return &LedgerService{
		expenseService: expenseService,
		orderService:   orderService,
		expenseRepo:    expenseRepo,
		orderRepo:      orderRepo,
	}
}

// LedgerView is the ledger plus its headline figure. TotalOutstanding always
// reflects the full ledger, not the filtered slice being shown.
type LedgerView struct {
	Entries          []finance.LedgerEntry `json:"entries"`
	TotalOutstanding float64               `json:"total_outstanding"`
}

// GetLedger builds the ledger, optionally narrowed to unpaid entries
func (s *LedgerService) GetLedger(ctx context.Context, onlyPending bool) (*LedgerView, error) {
	expenses, orders, err := s.expensesAndOrders(ctx)
	if err != nil {
		return nil, err
	}

	entries := finance.BuildLedger(expenses, orders)
	view := &LedgerView{
		Entries:          entries,
		TotalOutstanding: finance.TotalOutstanding(entries),
	}
	if onlyPending {
		view.Entries = finance.Pending(entries)
	}
	return view, nil
}

// ToggleLedgerEntryInput identifies the entry to toggle. A general entry
// carries an expense id; an order-item entry carries the order and item ids.
type ToggleLedgerEntryInput struct {
	Origin    finance.LedgerOrigin `json:"origin"`
	ExpenseID string               `json:"expense_id"`
	OrderID   string               `json:"order_id"`
	ItemID    uuid.UUID            `json:"item_id"`
}

// ToggleEntry flips the paid state of one ledger entry, dispatching to the
// collection the entry came from
func (s *LedgerService) ToggleEntry(ctx context.Context, input *ToggleLedgerEntryInput) error {
	switch input.Origin {
	case finance.OriginGeneral:
		_, err := s.expenseService.TogglePaid(ctx, input.ExpenseID)
		return err
	case finance.OriginOrderItem:
		_, err := s.orderService.ToggleItemReimbursed(ctx, input.OrderID, input.ItemID)
		return err
	default:
		return apperror.NewBadRequestError("Unknown ledger entry origin")
	}
}

// expensesAndOrders is a small helper for callers that need both collections
func (s *LedgerService) expensesAndOrders(ctx context.Context) ([]entity.Expense, []entity.WorkOrder, error) {
	expenses, err := s.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return expenses, orders, nil
}
