package finance

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/enum"
)

// LedgerOrigin identifies which collection a ledger entry came from
type LedgerOrigin string

const (
	OriginGeneral   LedgerOrigin = "general"
	OriginOrderItem LedgerOrigin = "order-item"
)

// LedgerEntry is one row of the consolidated reimbursement ledger: money the
// workshop owes whoever fronted cash for a purchase.
type LedgerEntry struct {
	Origin        LedgerOrigin `json:"origin"`
	ExpenseID     string       `json:"expense_id,omitempty"`
	ParentOrderID string       `json:"parent_order_id,omitempty"`
	ItemID        uuid.UUID    `json:"item_id,omitempty"`
	Date          string       `json:"date"`
	Description   string       `json:"description"`
	Amount        float64      `json:"amount"`
	Buyer         string       `json:"buyer"`
	Provider      string       `json:"provider"`
	IsPaid        bool         `json:"is_paid"`
	PaymentDate   string       `json:"payment_date,omitempty"`
	Label         string       `json:"label"`
}

// BuildLedger merges standalone expenses with internally funded work order
// lines into one ledger, most recent first. An order line qualifies when it
// is an expense line or carries an internal cost, and someone is named as the
// buyer; ordinary customer-facing parts and labor stay out.
func BuildLedger(expenses []entity.Expense, orders []entity.WorkOrder) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(expenses))

	for _, e := range expenses {
		label := "Gasto General"
		if e.Category == enum.ExpenseInsumos {
			label = "Insumos Taller"
		}
		entries = append(entries, LedgerEntry{
			Origin:      OriginGeneral,
			ExpenseID:   e.ID,
			Date:        e.Date,
			Description: e.Notes,
			Amount:      num(e.Amount),
			Buyer:       e.BuyerName,
			Provider:    e.Provider,
			IsPaid:      e.IsPaid,
			PaymentDate: e.PaymentDate,
			Label:       label,
		})
	}

	for _, o := range orders {
		for _, item := range o.Items {
			if item.Buyer == "" {
				continue
			}
			if item.Type != enum.ItemExpense && num(item.CostPrice) <= 0 {
				continue
			}
			amount := InternalCost(item)
			if amount == 0 {
				amount = GrossSale(item)
			}
			entries = append(entries, LedgerEntry{
				Origin:        OriginOrderItem,
				ParentOrderID: o.ID,
				ItemID:        item.ID,
				Date:          o.Date,
				Description:   item.Name,
				Amount:        amount,
				Buyer:         item.Buyer,
				Provider:      item.Provider,
				IsPaid:        item.IsReimbursed,
				PaymentDate:   item.ReimbursementDate,
				Label:         fmt.Sprintf("OT #%s", o.ID),
			})
		}
	}

	// Descending by date, ties keep input order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries
}

// Pending returns only the unpaid entries of a ledger.
func Pending(entries []LedgerEntry) []LedgerEntry {
	pending := make([]LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsPaid {
			pending = append(pending, e)
		}
	}
	return pending
}

// TotalOutstanding sums the unpaid amounts of a ledger. Callers must pass the
// full unfiltered ledger so the pending badge stays truthful whichever filter
// view is on screen.
func TotalOutstanding(entries []LedgerEntry) float64 {
	var total float64
	for _, e := range entries {
		if !e.IsPaid {
			total += e.Amount
		}
	}
	return total
}
