package service

import (
	"context"

	"github.com/tallerlab/taller-api/internal/config"
	"github.com/tallerlab/taller-api/internal/domain/finance"
	"github.com/tallerlab/taller-api/internal/domain/repository"
	"github.com/tallerlab/taller-api/pkg/apperror"
)

// SummaryService computes the monthly dashboard figures and the F29
// pre-declaration estimate
type SummaryService struct {
	orderRepo   repository.WorkOrderRepository
	expenseRepo repository.ExpenseRepository
	taxCfg      config.TaxConfig
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	orderRepo repository.WorkOrderRepository,
	expenseRepo repository.ExpenseRepository,
	taxCfg config.TaxConfig,
) *SummaryService {
	return &SummaryService{
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		taxCfg:      taxCfg,
	}
}

// MonthlySummary aggregates one calendar month ("2025-08") of orders and
// expenses into the dashboard figures
func (s *SummaryService) MonthlySummary(ctx context.Context, yearMonth string) (*finance.MonthlySummary, error) {
	if yearMonth == "" {
		return nil, apperror.NewBadRequestError("Month is required, format YYYY-MM")
	}

	orders, err := s.orderRepo.ListByMonth(ctx, yearMonth)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByMonth(ctx, yearMonth)
	if err != nil {
		return nil, err
	}

	summary := finance.Summarize(orders, expenses, yearMonth)
	return &summary, nil
}

// F29View is the monthly summary extended with the estimated F29 line items.
// PPM is the provisional income tax payment, a flat rate on the declared net.
type F29View struct {
	finance.MonthlySummary

	PPMRate      float64 `json:"ppm_rate"`
	PPMEstimate  float64 `json:"ppm_estimate"`
	TotalToPay   float64 `json:"total_to_pay"`
	HasRemanente bool    `json:"has_remanente"`
	Remanente    float64 `json:"remanente"`
}

// F29Estimate builds the estimated F29 declaration for one month. A negative
// IVA balance becomes remanente carried to the next period instead of a
// negative payment.
func (s *SummaryService) F29Estimate(ctx context.Context, yearMonth string) (*F29View, error) {
	summary, err := s.MonthlySummary(ctx, yearMonth)
	if err != nil {
		return nil, err
	}

	view := &F29View{
		MonthlySummary: *summary,
		PPMRate:        s.taxCfg.PPMRate,
		PPMEstimate:    summary.TotalSalesNetTaxable * s.taxCfg.PPMRate,
	}

	ivaDue := summary.IVABalance
	if ivaDue < 0 {
		view.HasRemanente = true
		view.Remanente = -ivaDue
		ivaDue = 0
	}
	view.TotalToPay = ivaDue + view.PPMEstimate

	return view, nil
}
