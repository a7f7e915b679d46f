package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/finance"
	"github.com/tallerlab/taller-api/internal/domain/repository"
	"github.com/tallerlab/taller-api/pkg/money"
	"github.com/xuri/excelize/v2"
)

// ReportService renders the workshop's figures as an xlsx workbook with three
// sheets: orders, line items and the consolidated expense ledger
type ReportService struct {
	orderRepo   repository.WorkOrderRepository
	expenseRepo repository.ExpenseRepository
}

// NewReportService creates a new report service
func NewReportService(orderRepo repository.WorkOrderRepository, expenseRepo repository.ExpenseRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo, expenseRepo: expenseRepo}
}

const (
	sheetOrders   = "Ordenes"
	sheetItems    = "Items"
	sheetExpenses = "Gastos Consolidados"
)

// GenerateWorkbook builds the report. An empty yearMonth covers the whole
// history; otherwise only the given "YYYY-MM" bucket is included.
func (s *ReportService) GenerateWorkbook(ctx context.Context, yearMonth string) (*bytes.Buffer, string, error) {
	var (
		orders []entity.WorkOrder
		err    error
	)
	if yearMonth == "" {
		orders, err = s.orderRepo.ListAll(ctx)
	} else {
		orders, err = s.orderRepo.ListByMonth(ctx, yearMonth)
	}
	if err != nil {
		return nil, "", err
	}

	var expenses []entity.Expense
	if yearMonth == "" {
		expenses, err = s.expenseRepo.ListAll(ctx)
	} else {
		expenses, err = s.expenseRepo.ListByMonth(ctx, yearMonth)
	}
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetOrders)
	if _, err := f.NewSheet(sheetItems); err != nil {
		return nil, "", err
	}
	if _, err := f.NewSheet(sheetExpenses); err != nil {
		return nil, "", err
	}

	if err := s.writeOrdersSheet(f, orders); err != nil {
		return nil, "", err
	}
	if err := s.writeItemsSheet(f, orders); err != nil {
		return nil, "", err
	}
	if err := s.writeExpensesSheet(f, expenses, orders); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	name := "reporte-taller.xlsx"
	if yearMonth != "" {
		name = fmt.Sprintf("reporte-taller-%s.xlsx", yearMonth)
	}
	return buf, name, nil
}

func (s *ReportService) writeOrdersSheet(f *excelize.File, orders []entity.WorkOrder) error {
	headers := []interface{}{
		"OT", "Fecha", "Cliente", "Vehiculo", "Patente", "Estado",
		"Documento", "Total Venta", "Costo Interno", "Utilidad Aprox",
	}
	if err := f.SetSheetRow(sheetOrders, "A1", &headers); err != nil {
		return err
	}

	for i, o := range orders {
		sale := finance.SaleTotal(o)
		cost := finance.CostTotal(o)
		profit := finance.EffectiveIncome(sale, o.DocumentType) - cost

		row := []interface{}{
			o.ID,
			o.Date,
			o.ClientName,
			fmt.Sprintf("%s %s", o.VehicleBrand, o.VehicleModel),
			o.VehiclePlate,
			o.Status.String(),
			o.DocumentType.String(),
			money.CLP(sale),
			money.CLP(cost),
			money.CLP(profit),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetOrders, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReportService) writeItemsSheet(f *excelize.File, orders []entity.WorkOrder) error {
	headers := []interface{}{
		"OT", "Fecha", "Tipo", "Descripcion", "Cantidad",
		"Precio Unitario", "Descuento", "Total Linea", "Costo Interno",
	}
	if err := f.SetSheetRow(sheetItems, "A1", &headers); err != nil {
		return err
	}

	rowNum := 2
	for _, o := range orders {
		for _, item := range o.Items {
			row := []interface{}{
				o.ID,
				o.Date,
				item.Type.String(),
				item.Name,
				item.Quantity,
				money.CLP(item.UnitPrice),
				money.CLP(item.Discount),
				money.CLP(finance.LineTotal(item)),
				money.CLP(finance.InternalCost(item)),
			}
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheetItems, cell, &row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func (s *ReportService) writeExpensesSheet(f *excelize.File, expenses []entity.Expense, orders []entity.WorkOrder) error {
	headers := []interface{}{
		"Fecha", "Origen", "Descripcion", "Comprador", "Proveedor",
		"Monto", "Pagado", "Fecha Pago",
	}
	if err := f.SetSheetRow(sheetExpenses, "A1", &headers); err != nil {
		return err
	}

	entries := finance.BuildLedger(expenses, orders)
	for i, e := range entries {
		paid := "No"
		if e.IsPaid {
			paid = "Si"
		}
		row := []interface{}{
			e.Date,
			e.Label,
			e.Description,
			e.Buyer,
			e.Provider,
			money.CLP(e.Amount),
			paid,
			e.PaymentDate,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetExpenses, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
