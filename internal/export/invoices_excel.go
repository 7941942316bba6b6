package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/clinicstack/clinic-manager/internal/models"
)

var invoiceExportHeader = []string{
	"Invoice No",
	"Date",
	"Patient",
	"Currency",
	"Subtotal",
	"Tax",
	"Total",
	"Status",
}

// InvoicesExcel renders the workspace's invoices as an xlsx workbook.
func InvoicesExcel(invoices []models.Invoice) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := "Invoices"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for col, h := range invoiceExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}

	for row, inv := range invoices {
		values := []any{
			inv.InvoiceNo,
			inv.CreatedAt.Format("2006-01-02"),
			inv.Patient.Name,
			inv.Currency,
			inv.Subtotal,
			inv.Tax,
			inv.Total,
			inv.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
