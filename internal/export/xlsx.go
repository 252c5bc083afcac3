// Package export writes normalized complaint records to an xlsx workbook
// for offline reporting.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

const sheet = "Complaints"

// WriteWorkbook writes rows to path. The column set follows the same rule
// as the on-screen tables: manager and response columns appear only when
// some row is non-pending, and cells are blanked by status the same way.
func WriteWorkbook(path string, rows []view.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	showManager := view.HasNonPending(rows, nil)
	header := view.Columns(showManager)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cells := []any{r.Number, r.Reporter, r.Mobile, r.Address, r.Text, r.Date, r.Status}
		if showManager {
			cells = append(cells,
				view.ManagerCell(r.Status, r.ManagerName),
				view.ManagerCell(r.Status, r.ManagerEmail),
				view.ManagerCell(r.Status, r.ManagerMobile),
				view.ResponseCell(r.Status, r.Response),
			)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
