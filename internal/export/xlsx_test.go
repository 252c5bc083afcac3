package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.xlsx")
	rows := []view.Record{
		{Number: "C-1", Reporter: "jane", Status: "CLOSED", ManagerName: "Asha Rao", Response: "fixed"},
		{Number: "C-2", Reporter: "omar", Status: "PENDING", ManagerName: "ignored"},
	}
	if err := WriteWorkbook(path, rows); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	header, err := f.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(header) != 3 {
		t.Fatalf("expected header plus two rows, got %d rows", len(header))
	}
	if got := len(header[0]); got != len(view.BaseColumns)+4 {
		t.Fatalf("expected manager columns for a non-pending set, got %d columns", got)
	}

	mgr, err := f.GetCellValue(sheet, "H2")
	if err != nil {
		t.Fatal(err)
	}
	if mgr != "Asha Rao" {
		t.Fatalf("expected manager on closed row, got %q", mgr)
	}
	mgrPending, err := f.GetCellValue(sheet, "H3")
	if err != nil {
		t.Fatal(err)
	}
	if mgrPending != "" {
		t.Fatalf("pending row manager must be blank, got %q", mgrPending)
	}
}

func TestWriteWorkbookAllPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending.xlsx")
	rows := []view.Record{{Number: "C-1", Status: "PENDING"}}
	if err := WriteWorkbook(path, rows); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := f.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(got[0]) != len(view.BaseColumns) {
		t.Fatalf("all-pending export must not grow manager columns, got %d", len(got[0]))
	}
}
