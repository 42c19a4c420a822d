package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"spendlog/internal/core"
)

func sample() []core.Expense {
	return []core.Expense{
		{
			ID:       "1",
			Title:    "Grocery Shopping",
			Amount:   125.50,
			Category: core.CategoryFood,
			Date:     core.NewDate(2026, time.February, 25),
			Payment:  core.PaymentCreditCard,
			Notes:    "",
		},
		{
			ID:       "2",
			Title:    "Uber to Airport",
			Amount:   45,
			Category: core.CategoryTransport,
			Date:     core.NewDate(2026, time.February, 24),
			Payment:  core.PaymentDigitalWallet,
			Notes:    "work trip",
		},
	}
}

func TestCSVShape(t *testing.T) {
	got := CSV(sample())
	want := "Title,Amount,Category,Date,Payment,Notes\n" +
		`"Grocery Shopping",125.5,Food & Dining,2026-02-25,Credit Card,""` + "\n" +
		`"Uber to Airport",45,Transport,2026-02-24,Digital Wallet,"work trip"`
	if got != want {
		t.Fatalf("CSV mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestCSVEmptyList(t *testing.T) {
	got := CSV(nil)
	if got != "Title,Amount,Category,Date,Payment,Notes\n" {
		t.Fatalf("empty export should be the header only, got %q", got)
	}
}

func TestCSVUnknownCategoryFallsBack(t *testing.T) {
	list := sample()
	list[0].Category = "mystery"
	got := CSV(list)
	if !strings.Contains(got, ",Other,") {
		t.Fatalf("unknown category should render as Other: %q", got)
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := XLSX(&buf, sample()); err != nil {
		t.Fatalf("XLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	// Header + 2 records + summary.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Title" || rows[0][5] != "Notes" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Grocery Shopping" || rows[1][2] != "Food & Dining" {
		t.Fatalf("unexpected first record row: %v", rows[1])
	}
	if rows[3][0] != "Total" {
		t.Fatalf("missing summary row: %v", rows[3])
	}
}
