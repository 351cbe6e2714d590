package invoice

import (
	"testing"
	"time"

	"fairway/models"
)

func TestComputeTotals(t *testing.T) {
	items := []models.InvoiceItem{
		{Description: "Coaching package", Amount: 12000},
		{Description: "Bay rental", Amount: 3000},
		{Description: "", Amount: 100},          // blank rows are dropped
		{Description: "Voided line", Amount: 0}, // non-positive amounts too
	}

	totals, kept := ComputeTotals(items, 3.0)
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept items, got %d", len(kept))
	}
	if totals.Subtotal != 15000 {
		t.Errorf("Subtotal = %v, want 15000", totals.Subtotal)
	}
	if totals.WHTAmount != 450 {
		t.Errorf("WHTAmount = %v, want 450", totals.WHTAmount)
	}
	if totals.Total != 14550 {
		t.Errorf("Total = %v, want 14550", totals.Total)
	}
}

func TestComputeTotals_ZeroRate(t *testing.T) {
	totals, _ := ComputeTotals([]models.InvoiceItem{{Description: "x", Amount: 100}}, 0)
	if totals.WHTAmount != 0 || totals.Total != 100 {
		t.Fatalf("zero rate must deduct nothing, got %+v", totals)
	}
}

func TestNextInvoiceNumber(t *testing.T) {
	date := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	if got := NextInvoiceNumber(date, 0); got != "INV-202608-001" {
		t.Errorf("first invoice = %q, want INV-202608-001", got)
	}
	if got := NextInvoiceNumber(date, 41); got != "INV-202608-042" {
		t.Errorf("42nd invoice = %q, want INV-202608-042", got)
	}
}
