package invoice

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	invoiceRepo "fairway/database/repository/invoice"
	"fairway/models"
)

// Settings keys, seeded on startup when absent.
const (
	SettingDefaultWHTRate = "default_wht_rate"
	SettingCompanyName    = "company_name"
	SettingBankName       = "bank_name"
	SettingBankAccount    = "bank_account_number"
)

// Service issues supplier invoices with withholding tax deducted at source
// and owns the venue settings table.
type Service interface {
	CreateInvoice(ctx context.Context, supplierID, date string, items []models.InvoiceItem, whtRate *float64) (*models.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error)
	ListMonth(ctx context.Context, yearMonth string) ([]models.Invoice, error)
	SeedDefaults(ctx context.Context) error
}

type DefaultService struct {
	Repo   invoiceRepo.InvoiceRepository
	Logger *zap.Logger
}

// Totals holds the computed money columns of an invoice.
type Totals struct {
	Subtotal  float64
	WHTAmount float64
	Total     float64
}

// ComputeTotals sums the line items and deducts withholding tax: the WHT
// amount is subtotal x rate/100, the payable total is subtotal minus WHT.
// Money values round to 2 decimals. Items with no description or a
// non-positive amount are ignored, like the source system ignored blank form
// rows.
func ComputeTotals(items []models.InvoiceItem, whtRate float64) (Totals, []models.InvoiceItem) {
	var kept []models.InvoiceItem
	subtotal := 0.0
	for _, item := range items {
		if item.Description == "" || item.Amount <= 0 {
			continue
		}
		kept = append(kept, item)
		subtotal += item.Amount
	}
	wht := round2(subtotal * whtRate / 100)
	return Totals{
		Subtotal:  round2(subtotal),
		WHTAmount: wht,
		Total:     round2(subtotal - wht),
	}, kept
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NextInvoiceNumber formats the per-month sequence: INV-YYYYMM-NNN.
func NextInvoiceNumber(date time.Time, existingInMonth int64) string {
	return fmt.Sprintf("INV-%s-%03d", date.Format("200601"), existingInMonth+1)
}

func (s *DefaultService) CreateInvoice(ctx context.Context, supplierID, date string, items []models.InvoiceItem, whtRate *float64) (*models.Invoice, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice date %q: %w", date, err)
	}
	if _, err := s.Repo.GetSupplier(ctx, supplierID); err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	rate := 3.0
	if whtRate != nil {
		rate = *whtRate
	} else if stored, err := s.Repo.GetSetting(ctx, SettingDefaultWHTRate); err == nil {
		if _, scanErr := fmt.Sscanf(stored, "%f", &rate); scanErr != nil {
			rate = 3.0
		}
	}

	totals, kept := ComputeTotals(items, rate)
	if len(kept) == 0 {
		return nil, fmt.Errorf("cannot create an invoice with no valid line items")
	}

	count, err := s.Repo.CountInvoicesForMonth(ctx, day.Format("2006-01"))
	if err != nil {
		return nil, fmt.Errorf("failed to number invoice: %w", err)
	}

	created, err := s.Repo.CreateInvoice(ctx, models.Invoice{
		InvoiceNumber: NextInvoiceNumber(day, count),
		SupplierID:    supplierID,
		Date:          date,
		Items:         kept,
		WHTRate:       rate,
		Subtotal:      totals.Subtotal,
		WHTAmount:     totals.WHTAmount,
		Total:         totals.Total,
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("invoice created",
		zap.String("invoiceNumber", created.InvoiceNumber),
		zap.Float64("total", created.Total))
	return created, nil
}

func (s *DefaultService) GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	return s.Repo.GetInvoice(ctx, invoiceID)
}

func (s *DefaultService) ListMonth(ctx context.Context, yearMonth string) ([]models.Invoice, error) {
	return s.Repo.ListInvoicesForMonth(ctx, yearMonth)
}

// SeedDefaults inserts the settings rows the console expects, leaving any
// existing values alone.
func (s *DefaultService) SeedDefaults(ctx context.Context) error {
	defaults := map[string]string{
		SettingDefaultWHTRate: "3.00",
		SettingCompanyName:    "",
		SettingBankName:       "",
		SettingBankAccount:    "",
	}
	for key, value := range defaults {
		if _, err := s.Repo.GetSetting(ctx, key); err == mongo.ErrNoDocuments {
			if err := s.Repo.PutSetting(ctx, key, value); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
