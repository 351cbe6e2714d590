package models

import "time"

// Supplier is a payee the venue issues withholding-tax invoices to.
type Supplier struct {
	ID                 string  `bson:"id" json:"id"`
	Name               string  `bson:"name" json:"name"`
	AddressLine1       string  `bson:"addressLine1,omitempty" json:"addressLine1,omitempty"`
	AddressLine2       string  `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	TaxID              string  `bson:"taxId,omitempty" json:"taxId,omitempty"`
	DefaultDescription string  `bson:"defaultDescription,omitempty" json:"defaultDescription,omitempty"`
	DefaultUnitPrice   float64 `bson:"defaultUnitPrice,omitempty" json:"defaultUnitPrice,omitempty"`
}

// InvoiceItem is one invoice line.
type InvoiceItem struct {
	Description string  `bson:"description" json:"description"`
	Amount      float64 `bson:"amount" json:"amount"`
}

// Invoice is a supplier invoice with Thai withholding tax deducted at source.
// Subtotal, WHTAmount and Total are computed by the invoice service, not
// accepted from clients.
type Invoice struct {
	ID            string        `bson:"id" json:"id"`
	InvoiceNumber string        `bson:"invoiceNumber" json:"invoiceNumber"` // e.g. "INV-202608-007"
	SupplierID    string        `bson:"supplierId" json:"supplierId"`
	Date          string        `bson:"date" json:"date"` // "2006-01-02"
	Items         []InvoiceItem `bson:"items" json:"items"`
	WHTRate       float64       `bson:"whtRate" json:"whtRate"` // percent, e.g. 3.0
	Subtotal      float64       `bson:"subtotal" json:"subtotal"`
	WHTAmount     float64       `bson:"whtAmount" json:"whtAmount"`
	Total         float64       `bson:"total" json:"total"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}

// Setting is one key/value pair of venue configuration (company address, bank
// details, default WHT rate).
type Setting struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}
