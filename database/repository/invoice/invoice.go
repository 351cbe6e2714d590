// File: database/repository/invoice/invoice.go
package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fairway/database"
	"fairway/models"
)

const queryTimeout = 5 * time.Second

// InvoiceRepository stores suppliers, issued invoices and the settings
// key/value table (company details, bank account, default WHT rate).
type InvoiceRepository interface {
	CreateSupplier(ctx context.Context, supplier models.Supplier) (*models.Supplier, error)
	GetSupplier(ctx context.Context, supplierID string) (*models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)

	CreateInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error)
	ListInvoicesForMonth(ctx context.Context, yearMonth string) ([]models.Invoice, error)
	CountInvoicesForMonth(ctx context.Context, yearMonth string) (int64, error)

	GetSetting(ctx context.Context, key string) (string, error)
	GetAllSettings(ctx context.Context) (map[string]string, error)
	PutSetting(ctx context.Context, key, value string) error
}

type mongoInvoiceRepo struct {
	supplierColl *mongo.Collection
	invoiceColl  *mongo.Collection
	settingColl  *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new MongoDB InvoiceRepository.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.DB()
	return &mongoInvoiceRepo{
		supplierColl: db.Collection("suppliers"),
		invoiceColl:  db.Collection("invoices"),
		settingColl:  db.Collection("settings"),
	}
}

func (r *mongoInvoiceRepo) CreateSupplier(ctx context.Context, supplier models.Supplier) (*models.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if _, err := r.supplierColl.InsertOne(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &supplier, nil
}

func (r *mongoInvoiceRepo) GetSupplier(ctx context.Context, supplierID string) (*models.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var supplier models.Supplier
	if err := r.supplierColl.FindOne(ctx, bson.M{"id": supplierID}).Decode(&supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *mongoInvoiceRepo) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.supplierColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer cursor.Close(ctx)

	var suppliers []models.Supplier
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *mongoInvoiceRepo) CreateInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	invoice.CreatedAt = time.Now()
	if _, err := r.invoiceColl.InsertOne(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

func (r *mongoInvoiceRepo) GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var invoice models.Invoice
	if err := r.invoiceColl.FindOne(ctx, bson.M{"id": invoiceID}).Decode(&invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ListInvoicesForMonth returns invoices dated in yearMonth ("2006-01").
func (r *mongoInvoiceRepo) ListInvoicesForMonth(ctx context.Context, yearMonth string) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"date": bson.M{"$regex": "^" + yearMonth}}
	opts := options.Find().SetSort(bson.D{{Key: "invoiceNumber", Value: 1}})
	cursor, err := r.invoiceColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *mongoInvoiceRepo) CountInvoicesForMonth(ctx context.Context, yearMonth string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.invoiceColl.CountDocuments(ctx, bson.M{"date": bson.M{"$regex": "^" + yearMonth}})
}

func (r *mongoInvoiceRepo) GetSetting(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var setting models.Setting
	if err := r.settingColl.FindOne(ctx, bson.M{"key": key}).Decode(&setting); err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (r *mongoInvoiceRepo) GetAllSettings(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.settingColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	defer cursor.Close(ctx)

	settings := make(map[string]string)
	for cursor.Next(ctx) {
		var s models.Setting
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		settings[s.Key] = s.Value
	}
	return settings, cursor.Err()
}

func (r *mongoInvoiceRepo) PutSetting(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.settingColl.ReplaceOne(ctx, bson.M{"key": key}, models.Setting{Key: key, Value: value}, opts)
	if err != nil {
		return fmt.Errorf("failed to put setting: %w", err)
	}
	return nil
}
