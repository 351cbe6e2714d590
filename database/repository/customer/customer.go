// File: database/repository/customer/customer.go
package customerRepo

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

// CustomerRepository stores CRM records.
type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (*models.Customer, error)
	GetByID(ctx context.Context, customerID string) (*models.Customer, error)
	Update(ctx context.Context, customer models.Customer) error
	Delete(ctx context.Context, customerID string) error
	Search(ctx context.Context, query string, limit int64) ([]models.Customer, error)
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a new MongoDB CustomerRepository.
func NewMongoCustomerRepo() CustomerRepository {
	return &mongoCustomerRepo{coll: database.DB().Collection("customers")}
}

func (r *mongoCustomerRepo) Create(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) GetByID(ctx context.Context, customerID string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": customerID}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) Update(ctx context.Context, customer models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	customer.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": customer.ID}, customer)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCustomerRepo) Delete(ctx context.Context, customerID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": customerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Search matches name, email or phone, case-insensitive.
func (r *mongoCustomerRepo) Search(ctx context.Context, query string, limit int64) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 25
	}
	pattern := bson.M{"$regex": query, "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"email": pattern},
		{"phoneNumber": pattern},
	}}
	opts := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
