package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiber-marketplace-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error)
	FindSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.CartSummary, error)
	Insert(ctx context.Context, cart *models.Cart) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, cart *models.Cart) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(collection *mongo.Collection) CartRepository {
	return &mongoCartRepository{collection: collection}
}

func (m *mongoCartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &cart, nil
}

// FindSummariesByIDs resolves a user's cart references to the restricted
// products+status projection, preserving the order of the reference list.
// References to carts that no longer exist are skipped.
func (m *mongoCartRepository) FindSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.CartSummary, error) {
	summaries := []models.CartSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}

	opts := options.Find().SetProjection(bson.M{"products": 1, "status": 1})
	cursor, err := m.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch carts: %w", err)
	}

	found := []models.CartSummary{}
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode carts: %w", err)
	}

	byID := make(map[primitive.ObjectID]models.CartSummary, len(found))
	for _, summary := range found {
		byID[summary.ID] = summary
	}
	for _, id := range ids {
		if summary, ok := byID[id]; ok {
			summaries = append(summaries, summary)
		}
	}
	return summaries, nil
}

func (m *mongoCartRepository) Insert(ctx context.Context, cart *models.Cart) (primitive.ObjectID, error) {
	now := time.Now()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if cart.Products == nil {
		cart.Products = []models.CartProduct{}
	}

	result, err := m.collection.InsertOne(ctx, cart)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert cart: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (m *mongoCartRepository) Replace(ctx context.Context, id primitive.ObjectID, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	result, err := m.collection.ReplaceOne(ctx, bson.M{"_id": id}, cart)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}

func (m *mongoCartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}
