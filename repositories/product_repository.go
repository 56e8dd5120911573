package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiber-marketplace-api/models"
	"fiber-marketplace-api/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindPage(ctx context.Context, query queries.Query) (int64, []models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.Product, error)
	PullReview(ctx context.Context, id, reviewID primitive.ObjectID) (*models.Product, error)
	SetReviews(ctx context.Context, id primitive.ObjectID, reviews []models.Review) (*models.Product, error)
}

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(collection *mongo.Collection) ProductRepository {
	return &mongoProductRepository{collection: collection}
}

func (m *mongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (m *mongoProductRepository) FindPage(ctx context.Context, query queries.Query) (int64, []models.Product, error) {
	total, err := m.collection.CountDocuments(ctx, query.Criteria)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count products: %w", err)
	}

	findOpts := options.Find().SetSkip(query.Skip).SetLimit(query.Limit)
	if len(query.Sort) > 0 {
		findOpts.SetSort(query.Sort)
	}
	if len(query.Fields) > 0 {
		findOpts.SetProjection(query.Fields)
	}

	cursor, err := m.collection.Find(ctx, query.Criteria, findOpts)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to page products: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return 0, nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return total, products, nil
}

func (m *mongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (m *mongoProductRepository) Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Reviews == nil {
		product.Reviews = []models.Review{}
	}

	result, err := m.collection.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert product: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (m *mongoProductRepository) Replace(ctx context.Context, id primitive.ObjectID, product *models.Product) error {
	product.UpdatedAt = time.Now()

	result, err := m.collection.ReplaceOne(ctx, bson.M{"_id": id}, product)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (m *mongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (m *mongoProductRepository) PushReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.Product, error) {
	review.ID = primitive.NewObjectID()

	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return m.findOneAndUpdate(ctx, id, update)
}

// PullReview removes the matching review. The pull is a no-op when the
// review id is not present; the product comes back unchanged.
func (m *mongoProductRepository) PullReview(ctx context.Context, id, reviewID primitive.ObjectID) (*models.Product, error) {
	update := bson.M{
		"$pull": bson.M{"reviews": bson.M{"_id": reviewID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return m.findOneAndUpdate(ctx, id, update)
}

func (m *mongoProductRepository) SetReviews(ctx context.Context, id primitive.ObjectID, reviews []models.Review) (*models.Product, error) {
	update := bson.M{
		"$set": bson.M{"reviews": reviews, "updatedAt": time.Now()},
	}
	return m.findOneAndUpdate(ctx, id, update)
}

func (m *mongoProductRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := m.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}
