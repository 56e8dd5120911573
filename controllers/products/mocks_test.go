package products_test

import (
	"context"
	"sync"

	"fiber-marketplace-api/models"
	"fiber-marketplace-api/queries"
	"fiber-marketplace-api/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockProductRepository keeps products in insertion order and mirrors the
// push/pull semantics of the mongo implementation.
type mockProductRepository struct {
	m         sync.RWMutex
	byID      map[primitive.ObjectID]models.Product
	order     []primitive.ObjectID
	lastQuery queries.Query
	err       error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{byID: map[primitive.ObjectID]models.Product{}}
}

func (m *mockProductRepository) FindAll(context.Context) ([]models.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	products := []models.Product{}
	for _, id := range m.order {
		products = append(products, m.byID[id])
	}
	return products, nil
}

func (m *mockProductRepository) FindPage(_ context.Context, query queries.Query) (int64, []models.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return 0, nil, m.err
	}
	m.lastQuery = query

	total := int64(len(m.order))
	start := query.Skip
	if start > total {
		start = total
	}
	end := start + query.Limit
	if end > total {
		end = total
	}

	page := []models.Product{}
	for _, id := range m.order[start:end] {
		page = append(page, m.byID[id])
	}
	return total, page, nil
}

func (m *mockProductRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	return &product, nil
}

func (m *mockProductRepository) Insert(_ context.Context, product *models.Product) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	product.ID = primitive.NewObjectID()
	if product.Reviews == nil {
		product.Reviews = []models.Review{}
	}
	m.byID[product.ID] = *product
	m.order = append(m.order, product.ID)
	return product.ID, nil
}

func (m *mockProductRepository) Replace(_ context.Context, id primitive.ObjectID, product *models.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrProductNotFound
	}
	product.ID = id
	m.byID[id] = *product
	return nil
}

func (m *mockProductRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrProductNotFound
	}
	delete(m.byID, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockProductRepository) PushReview(_ context.Context, id primitive.ObjectID, review models.Review) (*models.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	review.ID = primitive.NewObjectID()
	product.Reviews = append(product.Reviews, review)
	m.byID[id] = product
	return &product, nil
}

func (m *mockProductRepository) PullReview(_ context.Context, id, reviewID primitive.ObjectID) (*models.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	for i, review := range product.Reviews {
		if review.ID == reviewID {
			product.Reviews = append(product.Reviews[:i], product.Reviews[i+1:]...)
			break
		}
	}
	m.byID[id] = product
	return &product, nil
}

func (m *mockProductRepository) SetReviews(_ context.Context, id primitive.ObjectID, reviews []models.Review) (*models.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	product.Reviews = reviews
	m.byID[id] = product
	return &product, nil
}
