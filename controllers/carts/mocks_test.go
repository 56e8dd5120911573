package carts_test

import (
	"context"
	"sync"

	"fiber-marketplace-api/models"
	"fiber-marketplace-api/queries"
	"fiber-marketplace-api/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepository struct {
	m     sync.RWMutex
	byID  map[primitive.ObjectID]models.User
	order []primitive.ObjectID
	err   error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{byID: map[primitive.ObjectID]models.User{}}
}

func (m *mockUserRepository) FindAll(context.Context) ([]models.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	users := []models.User{}
	for _, id := range m.order {
		users = append(users, m.byID[id])
	}
	return users, nil
}

func (m *mockUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

func (m *mockUserRepository) FindSummaryByID(_ context.Context, id primitive.ObjectID) (*models.UserSummary, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	age := 0
	if user.Age != nil {
		age = *user.Age
	}
	return &models.UserSummary{ID: user.ID, FirstName: user.FirstName, LastName: user.LastName, Age: age}, nil
}

func (m *mockUserRepository) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	user.ID = primitive.NewObjectID()
	if user.Carts == nil {
		user.Carts = []primitive.ObjectID{}
	}
	m.byID[user.ID] = *user
	m.order = append(m.order, user.ID)
	return user.ID, nil
}

func (m *mockUserRepository) Replace(_ context.Context, id primitive.ObjectID, user *models.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrUserNotFound
	}
	user.ID = id
	m.byID[id] = *user
	return nil
}

func (m *mockUserRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrUserNotFound
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

func (m *mockUserRepository) PushCart(_ context.Context, userID, cartID primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	user, ok := m.byID[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Carts = append(user.Carts, cartID)
	m.byID[userID] = user
	return nil
}

type mockCartRepository struct {
	m    sync.RWMutex
	byID map[primitive.ObjectID]models.Cart
	err  error
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{byID: map[primitive.ObjectID]models.Cart{}}
}

func (m *mockCartRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrCartNotFound
	}
	return &cart, nil
}

func (m *mockCartRepository) FindSummariesByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.CartSummary, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	summaries := []models.CartSummary{}
	for _, id := range ids {
		if cart, ok := m.byID[id]; ok {
			summaries = append(summaries, models.CartSummary{ID: cart.ID, Products: cart.Products, Status: cart.Status})
		}
	}
	return summaries, nil
}

func (m *mockCartRepository) Insert(_ context.Context, cart *models.Cart) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	cart.ID = primitive.NewObjectID()
	if cart.Products == nil {
		cart.Products = []models.CartProduct{}
	}
	m.byID[cart.ID] = *cart
	return cart.ID, nil
}

func (m *mockCartRepository) Replace(_ context.Context, id primitive.ObjectID, cart *models.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrCartNotFound
	}
	cart.ID = id
	m.byID[id] = *cart
	return nil
}

func (m *mockCartRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrCartNotFound
	}
	delete(m.byID, id)
	return nil
}

type mockProductRepository struct {
	m    sync.RWMutex
	byID map[primitive.ObjectID]models.Product
	err  error
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
	for _, product := range m.byID {
		products = append(products, product)
	}
	return products, nil
}

func (m *mockProductRepository) FindPage(_ context.Context, query queries.Query) (int64, []models.Product, error) {
	products, err := m.FindAll(context.Background())
	if err != nil {
		return 0, nil, err
	}
	return int64(len(products)), products, nil
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
	return product.ID, nil
}

func (m *mockProductRepository) Replace(_ context.Context, id primitive.ObjectID, product *models.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
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
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrProductNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockProductRepository) PushReview(_ context.Context, id primitive.ObjectID, review models.Review) (*models.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
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
	product, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	product.Reviews = reviews
	m.byID[id] = product
	return &product, nil
}
