package http

import (
	"context"

	"github.com/retailstack/store-api/internal/config"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/service"
	"github.com/retailstack/store-api/models"
)

// Hand-rolled function-field mocks for the service interfaces. Each method
// delegates to the corresponding field when set and returns zero values
// otherwise, so tests only wire what they exercise.

type mockProductService struct {
	getAllFn  func(ctx context.Context) ([]models.Product, error)
	getByIDFn func(ctx context.Context, id int64) (models.Product, error)
	addFn     func(ctx context.Context, product models.Product) (models.Product, error)
	updateFn  func(ctx context.Context, product models.Product) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockProductService) GetByID(ctx context.Context, id int64) (models.Product, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Product{}, nil
}

func (m *mockProductService) Add(ctx context.Context, product models.Product) (models.Product, error) {
	if m.addFn != nil {
		return m.addFn(ctx, product)
	}
	return models.Product{}, nil
}

func (m *mockProductService) Update(ctx context.Context, product models.Product) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, product)
	}
	return nil
}

func (m *mockProductService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockOrderService struct {
	getAllFn  func(ctx context.Context) ([]models.Order, error)
	getByIDFn func(ctx context.Context, id int64) (models.Order, error)
	addFn     func(ctx context.Context, order models.Order) (models.Order, error)
	updateFn  func(ctx context.Context, order models.Order) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockOrderService) GetAll(ctx context.Context) ([]models.Order, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockOrderService) GetByID(ctx context.Context, id int64) (models.Order, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Order{}, nil
}

func (m *mockOrderService) Add(ctx context.Context, order models.Order) (models.Order, error) {
	if m.addFn != nil {
		return m.addFn(ctx, order)
	}
	return models.Order{}, nil
}

func (m *mockOrderService) Update(ctx context.Context, order models.Order) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, order)
	}
	return nil
}

func (m *mockOrderService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockUserService struct {
	getAllFn  func(ctx context.Context) ([]models.User, error)
	getByIDFn func(ctx context.Context, id int64) (models.User, error)
	addFn     func(ctx context.Context, user models.User) (models.User, error)
	updateFn  func(ctx context.Context, user models.User) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockUserService) GetAll(ctx context.Context) ([]models.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserService) Add(ctx context.Context, user models.User) (models.User, error) {
	if m.addFn != nil {
		return m.addFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockUserService) Update(ctx context.Context, user models.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

type testServices struct {
	products *mockProductService
	orders   *mockOrderService
	users    *mockUserService
	auth     *mockAuthService
}

// passthroughAuth accepts any token so route tests can focus on handler
// behaviour; middleware tests install their own parseTokenFn.
func newTestHandler() (*Handler, *testServices) {
	ts := &testServices{
		products: &mockProductService{},
		orders:   &mockOrderService{},
		users:    &mockUserService{},
		auth: &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: 1}, nil
			},
		},
	}

	h := NewHandler(&service.Services{
		ProductService: ts.products,
		OrderService:   ts.orders,
		UserService:    ts.users,
		AuthService:    ts.auth,
	}, config.Server{}, logger.Nop())

	return h, ts
}
