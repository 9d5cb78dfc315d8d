package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/ronix-api/internal/application/ports"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	args := m.Called(ctx, email, role)
	return args.Get(0).(int64), args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *mockProductRepo) Merge(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepo) FirstByEmail(ctx context.Context, email string) (*entity.Order, error) {
	args := m.Called(ctx, email)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Order)
	return list, args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, email, id, status string) (int64, error) {
	args := m.Called(ctx, email, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) DeleteUnpaid(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreatePaymentIntent(ctx context.Context, req ports.PaymentIntentRequest) (*ports.PaymentIntent, error) {
	args := m.Called(ctx, req)
	pi, _ := args.Get(0).(*ports.PaymentIntent)
	return pi, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishOrderEvent(ctx context.Context, event ports.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockReceipts struct{ mock.Mock }

func (m *mockReceipts) GenerateOrderReceipt(ctx context.Context, order *entity.Order) ([]byte, error) {
	args := m.Called(ctx, order)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}
