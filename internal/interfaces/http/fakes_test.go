package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ronix-api/internal/application/ports"
	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
)

// Repositorios en memoria para probar handlers de punta a punta sin base de datos.

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*entity.User{}} }

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrAlreadyExists
	}
	u.ID = uuid.NewString()
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) UpdateRole(_ context.Context, email, role string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return 0, nil
	}
	u.Role = role
	return 1, nil
}

type memProducts struct {
	mu    sync.Mutex
	order []string
	docs  map[string]map[string]interface{}
	// err, si no es nil, lo devuelven Create y List (fallo del store).
	err error
}

func newMemProducts() *memProducts {
	return &memProducts{docs: map[string]map[string]interface{}{}}
}

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	p.ID = uuid.NewString()
	r.docs[p.ID] = copyFields(p.Fields)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &entity.Product{ID: id, Fields: copyFields(doc)}, nil
}

func (r *memProducts) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		if doc, ok := r.docs[id]; ok {
			out = append(out, &entity.Product{ID: id, Fields: copyFields(doc)})
		}
	}
	return out, nil
}

func (r *memProducts) Merge(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		doc[k] = v
	}
	return 1, nil
}

func (r *memProducts) Delete(_ context.Context, id string) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return 0, nil
	}
	delete(r.docs, id)
	return 1, nil
}

type memOrders struct {
	mu     sync.Mutex
	order  []string
	orders map[string]*entity.Order
	// err, si no es nil, lo devuelven Create y List (fallo del store).
	err error
}

func newMemOrders() *memOrders { return &memOrders{orders: map[string]*entity.Order{}} }

func (r *memOrders) Create(_ context.Context, o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	o.ID = uuid.NewString()
	cp := *o
	r.orders[o.ID] = &cp
	r.order = append(r.order, o.ID)
	return nil
}

func (r *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrders) FirstByEmail(_ context.Context, email string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if o, ok := r.orders[id]; ok && o.Email == email {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memOrders) List(_ context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Order, 0, len(r.order))
	for _, id := range r.order {
		if o, ok := r.orders[id]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memOrders) UpdateStatus(_ context.Context, email, id, status string) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Email != email {
		return 0, nil
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	return 1, nil
}

func (r *memOrders) DeleteUnpaid(_ context.Context, id string) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Status == entity.OrderStatusPaid {
		return 0, nil
	}
	delete(r.orders, id)
	return 1, nil
}

func copyFields(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

type fakeGateway struct {
	err   error
	calls []ports.PaymentIntentRequest
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, req ports.PaymentIntentRequest) (*ports.PaymentIntent, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	return &ports.PaymentIntent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret_abc",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Created:      time.Unix(1700000000, 0),
	}, nil
}

type fakeReceipts struct{}

func (fakeReceipts) GenerateOrderReceipt(_ context.Context, o *entity.Order) ([]byte, error) {
	return []byte("%PDF-1.3 " + o.ID), nil
}
