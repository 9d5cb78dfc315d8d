package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/ronix-api/internal/domain/entity"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

type orderDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Email     string               `bson:"email"`
	Orders    []interface{}        `bson:"orders"`
	Status    string               `bson:"status"`
	Total     primitive.Decimal128 `bson:"total"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// OrderRepo implementación de OrderRepository sobre la colección orders.
type OrderRepo struct {
	coll *mongo.Collection
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{coll: s.Collection(CollectionOrders)}
}

// Create inserta la orden y asigna order.ID.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	doc, err := toOrderDocument(order)
	if err != nil {
		return err
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FirstByEmail devuelve la orden más antigua del email.
func (r *OrderRepo) FirstByEmail(ctx context.Context, email string) (*entity.Order, error) {
	return r.findOne(ctx, bson.M{"email": email}, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *OrderRepo) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*entity.Order, error) {
	var doc orderDocument
	if err := r.coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return fromOrderDocument(doc), nil
}

// List devuelve todas las órdenes.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	list := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		list = append(list, fromOrderDocument(d))
	}
	return list, nil
}

// UpdateStatus filtra por email + _id y devuelve MatchedCount.
func (r *OrderRepo) UpdateStatus(ctx context.Context, email, id, status string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email, "_id": oid},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, fmt.Errorf("update order status: %w", err)
	}
	return res.MatchedCount, nil
}

// DeleteUnpaid elimina por ID salvo que la orden esté pagada y devuelve DeletedCount.
func (r *OrderRepo) DeleteUnpaid(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "status": bson.M{"$ne": entity.OrderStatusPaid}})
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return res.DeletedCount, nil
}

func toOrderDocument(o *entity.Order) (orderDocument, error) {
	total, err := primitive.ParseDecimal128(o.Total.String())
	if err != nil {
		return orderDocument{}, fmt.Errorf("total a decimal128: %w", err)
	}
	return orderDocument{
		Email:     o.Email,
		Orders:    o.Items,
		Status:    o.Status,
		Total:     total,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}, nil
}

// fromOrderDocument tolera documentos antiguos sin total ni fechas.
func fromOrderDocument(d orderDocument) *entity.Order {
	total, err := decimal.NewFromString(d.Total.String())
	if err != nil {
		total = decimal.Zero
	}
	items := make([]interface{}, 0, len(d.Orders))
	for _, it := range d.Orders {
		items = append(items, normalize(it))
	}
	return &entity.Order{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Items:     items,
		Status:    d.Status,
		Total:     total,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
