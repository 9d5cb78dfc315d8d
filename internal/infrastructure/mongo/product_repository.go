package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/ronix-api/internal/domain/entity"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo guarda los productos como documentos libres en la colección products.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{coll: s.Collection(CollectionProducts)}
}

// Create inserta el documento; el _id lo genera el driver.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	doc := bson.M{}
	for k, v := range product.Fields {
		doc[k] = v
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid.Hex()
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return toProduct(raw), nil
}

// List devuelve la colección completa.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(raws))
	for _, raw := range raws {
		list = append(list, toProduct(raw))
	}
	return list, nil
}

// Merge aplica $set con los campos recibidos.
func (r *ProductRepo) Merge(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}
	return res.MatchedCount, nil
}

// Delete elimina por ID y devuelve DeletedCount.
func (r *ProductRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return res.DeletedCount, nil
}

func toProduct(raw bson.M) *entity.Product {
	p := &entity.Product{Fields: make(map[string]interface{}, len(raw))}
	for k, v := range raw {
		if k == entity.IDField {
			if oid, ok := v.(primitive.ObjectID); ok {
				p.ID = oid.Hex()
			} else {
				p.ID = fmt.Sprint(v)
			}
			continue
		}
		p.Fields[k] = normalize(v)
	}
	return p
}
