// Package mongo implementa los puertos de persistencia sobre MongoDB (document store principal).
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/ronix-api/pkg/config"
)

// Nombres de colecciones.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionOrders   = "orders"
)

// Store agrupa el cliente y la base; se construye una vez en main y se inyecta en los repositorios.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect abre el cliente, verifica con ping y asegura los índices.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{client: client, db: client.Database(cfg.Database)}
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// EnsureIndexes crea el índice único de email en users y el de email en orders.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("índice users.email: %w", err)
	}
	_, err = s.db.Collection(CollectionOrders).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("email_id"),
	})
	if err != nil {
		return fmt.Errorf("índice orders.email: %w", err)
	}
	return nil
}

// Collection devuelve la colección por nombre.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Close desconecta el cliente.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
