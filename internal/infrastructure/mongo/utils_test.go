package mongo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
)

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := parseObjectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", oid.Hex() + "00"} {
		_, err := parseObjectID(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidID, bad)
	}
}

func TestNormalize_TiposBSON(t *testing.T) {
	oid := primitive.NewObjectID()
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	dec, _ := primitive.ParseDecimal128("12.50")

	in := primitive.D{
		{Key: "ref", Value: oid},
		{Key: "at", Value: primitive.NewDateTimeFromTime(when)},
		{Key: "price", Value: dec},
		{Key: "tags", Value: primitive.A{"a", primitive.D{{Key: "k", Value: int32(1)}}}},
	}

	out := normalize(in).(map[string]interface{})
	assert.Equal(t, oid.Hex(), out["ref"])
	assert.Equal(t, when, out["at"])
	assert.Equal(t, "12.50", out["price"])
	assert.Equal(t, []interface{}{"a", map[string]interface{}{"k": int32(1)}}, out["tags"])
}

func TestToProduct_SeparaID(t *testing.T) {
	oid := primitive.NewObjectID()
	p := toProduct(bson.M{"_id": oid, "name": "Drill", "specs": primitive.D{{Key: "watts", Value: 800.0}}})

	assert.Equal(t, oid.Hex(), p.ID)
	assert.NotContains(t, p.Fields, "_id")
	assert.Equal(t, map[string]interface{}{"watts": 800.0}, p.Fields["specs"])
}

func TestOrderDocument_IdaYVuelta(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	order := &entity.Order{
		Email:     "a@x.com",
		Items:     []interface{}{"sku-1"},
		Status:    entity.OrderStatusPending,
		Total:     decimal.RequireFromString("10.15"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc, err := toOrderDocument(order)
	require.NoError(t, err)
	doc.ID = primitive.NewObjectID()

	back := fromOrderDocument(doc)
	assert.Equal(t, doc.ID.Hex(), back.ID)
	assert.True(t, order.Total.Equal(back.Total))
	assert.Equal(t, order.Items, back.Items)
	assert.Equal(t, order.Status, back.Status)
}

// Documentos creados antes de guardar el total siguen siendo legibles.
func TestFromOrderDocument_SinTotal(t *testing.T) {
	o := fromOrderDocument(orderDocument{ID: primitive.NewObjectID(), Email: "a@x.com", Status: "pending"})
	assert.True(t, o.Total.IsZero())
	assert.NotNil(t, o.Items)
}
