package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdd_NewAndExistingLine(t *testing.T) {
	c := New()
	id := primitive.NewObjectID()

	c.Add(id, "widget", 10)
	c.Add(id, "widget", 10)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.TotalQuantity)
	assert.Equal(t, 20.0, c.TotalAmount)
}

func TestAdd_DistinctProducts(t *testing.T) {
	c := New()
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	c.Add(a, "widget", 10)
	c.Add(b, "gadget", 5.5)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.TotalQuantity)
	assert.Equal(t, 15.5, c.TotalAmount)
}

func TestRemove_DropsWholeLine(t *testing.T) {
	c := New()
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	c.Add(a, "widget", 10)
	c.Add(a, "widget", 10)
	c.Add(b, "gadget", 3)

	c.Remove(a)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, b, c.Items[0].ProductID)
	assert.Equal(t, 1, c.TotalQuantity)
	assert.Equal(t, 3.0, c.TotalAmount)
}

func TestRemove_AbsentProductIsNoop(t *testing.T) {
	c := New()
	c.Add(primitive.NewObjectID(), "widget", 10)

	c.Remove(primitive.NewObjectID())

	assert.Equal(t, 1, c.TotalQuantity)
	assert.Equal(t, 10.0, c.TotalAmount)
}

func TestDecreaseQuantity_FlooredAtOne(t *testing.T) {
	c := New()
	id := primitive.NewObjectID()

	c.Add(id, "widget", 10)
	c.Add(id, "widget", 10)

	c.DecreaseQuantity(id)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 1, c.TotalQuantity)
	assert.Equal(t, 10.0, c.TotalAmount)

	// Decrementing a quantity-1 line changes nothing.
	c.DecreaseQuantity(id)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 1, c.TotalQuantity)
	assert.Equal(t, 10.0, c.TotalAmount)
}

func TestIncreaseQuantity(t *testing.T) {
	c := New()
	id := primitive.NewObjectID()

	c.Add(id, "widget", 10)
	c.IncreaseQuantity(id)

	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.TotalQuantity)
	assert.Equal(t, 20.0, c.TotalAmount)

	// Unknown products are ignored.
	c.IncreaseQuantity(primitive.NewObjectID())
	assert.Equal(t, 2, c.TotalQuantity)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(primitive.NewObjectID(), "widget", 10)
	c.Add(primitive.NewObjectID(), "gadget", 4)

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.TotalQuantity)
	assert.Equal(t, 0.0, c.TotalAmount)
}
