package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWishlistContains(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	w := &Wishlist{Items: []WishlistItem{{ProductID: a}}}

	assert.True(t, wishlistContains(w, a))
	assert.False(t, wishlistContains(w, b))
	assert.False(t, wishlistContains(&Wishlist{}, a))
}
