package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func wishlistContains(w *Wishlist, productID primitive.ObjectID) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// GetOrCreateWishlist returns the user's wishlist, creating an empty one
// on first access. One wishlist per user.
func (m *MongoDB) GetOrCreateWishlist(ctx context.Context, userID primitive.ObjectID) (*Wishlist, error) {
	var w Wishlist
	err := m.Wishlists.FindOne(ctx, bson.M{"user_id": userID}).Decode(&w)
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	w = Wishlist{ID: primitive.NewObjectID(), UserID: userID, Items: []WishlistItem{}}
	if _, err := m.Wishlists.InsertOne(ctx, w); err != nil {
		return nil, err
	}
	return &w, nil
}

// GetWishlist returns the user's wishlist with product details resolved.
func (m *MongoDB) GetWishlist(ctx context.Context, userID primitive.ObjectID) (*Wishlist, error) {
	w, err := m.GetOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	return m.resolveWishlist(ctx, w)
}

// AddToWishlist appends a product reference. The product must exist and
// must not already be on the list.
func (m *MongoDB) AddToWishlist(ctx context.Context, userID, productID primitive.ObjectID) (*Wishlist, error) {
	if _, err := m.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	w, err := m.GetOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wishlistContains(w, productID) {
		return nil, ErrAlreadyInWishlist
	}

	item := WishlistItem{ProductID: productID, AddedAt: time.Now()}
	update := bson.M{"$push": bson.M{"items": item}}
	if _, err := m.Wishlists.UpdateOne(ctx, bson.M{"_id": w.ID}, update); err != nil {
		return nil, err
	}
	w.Items = append(w.Items, item)
	return m.resolveWishlist(ctx, w)
}

// RemoveFromWishlist drops a product reference; absent references are an
// error, not a no-op.
func (m *MongoDB) RemoveFromWishlist(ctx context.Context, userID, productID primitive.ObjectID) (*Wishlist, error) {
	w, err := m.GetOrCreateWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !wishlistContains(w, productID) {
		return nil, ErrNotInWishlist
	}

	update := bson.M{"$pull": bson.M{"items": bson.M{"product_id": productID}}}
	if _, err := m.Wishlists.UpdateOne(ctx, bson.M{"_id": w.ID}, update); err != nil {
		return nil, err
	}

	kept := w.Items[:0]
	for _, item := range w.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	w.Items = kept
	return m.resolveWishlist(ctx, w)
}

// resolveWishlist attaches product documents to the item references.
// Items whose product has since been deleted keep a nil Product.
func (m *MongoDB) resolveWishlist(ctx context.Context, w *Wishlist) (*Wishlist, error) {
	for i := range w.Items {
		p, err := m.GetProduct(ctx, w.Items[i].ProductID)
		if err != nil {
			if errors.Is(err, ErrNoRecord) {
				continue
			}
			return nil, err
		}
		w.Items[i].Product = p
	}
	return w, nil
}
