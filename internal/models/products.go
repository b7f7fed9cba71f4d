package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (m *MongoDB) GetProduct(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	var p Product
	err := m.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return &p, nil
}

// GetFilteredProducts lists products, optionally narrowed by a
// case-insensitive name substring and an exact category label.
func (m *MongoDB) GetFilteredProducts(ctx context.Context, search, category string) ([]*Product, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	if category != "" {
		filter["category"] = category
	}

	var products []*Product
	cur, err := m.Products.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &products)
	return products, err
}

func (m *MongoDB) InsertProduct(ctx context.Context, p *Product) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	p.IsActive = true
	_, err := m.Products.InsertOne(ctx, p)
	return err
}

func (m *MongoDB) UpdateProduct(ctx context.Context, p *Product) error {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"brand":       p.Brand,
		"stock":       p.Stock,
		"image_url":   p.ImageURL,
		"is_active":   p.IsActive,
	}}
	res, err := m.Products.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

func (m *MongoDB) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.Products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}
	return nil
}
