package models

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB bundles the collection handles the store methods operate on.
// Single-document writes are atomic; nothing here uses multi-document
// transactions. ErrorLog, when set, receives best-effort write failures
// that do not abort their operation.
type MongoDB struct {
	Products   *mongo.Collection
	Reviews    *mongo.Collection
	Orders     *mongo.Collection
	Wishlists  *mongo.Collection
	Users      *mongo.Collection
	Categories *mongo.Collection
	ErrorLog   *log.Logger
}

func NewMongoDB(db *mongo.Database, errorLog *log.Logger) *MongoDB {
	return &MongoDB{
		Products:   db.Collection("products"),
		Reviews:    db.Collection("reviews"),
		Orders:     db.Collection("orders"),
		Wishlists:  db.Collection("wishlists"),
		Users:      db.Collection("users"),
		Categories: db.Collection("categories"),
		ErrorLog:   errorLog,
	}
}

// OpenDB connects to the Mongo deployment at uri and pings it before
// handing the database back.
func OpenDB(uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(name), nil
}

func (m *MongoDB) AddCategory(ctx context.Context, name string) (*Category, error) {
	cat := Category{ID: primitive.NewObjectID(), Name: name}
	_, err := m.Categories.InsertOne(ctx, cat)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (m *MongoDB) GetAllCategories(ctx context.Context) ([]*Category, error) {
	var cats []*Category
	cur, err := m.Categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &cats)
	return cats, err
}
