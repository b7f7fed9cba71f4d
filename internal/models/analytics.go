package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DashboardTotals struct {
	Products   int64   `json:"products"`
	Orders     int64   `json:"orders"`
	Users      int64   `json:"users"`
	Categories int64   `json:"categories"`
	Revenue    float64 `json:"revenue"`
}

type Dashboard struct {
	Totals       DashboardTotals `json:"totals"`
	RecentOrders []*Order        `json:"recentOrders"`
	TopProducts  []*Product      `json:"topProducts"`
}

// GetTotalRevenue sums totalPrice across paid orders.
func (m *MongoDB) GetTotalRevenue(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"is_paid": true}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total_price"}}},
	}
	cur, err := m.Orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)
	var results []bson.M
	if err = cur.All(ctx, &results); err != nil || len(results) == 0 {
		return 0, err
	}
	switch v := results[0]["total"].(type) {
	case float64:
		return v, nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, nil
	}
}

// GetDashboard assembles the admin analytics view: entity counts, revenue
// over paid orders, the five most recent orders, and the five best-selling
// products.
func (m *MongoDB) GetDashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}

	var err error
	if d.Totals.Products, err = m.Products.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if d.Totals.Orders, err = m.Orders.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if d.Totals.Users, err = m.Users.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if d.Totals.Categories, err = m.Categories.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if d.Totals.Revenue, err = m.GetTotalRevenue(ctx); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(5)
	cur, err := m.Orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	if err = cur.All(ctx, &d.RecentOrders); err != nil {
		return nil, err
	}

	opts = options.Find().SetSort(bson.M{"sold": -1}).SetLimit(5)
	cur, err = m.Products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	if err = cur.All(ctx, &d.TopProducts); err != nil {
		return nil, err
	}

	return d, nil
}
