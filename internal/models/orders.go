package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// OrderStatuses is the fixed set of recognized order statuses.
var OrderStatuses = []string{
	StatusPending, StatusProcessing, StatusShipped,
	StatusDelivered, StatusCompleted, StatusCancelled,
}

func validOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// validateNewOrder checks the caller-supplied checkout payload. The price
// breakdown is taken as given; totalPrice is not checked against
// itemsPrice+taxPrice+shippingPrice.
func validateNewOrder(o *Order) error {
	if len(o.Items) == 0 {
		return ErrNoOrderItems
	}
	for _, it := range o.Items {
		if it.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	a := o.ShippingAddress
	if a.Address == "" || a.City == "" || a.PostalCode == "" || a.Country == "" {
		return ErrMissingShipping
	}
	if o.PaymentMethod == "" {
		return ErrMissingPayment
	}
	return nil
}

// applyStatus runs one status-machine transition on the in-memory order:
// validate the status, set it, append a history entry, and when the new
// status is delivered also set the delivered flag and timestamp.
func applyStatus(o *Order, status, actor string, now time.Time) error {
	if !validOrderStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:    status,
		Timestamp: now,
		UpdatedBy: actor,
	})
	if status == StatusDelivered {
		o.IsDelivered = true
		o.DeliveredAt = &now
	}
	return nil
}

// CreateOrder persists a new order for user with status pending and the
// initial history entry.
func (m *MongoDB) CreateOrder(ctx context.Context, user *User, o *Order) (*Order, error) {
	if err := validateNewOrder(o); err != nil {
		return nil, err
	}

	o.ID = primitive.NewObjectID()
	o.UserID = user.ID
	o.Status = StatusPending
	// History records transitions only; creation starts it empty.
	o.StatusHistory = []StatusEntry{}
	o.CreatedAt = time.Now()

	if _, err := m.Orders.InsertOne(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetOrder fetches an order readable by user: the owner or an admin.
func (m *MongoDB) GetOrder(ctx context.Context, user *User, id primitive.ObjectID) (*Order, error) {
	var o Order
	err := m.Orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	if o.UserID != user.ID && !user.IsAdmin() {
		return nil, ErrForbidden
	}
	return &o, nil
}

func (m *MongoDB) GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]*Order, error) {
	return m.findOrders(ctx, bson.M{"user_id": userID})
}

func (m *MongoDB) GetAllOrders(ctx context.Context) ([]*Order, error) {
	return m.findOrders(ctx, bson.M{})
}

func (m *MongoDB) findOrders(ctx context.Context, filter bson.M) ([]*Order, error) {
	var orders []*Order
	cur, err := m.Orders.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &orders)
	return orders, err
}

// UpdateOrderStatus applies a status transition on behalf of actor and
// persists the result. The history push keeps the log append-only; the
// stored entries are never rewritten.
func (m *MongoDB) UpdateOrderStatus(ctx context.Context, actor *User, id primitive.ObjectID, status string) (*Order, error) {
	order, err := m.GetOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := applyStatus(order, status, actorLabel(actor), now); err != nil {
		return nil, err
	}

	set := bson.M{"status": order.Status}
	if status == StatusDelivered {
		set["is_delivered"] = true
		set["delivered_at"] = now
	}
	update := bson.M{
		"$set":  set,
		"$push": bson.M{"status_history": order.StatusHistory[len(order.StatusHistory)-1]},
	}
	if _, err := m.Orders.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}
	return order, nil
}

// actorLabel is the human-readable history attribution: name when set,
// else email.
func actorLabel(u *User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// MarkOrderPaid records the payment result on the order and feeds each
// line item into the fulfillment ledger. Calling it twice double-counts
// sold units; there is no paid guard.
func (m *MongoDB) MarkOrderPaid(ctx context.Context, user *User, id primitive.ObjectID, result PaymentResult) (*Order, error) {
	order, err := m.GetOrder(ctx, user, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = &result

	update := bson.M{"$set": bson.M{
		"is_paid":        true,
		"paid_at":        now,
		"payment_result": result,
	}}
	if _, err := m.Orders.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}

	m.recordFulfillment(ctx, order)
	return order, nil
}

type soldIncrement struct {
	ProductID primitive.ObjectID
	Qty       int
}

// fulfillmentIncrements lists the per-product sold-counter bumps an order
// produces: one entry per line item, each carrying that line's quantity.
func fulfillmentIncrements(o *Order) []soldIncrement {
	incs := make([]soldIncrement, 0, len(o.Items))
	for _, item := range o.Items {
		incs = append(incs, soldIncrement{ProductID: item.ProductID, Qty: item.Quantity})
	}
	return incs
}

// recordFulfillment bumps each ordered product's cumulative sold counter
// by the line quantity. Products deleted since the order was placed match
// nothing and are skipped; a failed increment is logged but never fails
// the payment.
func (m *MongoDB) recordFulfillment(ctx context.Context, order *Order) {
	for _, inc := range fulfillmentIncrements(order) {
		filter := bson.M{"_id": inc.ProductID}
		update := bson.M{"$inc": bson.M{"sold": inc.Qty}}
		_, err := m.Products.UpdateOne(ctx, filter, update)
		if err != nil && m.ErrorLog != nil {
			m.ErrorLog.Println("failed to update sold count:", err)
		}
	}
}

// MarkOrderDelivered sets the delivered flag and timestamp without
// touching the order status or its history. Distinct from the delivered
// transition in UpdateOrderStatus; both paths are callable.
func (m *MongoDB) MarkOrderDelivered(ctx context.Context, user *User, id primitive.ObjectID) (*Order, error) {
	order, err := m.GetOrder(ctx, user, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now

	update := bson.M{"$set": bson.M{"is_delivered": true, "delivered_at": now}}
	if _, err := m.Orders.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}
	return order, nil
}
