// Package cart implements the per-session shopping cart with its running
// quantity and amount totals. A cart is local to one client session and
// carries no server-side consistency guarantee.
package cart

import "go.mongodb.org/mongo-driver/bson/primitive"

type Item struct {
	ProductID primitive.ObjectID `json:"productId"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
	Quantity  int                `json:"quantity"`
}

type Cart struct {
	Items         []Item  `json:"items"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalAmount   float64 `json:"totalAmount"`
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

func (c *Cart) find(productID primitive.ObjectID) *Item {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Add puts one unit of the product in the cart: an existing line is
// bumped by 1, otherwise a new line starts at 1. Totals always grow by
// one unit and one unit price.
func (c *Cart) Add(productID primitive.ObjectID, name string, price float64) {
	if item := c.find(productID); item != nil {
		item.Quantity++
	} else {
		c.Items = append(c.Items, Item{ProductID: productID, Name: name, Price: price, Quantity: 1})
	}
	c.TotalQuantity++
	c.TotalAmount += price
}

// Remove drops the whole line and subtracts its quantity and
// quantity-weighted price from the totals. Removing an absent product
// changes nothing.
func (c *Cart) Remove(productID primitive.ObjectID) {
	item := c.find(productID)
	if item == nil {
		return
	}
	c.TotalQuantity -= item.Quantity
	c.TotalAmount -= item.Price * float64(item.Quantity)

	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// IncreaseQuantity bumps an existing line by one unit.
func (c *Cart) IncreaseQuantity(productID primitive.ObjectID) {
	if item := c.find(productID); item != nil {
		item.Quantity++
		c.TotalQuantity++
		c.TotalAmount += item.Price
	}
}

// DecreaseQuantity lowers a line by one unit, floored at 1: decrementing
// a quantity-1 line is a no-op, it never removes the line.
func (c *Cart) DecreaseQuantity(productID primitive.ObjectID) {
	if item := c.find(productID); item != nil && item.Quantity > 1 {
		item.Quantity--
		c.TotalQuantity--
		c.TotalAmount -= item.Price
	}
}

// Clear empties the cart and zeroes both totals.
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.TotalQuantity = 0
	c.TotalAmount = 0
}
