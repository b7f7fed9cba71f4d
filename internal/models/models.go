package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Stock       int                `bson:"stock" json:"stock"`
	Sold        int                `bson:"sold" json:"sold"`
	ImageURL    string             `bson:"image_url" json:"imageUrl"`
	Ratings     float64            `bson:"ratings" json:"ratings"`
	NumReviews  int                `bson:"num_reviews" json:"numReviews"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	UserName  string             `bson:"user_name" json:"userName"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	// Price is the unit price snapshot taken at order time, not the
	// live product price.
	Price float64 `bson:"price" json:"price"`
}

type ShippingAddress struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	UpdateTime   string `bson:"update_time" json:"updateTime"`
	EmailAddress string `bson:"email_address" json:"emailAddress"`
}

type StatusEntry struct {
	Status    string    `bson:"status" json:"status"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	UpdatedBy string    `bson:"updated_by" json:"updatedBy"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"userId"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string             `bson:"payment_method" json:"paymentMethod"`
	PaymentResult   *PaymentResult     `bson:"payment_result,omitempty" json:"paymentResult,omitempty"`
	ItemsPrice      float64            `bson:"items_price" json:"itemsPrice"`
	TaxPrice        float64            `bson:"tax_price" json:"taxPrice"`
	ShippingPrice   float64            `bson:"shipping_price" json:"shippingPrice"`
	TotalPrice      float64            `bson:"total_price" json:"totalPrice"`
	IsPaid          bool               `bson:"is_paid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"is_delivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	TransactionID   string             `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	OrderComment    string             `bson:"order_comment,omitempty" json:"orderComment,omitempty"`
	Status          string             `bson:"status" json:"status"`
	StatusHistory   []StatusEntry      `bson:"status_history" json:"statusHistory"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}

type WishlistItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Product   *Product           `bson:"-" json:"product,omitempty"`
	AddedAt   time.Time          `bson:"added_at" json:"addedAt"`
}

type Wishlist struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"userId"`
	Items  []WishlistItem     `bson:"items" json:"items"`
}

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}
