package main

import (
	"net/http"
	"os"
	"time"

	"goshop/internal/models"

	"github.com/google/uuid"
)

func (app *application) createOrder(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Items           []models.OrderItem     `json:"items"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
		ItemsPrice      float64                `json:"itemsPrice"`
		TaxPrice        float64                `json:"taxPrice"`
		ShippingPrice   float64                `json:"shippingPrice"`
		TotalPrice      float64                `json:"totalPrice"`
		TransactionID   string                 `json:"transactionId"`
		OrderComment    string                 `json:"orderComment"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	order := &models.Order{
		Items:           input.Items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		ItemsPrice:      input.ItemsPrice,
		TaxPrice:        input.TaxPrice,
		ShippingPrice:   input.ShippingPrice,
		TotalPrice:      input.TotalPrice,
		TransactionID:   input.TransactionID,
		OrderComment:    input.OrderComment,
	}

	created, err := app.db.CreateOrder(r.Context(), user, order)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusCreated, created)
}

func (app *application) showOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "order not found")
		return
	}
	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	order, err := app.db.GetOrder(r.Context(), user, id)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, order)
}

func (app *application) listMyOrders(w http.ResponseWriter, r *http.Request) {
	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	orders, err := app.db.GetOrdersByUser(r.Context(), user.ID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.replyCount(w, http.StatusOK, len(orders), orders)
}

func (app *application) listAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := app.db.GetAllOrders(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.replyCount(w, http.StatusOK, len(orders), orders)
}

func (app *application) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "order not found")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	order, err := app.db.UpdateOrderStatus(r.Context(), user, id, input.Status)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, order)
}

func (app *application) payOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "order not found")
		return
	}

	var result models.PaymentResult
	if !app.decodeJSON(w, r, &result) {
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	order, err := app.db.MarkOrderPaid(r.Context(), user, id, result)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, order)
}

func (app *application) deliverOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "order not found")
		return
	}
	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	order, err := app.db.MarkOrderDelivered(r.Context(), user, id)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, order)
}

// --- PAYMENT HANDLERS ---

// processPayment simulates the payment gateway: it fabricates a completed
// payment result and applies it to the caller's order.
func (app *application) processPayment(w http.ResponseWriter, r *http.Request) {
	var input struct {
		OrderID string `json:"orderId"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}
	orderID, err := parseID(input.OrderID)
	if err != nil {
		app.clientError(w, http.StatusNotFound, "order not found")
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	result := models.PaymentResult{
		ID:           "payment_" + uuid.NewString(),
		Status:       "completed",
		UpdateTime:   time.Now().UTC().Format(time.RFC3339),
		EmailAddress: user.Email,
	}

	order, err := app.db.MarkOrderPaid(r.Context(), user, orderID, result)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, order)
}

func (app *application) paymentConfig(w http.ResponseWriter, r *http.Request) {
	app.reply(w, http.StatusOK, map[string]any{
		"sandbox":  os.Getenv("PAYMENT_SANDBOX") == "true",
		"currency": "USD",
	})
}
