package main

import (
	"net/http"

	"github.com/bmizerany/pat"
)

func (app *application) routes() http.Handler {
	mux := pat.New()

	mux.Post("/api/auth/register", http.HandlerFunc(app.register))
	mux.Post("/api/auth/login", http.HandlerFunc(app.login))
	mux.Post("/api/auth/logout", app.requireAuth(app.logout))
	mux.Get("/api/auth/me", app.requireAuth(app.currentUserProfile))

	mux.Get("/api/products", http.HandlerFunc(app.listProducts))
	mux.Get("/api/products/:id", http.HandlerFunc(app.showProduct))
	mux.Post("/api/products", app.requireRole("admin", app.createProduct))
	mux.Put("/api/products/:id", app.requireRole("admin", app.updateProduct))
	mux.Del("/api/products/:id", app.requireRole("admin", app.deleteProduct))

	mux.Get("/api/categories", http.HandlerFunc(app.listCategories))
	mux.Post("/api/categories", app.requireRole("admin", app.addCategory))

	mux.Get("/api/reviews/product/:productId", http.HandlerFunc(app.listProductReviews))
	mux.Get("/api/reviews/:id", http.HandlerFunc(app.showReview))
	mux.Post("/api/reviews", app.requireAuth(app.addReview))
	mux.Put("/api/reviews/:id", app.requireAuth(app.updateReview))
	mux.Del("/api/reviews/:id", app.requireAuth(app.deleteReview))

	mux.Get("/api/admin/reviews", app.requireRole("admin", app.adminListReviews))
	mux.Del("/api/admin/reviews/:id", app.requireRole("admin", app.deleteReview))
	mux.Get("/api/admin/analytics", app.requireRole("admin", app.dashboard))

	// Register the fixed order paths ahead of /api/orders/:id so pat
	// does not capture "myorders" as an id.
	mux.Get("/api/orders/myorders", app.requireAuth(app.listMyOrders))
	mux.Get("/api/orders", app.requireRole("admin", app.listAllOrders))
	mux.Post("/api/orders", app.requireAuth(app.createOrder))
	mux.Get("/api/orders/:id", app.requireAuth(app.showOrder))
	mux.Put("/api/orders/:id/pay", app.requireAuth(app.payOrder))
	mux.Put("/api/orders/:id/deliver", app.requireRole("admin", app.deliverOrder))
	mux.Put("/api/orders/:id/status", app.requireRole("admin", app.updateOrderStatus))

	mux.Get("/api/payment/config", http.HandlerFunc(app.paymentConfig))
	mux.Post("/api/payment/process", app.requireAuth(app.processPayment))

	mux.Get("/api/wishlist", app.requireAuth(app.showWishlist))
	mux.Post("/api/wishlist", app.requireAuth(app.addToWishlist))
	mux.Del("/api/wishlist/:productId", app.requireAuth(app.removeFromWishlist))

	mux.Get("/api/cart", http.HandlerFunc(app.showCart))
	mux.Post("/api/cart", http.HandlerFunc(app.addToCart))
	mux.Del("/api/cart/clear", http.HandlerFunc(app.clearCart))
	mux.Del("/api/cart/:productId", http.HandlerFunc(app.removeFromCart))
	mux.Put("/api/cart/:productId/increase", http.HandlerFunc(app.increaseCartQuantity))
	mux.Put("/api/cart/:productId/decrease", http.HandlerFunc(app.decreaseCartQuantity))

	mux.Put("/api/users/profile", app.requireAuth(app.updateProfile))
	mux.Get("/api/users", app.requireRole("admin", app.listUsers))
	mux.Get("/api/users/:id", app.requireRole("admin", app.showUser))
	mux.Put("/api/users/:id", app.requireRole("admin", app.updateUser))
	mux.Del("/api/users/:id", app.requireRole("admin", app.deleteUser))

	return app.logRequest(app.recoverPanic(app.session.LoadAndSave(mux)))
}
