package main

import (
	"net/http"

	"goshop/internal/cart"
)

// --- WISHLIST HANDLERS ---

func (app *application) showWishlist(w http.ResponseWriter, r *http.Request) {
	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	wishlist, err := app.db.GetWishlist(r.Context(), user.ID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.reply(w, http.StatusOK, wishlist)
}

func (app *application) addToWishlist(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}
	productID, err := parseID(input.ProductID)
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	wishlist, err := app.db.AddToWishlist(r.Context(), user.ID, productID)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, wishlist)
}

func (app *application) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	wishlist, err := app.db.RemoveFromWishlist(r.Context(), user.ID, productID)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, wishlist)
}

// --- CART HANDLERS ---

// sessionCart pulls the caller's cart out of the session, or starts an
// empty one. The cart never touches the database.
func (app *application) sessionCart(r *http.Request) *cart.Cart {
	if c, ok := app.session.Get(r.Context(), "cart").(cart.Cart); ok {
		return &c
	}
	return cart.New()
}

func (app *application) saveCart(r *http.Request, c *cart.Cart) {
	app.session.Put(r.Context(), "cart", *c)
}

func (app *application) showCart(w http.ResponseWriter, r *http.Request) {
	app.reply(w, http.StatusOK, app.sessionCart(r))
}

func (app *application) addToCart(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}
	productID, err := parseID(input.ProductID)
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}

	p, err := app.db.GetProduct(r.Context(), productID)
	if err != nil {
		app.modelError(w, err)
		return
	}

	c := app.sessionCart(r)
	c.Add(p.ID, p.Name, p.Price)
	app.saveCart(r, c)
	app.reply(w, http.StatusOK, c)
}

func (app *application) removeFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}

	c := app.sessionCart(r)
	c.Remove(productID)
	app.saveCart(r, c)
	app.reply(w, http.StatusOK, c)
}

func (app *application) increaseCartQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}

	c := app.sessionCart(r)
	c.IncreaseQuantity(productID)
	app.saveCart(r, c)
	app.reply(w, http.StatusOK, c)
}

func (app *application) decreaseCartQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}

	c := app.sessionCart(r)
	c.DecreaseQuantity(productID)
	app.saveCart(r, c)
	app.reply(w, http.StatusOK, c)
}

func (app *application) clearCart(w http.ResponseWriter, r *http.Request) {
	c := app.sessionCart(r)
	c.Clear()
	app.saveCart(r, c)
	app.reply(w, http.StatusOK, c)
}
