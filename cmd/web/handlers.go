package main

import (
	"net/http"

	"goshop/internal/models"
)

// --- AUTH HANDLERS ---

func (app *application) register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}
	if input.Email == "" || input.Password == "" {
		app.clientError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := app.db.InsertUser(r.Context(), input.Name, input.Email, input.Password, "user")
	if err != nil {
		app.modelError(w, err)
		return
	}

	app.session.Put(r.Context(), "authenticatedUserID", user.ID.Hex())
	app.session.Put(r.Context(), "userRole", user.Role)
	app.reply(w, http.StatusCreated, user)
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}

	user, err := app.db.Authenticate(r.Context(), input.Email, input.Password)
	if err != nil {
		app.modelError(w, err)
		return
	}

	// Renew the token on privilege change.
	if err := app.session.RenewToken(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.session.Put(r.Context(), "authenticatedUserID", user.ID.Hex())
	app.session.Put(r.Context(), "userRole", user.Role)
	app.reply(w, http.StatusOK, user)
}

func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	app.session.Remove(r.Context(), "authenticatedUserID")
	app.session.Remove(r.Context(), "userRole")
	if err := app.session.Destroy(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.reply(w, http.StatusOK, nil)
}

func (app *application) currentUserProfile(w http.ResponseWriter, r *http.Request) {
	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, user)
}

// --- PRODUCT & CATALOG HANDLERS ---

func (app *application) listProducts(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	products, err := app.db.GetFilteredProducts(r.Context(), search, category)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.replyCount(w, http.StatusOK, len(products), products)
}

func (app *application) showProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}
	p, err := app.db.GetProduct(r.Context(), id)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, p)
}

func (app *application) createProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if !app.decodeJSON(w, r, &p) {
		return
	}
	if p.Name == "" || p.Description == "" || p.Category == "" {
		app.clientError(w, http.StatusBadRequest, "name, description and category are required")
		return
	}
	if p.Price < 0 || p.Stock < 0 {
		app.clientError(w, http.StatusBadRequest, "price and stock must be non-negative")
		return
	}

	if err := app.db.InsertProduct(r.Context(), &p); err != nil {
		app.serverError(w, err)
		return
	}
	app.reply(w, http.StatusCreated, p)
}

func (app *application) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}

	var p models.Product
	if !app.decodeJSON(w, r, &p) {
		return
	}
	if p.Price < 0 || p.Stock < 0 {
		app.clientError(w, http.StatusBadRequest, "price and stock must be non-negative")
		return
	}
	p.ID = id

	if err := app.db.UpdateProduct(r.Context(), &p); err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, p)
}

func (app *application) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}
	if err := app.db.DeleteProduct(r.Context(), id); err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, nil)
}

// --- CATEGORY HANDLERS ---

func (app *application) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := app.db.GetAllCategories(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.replyCount(w, http.StatusOK, len(cats), cats)
}

func (app *application) addCategory(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}
	if input.Name == "" {
		app.clientError(w, http.StatusBadRequest, "name is required")
		return
	}

	cat, err := app.db.AddCategory(r.Context(), input.Name)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.reply(w, http.StatusCreated, cat)
}
