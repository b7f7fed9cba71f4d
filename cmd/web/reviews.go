package main

import (
	"net/http"
)

func (app *application) listProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "product not found")
		return
	}

	reviews, err := app.db.GetReviewsForProduct(r.Context(), productID)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.replyCount(w, http.StatusOK, len(reviews), reviews)
}

func (app *application) showReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "review not found")
		return
	}
	review, err := app.db.GetReview(r.Context(), id)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, review)
}

func (app *application) addReview(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID string `json:"productId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
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

	review, err := app.db.AddReview(r.Context(), user, productID, input.Rating, input.Comment)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusCreated, review)
}

func (app *application) updateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "review not found")
		return
	}

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	review, err := app.db.UpdateReview(r.Context(), user, id, input.Rating, input.Comment)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, review)
}

// deleteReview serves both the owner route and the admin route; the
// author-or-admin check lives in the model.
func (app *application) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "review not found")
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	if err := app.db.DeleteReview(r.Context(), user, id); err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, nil)
}

func (app *application) adminListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := app.db.GetAllReviews(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.replyCount(w, http.StatusOK, len(reviews), reviews)
}
