package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"goshop/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// envelope mirrors the response shape the frontend expects:
// {success, count, data} on success, {success, error} on failure.
type envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (app *application) writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		app.errorLog.Println(err)
	}
}

func (app *application) reply(w http.ResponseWriter, status int, data any) {
	app.writeJSON(w, status, envelope{Success: true, Data: data})
}

func (app *application) replyCount(w http.ResponseWriter, status int, count int, data any) {
	app.writeJSON(w, status, envelope{Success: true, Count: &count, Data: data})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	app.writeJSON(w, http.StatusInternalServerError, envelope{Error: "internal server error"})
}

func (app *application) clientError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	app.writeJSON(w, status, envelope{Error: msg})
}

// modelError maps the models error taxonomy onto HTTP status codes:
// NotFound 404, Conflict 409, Forbidden 401, Validation 400.
func (app *application) modelError(w http.ResponseWriter, err error) {
	msg := strings.TrimPrefix(err.Error(), "models: ")
	switch {
	case errors.Is(err, models.ErrNoRecord):
		app.clientError(w, http.StatusNotFound, msg)
	case errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrInvalidCredentials):
		app.clientError(w, http.StatusUnauthorized, msg)
	case errors.Is(err, models.ErrDuplicateReview),
		errors.Is(err, models.ErrAlreadyInWishlist),
		errors.Is(err, models.ErrDuplicateEmail):
		app.clientError(w, http.StatusConflict, msg)
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidRating),
		errors.Is(err, models.ErrNoOrderItems),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrMissingShipping),
		errors.Is(err, models.ErrMissingPayment),
		errors.Is(err, models.ErrNotInWishlist),
		errors.Is(err, models.ErrSelfDelete):
		app.clientError(w, http.StatusBadRequest, msg)
	default:
		app.serverError(w, err)
	}
}

func (app *application) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// pathID parses the :name URL parameter as an ObjectID.
func pathID(r *http.Request, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(r.URL.Query().Get(":" + name))
}

func parseID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}

// currentUser loads the authenticated user backing the session.
func (app *application) currentUser(r *http.Request) (*models.User, error) {
	idHex := app.session.GetString(r.Context(), "authenticatedUserID")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, models.ErrNoRecord
	}
	return app.db.GetUser(r.Context(), id)
}
