package main

import (
	"net/http"
)

// --- USER ADMIN HANDLERS ---

func (app *application) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := app.db.GetAllUsers(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.replyCount(w, http.StatusOK, len(users), users)
}

func (app *application) showUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "user not found")
		return
	}
	user, err := app.db.GetUser(r.Context(), id)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, user)
}

func (app *application) updateProfile(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}

	user, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	updated, err := app.db.UpdateUser(r.Context(), user.ID, input.Name, input.Email, "")
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, updated)
}

func (app *application) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "user not found")
		return
	}

	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if !app.decodeJSON(w, r, &input) {
		return
	}

	user, err := app.db.UpdateUser(r.Context(), id, input.Name, input.Email, input.Role)
	if err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, user)
}

func (app *application) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		app.clientError(w, http.StatusNotFound, "user not found")
		return
	}

	actor, err := app.currentUser(r)
	if err != nil {
		app.modelError(w, err)
		return
	}

	if err := app.db.DeleteUser(r.Context(), actor, id); err != nil {
		app.modelError(w, err)
		return
	}
	app.reply(w, http.StatusOK, nil)
}

// --- ANALYTICS HANDLERS ---

func (app *application) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := app.db.GetDashboard(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.reply(w, http.StatusOK, d)
}
