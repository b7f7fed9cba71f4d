package main

import (
	"fmt"
	"net/http"
)

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) isAuthenticated(r *http.Request) bool {
	return app.session.Exists(r.Context(), "authenticatedUserID")
}

func (app *application) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.isAuthenticated(r) {
			app.clientError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r)
	})
}

func (app *application) requireRole(role string, next http.HandlerFunc) http.Handler {
	return app.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if app.session.GetString(r.Context(), "userRole") != role {
			app.clientError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		next(w, r)
	})
}
