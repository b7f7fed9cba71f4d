package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"goshop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *application {
	return &application{
		errorLog: log.New(io.Discard, "", 0),
		infoLog:  log.New(io.Discard, "", 0),
	}
}

func TestModelErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrNoRecord, http.StatusNotFound},
		{models.ErrForbidden, http.StatusUnauthorized},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{models.ErrDuplicateReview, http.StatusConflict},
		{models.ErrAlreadyInWishlist, http.StatusConflict},
		{models.ErrDuplicateEmail, http.StatusConflict},
		{models.ErrNotInWishlist, http.StatusBadRequest},
		{models.ErrInvalidStatus, http.StatusBadRequest},
		{models.ErrNoOrderItems, http.StatusBadRequest},
		{models.ErrInvalidQuantity, http.StatusBadRequest},
		{models.ErrMissingShipping, http.StatusBadRequest},
		{models.ErrSelfDelete, http.StatusBadRequest},
	}

	app := testApp()
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		app.modelError(rec, tt.err)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())

		var env envelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Error)
	}
}

func TestReplyEnvelope(t *testing.T) {
	app := testApp()
	rec := httptest.NewRecorder()

	app.replyCount(rec, http.StatusOK, 2, []string{"a", "b"})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
}
