package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"200","message":"ok","data":{"id":7,"slug":"dune"}}`))
	}))
	defer srv.Close()

	item, err := New(srv.URL).GetItemBySlug(context.Background(), "dune")
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "dune", item.Slug)
}

func TestDoEnvelopeErrorCode(t *testing.T) {
	// Convention backend : code != "200" est un échec même en HTTP 200
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"500","message":"boom","data":null}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetItemBySlug(context.Background(), "dune")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "500", apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestDoStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"401 devient ErrUnauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"404 devient ErrNotFound", http.StatusNotFound, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := New(srv.URL).GetItemBySlug(context.Background(), "x")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"code":"200","data":{"id":1,"username":"ana"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetProfile(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestDoAnonymousHasNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"code":"200","data":[]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetTemplates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestGetMyRatingNull(t *testing.T) {
	// Pas encore de note : data vaut null, le client répond nil sans erreur
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"200","message":"ok","data":null}`))
	}))
	defer srv.Close()

	rating, err := New(srv.URL).GetMyRating(context.Background(), "tok", 42)
	require.NoError(t, err)
	assert.Nil(t, rating)
}
