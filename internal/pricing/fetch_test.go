package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"USD":1.0,"EUR":0.91,"AED":3.67}`))
	}))
	defer srv.Close()

	rates, err := FetchRates(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 0.91, rates.Rate("EUR"))
	assert.Equal(t, 3.67, rates.Rate("AED"))
}

func TestFetchRates_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := FetchRates(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestFetchRates_EmptyTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := FetchRates(context.Background(), srv.URL)
	var cfg *ConfigurationError
	require.ErrorAs(t, err, &cfg)
}

func TestFetchRates_BadRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"EUR":0}`))
	}))
	defer srv.Close()

	_, err := FetchRates(context.Background(), srv.URL)
	var cfg *ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "EUR", cfg.Key)
}
