package currency_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/infrastructure/currency"
)

func TestRate_ConsultaLaAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "MXN", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"MXN":17.25}}`))
	}))
	defer srv.Close()

	provider := currency.NewFrankfurterProvider(srv.URL)
	rate, err := provider.Rate(context.Background(), "usd", "mxn")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("17.25")))
}

func TestRate_MismaDivisaNoLlamaLaAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no debe llamarse a la API cuando from == to")
	}))
	defer srv.Close()

	provider := currency.NewFrankfurterProvider(srv.URL)
	rate, err := provider.Rate(context.Background(), "MXN", "MXN")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestRate_ErroresDeLaAPI(t *testing.T) {
	t.Run("status no OK", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		provider := currency.NewFrankfurterProvider(srv.URL)
		_, err := provider.Rate(context.Background(), "USD", "MXN")
		assert.Error(t, err)
	})

	t.Run("respuesta sin tasa", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
		}))
		defer srv.Close()

		provider := currency.NewFrankfurterProvider(srv.URL)
		_, err := provider.Rate(context.Background(), "USD", "MXN")
		assert.Error(t, err)
	})
}
