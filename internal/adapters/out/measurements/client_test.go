package measurements_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/adapters/out/measurements"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

func Test_NewClient(t *testing.T) {
	t.Run("valid base URL", func(t *testing.T) {
		client, err := measurements.NewClient("https://measurements.test")

		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("missing base URL", func(t *testing.T) {
		_, err := measurements.NewClient("")

		assert.ErrorIs(t, err, measurements.ErrBaseURLIsRequired)
	})
}

func Test_Client_Get(t *testing.T) {
	t.Run("returns stored measurements", func(t *testing.T) {
		customerID := kernel.NewUUID()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/customers/"+customerID.String()+"/measurements", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"measurements":{"chest":102.5,"waist":88}}`))
		}))
		defer server.Close()

		client, err := measurements.NewClient(server.URL)
		require.NoError(t, err)

		values, err := client.Get(context.Background(), customerID)
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"chest": 102.5, "waist": 88}, values)
	})

	t.Run("customer has no measurements", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, err := measurements.NewClient(server.URL)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("service outage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client, err := measurements.NewClient(server.URL)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrExternalUnavailable)
	})
}
