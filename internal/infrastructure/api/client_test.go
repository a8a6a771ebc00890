package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/api"
)

func TestNewClientValidatesBaseURL(t *testing.T) {
	cases := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"no scheme", "agency.example.com", true},
		{"ftp scheme", "ftp://agency.example.com", true},
		{"http", "http://localhost:8000", false},
		{"https with trailing slash", "https://agency.example.com/", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := api.NewClient(api.Config{BaseURL: tc.baseURL})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientSurfacesBackendErrorMessages(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		contains string
	}{
		{"fastapi detail", `{"detail":"board not found"}`, "board not found"},
		{"nested error", `{"error":{"message":"bad request"}}`, "bad request"},
		{"unparseable", `<html>nope</html>`, "HTTP 422"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client, err := api.NewClient(api.Config{BaseURL: server.URL})
			require.NoError(t, err)

			_, err = api.NewBoardRepository(client).List(context.Background())
			require.Error(t, err)

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
			assert.Contains(t, apiErr.Error(), tc.contains)
		})
	}
}
