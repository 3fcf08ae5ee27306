package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient().Configure(srv.URL, time.Second, "unit-test")
	_, err := client.R().Get("/tts/voices")

	require.NoError(t, err)
	assert.Equal(t, MIMEApplicationJSON, got.Get("Accept"))
	assert.Equal(t, MIMEApplicationJSON, got.Get("Content-Type"))
	assert.Equal(t, "unit-test", got.Get("User-Agent"))
}

func TestNewHTTPClient_HasCookieJar(t *testing.T) {
	client := NewHTTPClient()

	assert.NotNil(t, client.GetClient().Jar)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"full url", "https://api.fakeyou.com/", "https://api.fakeyou.com/", false},
		{"no trailing slash", "https://api.fakeyou.com", "https://api.fakeyou.com/", false},
		{"no scheme", "api.fakeyou.com", "https://api.fakeyou.com/", false},
		{"with path", " http://localhost:8080/v1// ", "http://localhost:8080/v1/", false},
		{"empty", "   ", "", true},
		{"no host", "https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
