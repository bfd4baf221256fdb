package tips

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDecodesTips(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/tips", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"message":"Rotate stock weekly.","severity":"info"},
			{"id":2,"message":"Cold chain at risk.","severity":"warning"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	out, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Rotate stock weekly.", out[0].Message)
	assert.Equal(t, SeverityInfo, out[0].Severity)
	assert.Equal(t, SeverityWarning, out[1].Severity)
}

func TestListReportsServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
