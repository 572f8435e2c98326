package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyClientExecute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "1", r.Header.Get("X-Test"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "a=1", string(body))
		w.Header().Set("X-Reply", "ok")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("done"))
	}))
	defer srv.Close()

	resp, err := NewRestyClient().Execute(context.Background(), Request{
		Method:  http.MethodPost,
		URL:     srv.URL,
		Headers: map[string]string{"X-Test": "1", "Content-Type": "application/x-www-form-urlencoded"},
		Body:    "a=1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode())
	assert.Equal(t, "done", string(resp.Body()))
	assert.Equal(t, "ok", resp.Header("X-Reply"))
}

func TestRestyClientDefaultsToGet(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewRestyClientFrom(resty.New()).Execute(context.Background(), Request{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, method)
}

func TestRestyClientNil(t *testing.T) {
	var c *RestyClient
	_, err := c.Execute(context.Background(), Request{URL: "http://example.com"})
	assert.Error(t, err)
}
