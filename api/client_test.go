package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestSerialization(t *testing.T) {
	data, err := json.Marshal(NewGenerateRequest("test-model", "Hello", "You are helpful"))
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"model":"test-model"`)
	assert.Contains(t, s, `"prompt":"Hello"`)
	assert.Contains(t, s, `"system":"You are helpful"`)
	assert.Contains(t, s, `"stream":false`)
}

func TestGenerateResponseDeserialization(t *testing.T) {
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(`{"response": "Hi there!"}`), &resp))
	assert.Equal(t, "Hi there!", resp.Response)
}

func TestGenerate(t *testing.T) {
	var got GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"model":"llama3","response":"Hi there!","done":true}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	resp, err := c.Generate(context.Background(), "llama3", "Hello", "Be brief")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", resp.Response)
	assert.Equal(t, NewGenerateRequest("llama3", "Hello", "Be brief"), got)
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"model 'nope' not found"}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), "nope", "Hello", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequest)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "model 'nope' not found")
}

func TestGenerateBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), "llama3", "Hello", "")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, WithTimeout(2*time.Second)).Generate(context.Background(), "llama3", "Hello", "")
	assert.ErrorIs(t, err, ErrRequest)
}

func TestWithTimeoutDoesNotMutateSharedClient(t *testing.T) {
	shared := &http.Client{}
	c := NewClient("http://localhost:11434", WithHTTPClient(shared), WithTimeout(time.Second))
	assert.Equal(t, time.Duration(0), shared.Timeout)
	assert.Equal(t, time.Second, c.http.Timeout)
}
