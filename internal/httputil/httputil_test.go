// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Total int `json:"total"`
}

func TestGetJSON_Success(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 7}`))
	}))
	defer ts.Close()

	var p payload
	err := GetJSON(context.Background(), ts.Client(), NewPacer(0), ts.URL, "test/0.1", &p)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Total)
	assert.Equal(t, "test/0.1", gotUA)
}

func TestGetJSON_Non2xxIsStatusError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	var p payload
	err := GetJSON(context.Background(), ts.Client(), nil, ts.URL, "", &p)
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	// Single attempt, no retry.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetJSON_UndecodableBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	var p payload
	err := GetJSON(context.Background(), ts.Client(), nil, ts.URL, "", &p)
	assert.ErrorContains(t, err, "decoding response")
}

func TestGetJSON_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	var p payload
	err := GetJSON(context.Background(), http.DefaultClient, nil, url, "", &p)
	assert.ErrorContains(t, err, "HTTP request")
}

func TestPacer_DisabledNeverWaits(t *testing.T) {
	p := NewPacer(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestPacer_ContextCancelled(t *testing.T) {
	p := NewPacer(0.001)
	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, p.Wait(ctx))
}

func TestPacer_NilIsNoop(t *testing.T) {
	var p *Pacer
	assert.NoError(t, p.Wait(context.Background()))
}
