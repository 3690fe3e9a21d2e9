package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/alph/api"
)

// newHangingNode answers only after the test ends or the client gives up.
func newHangingNode(t *testing.T) *httptest.Server {
	t.Helper()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	return server
}

func TestClient_TimeoutIsDistinctKind(t *testing.T) {
	server := newHangingNode(t)
	client := api.NewClient(server.URL, api.WithTimeout(50*time.Millisecond))

	balance, err := client.GetBalance(testContext(t), testFromAddress)
	require.Empty(t, balance)
	require.True(t, api.IsKind(err, api.KindTimeout), "got %v", err)
	require.False(t, api.IsKind(err, api.KindTransport))
}

func TestClient_ContextDeadlineIsTimeout(t *testing.T) {
	server := newHangingNode(t)
	client := api.NewClient(server.URL)

	ctx, cancel := context.WithTimeout(testContext(t), 50*time.Millisecond)
	defer cancel()

	result, err := client.SubmitTransaction(ctx, "deadbeef")
	require.Nil(t, result)
	require.True(t, api.IsKind(err, api.KindTimeout), "got %v", err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_UnreachableNodeIsTransport(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	unreachableURL := server.URL
	server.Close()

	client := api.NewClient(unreachableURL)

	result, err := client.BuildTransaction(testContext(t), testFromAddress, testToAddress, testAmount, testFee)
	require.Nil(t, result)
	require.True(t, api.IsKind(err, api.KindTransport), "got %v", err)
}

func TestClient_LogsFailure(t *testing.T) {
	server, _ := newTestNode(t, http.StatusBadRequest, `{"detail":"bad fee"}`)

	var logs bytes.Buffer
	client := api.NewClient(server.URL, api.WithLogger(zerolog.New(&logs)))

	_, err := client.BuildTransaction(testContext(t), testFromAddress, testToAddress, testAmount, "0")
	require.Error(t, err)

	require.Contains(t, logs.String(), `"level":"error"`)
	require.Contains(t, logs.String(), `"op":"build transaction"`)
	require.Contains(t, logs.String(), `"kind":"rejected"`)
	require.Contains(t, logs.String(), `"status":400`)
}

func TestClient_NoLogOnSuccess(t *testing.T) {
	server, _ := newTestNode(t, http.StatusOK, `{"balance":"1"}`)

	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.InfoLevel)
	client := api.NewClient(server.URL, api.WithLogger(logger))

	_, err := client.GetBalance(testContext(t), testFromAddress)
	require.NoError(t, err)
	require.Empty(t, logs.String())
}

func TestIsKind(t *testing.T) {
	apiErr := &api.Error{Op: "get balance", Kind: api.KindParse, Err: api.ErrMissingField}
	wrapped := errors.Join(errors.New("display balance"), apiErr)

	require.True(t, api.IsKind(apiErr, api.KindParse))
	require.True(t, api.IsKind(wrapped, api.KindParse))
	require.False(t, api.IsKind(apiErr, api.KindRejected))
	require.False(t, api.IsKind(errors.New("plain"), api.KindParse))
	require.False(t, api.IsKind(nil, api.KindParse))
	require.Equal(t, "parse", api.KindParse.String())
}
