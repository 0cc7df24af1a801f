package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profilehub/accounts-server/internal/server"
)

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), ":8080")
	assert.Equal(t, ":8080", s.Address())
}

func TestHTTPServer_StartStop(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), "127.0.0.1:0")

	done := make(chan error, 1)
	go func() {
		done <- s.Start(server.NewPlainListener())
	}()

	// let Serve take over the listener before shutting down
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_Start_ListenFailure(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), "invalid-address")

	err := s.Start(server.NewPlainListener())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
