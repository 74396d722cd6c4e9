package beacon

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_PostsEvent(t *testing.T) {
	received := make(chan event, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var evt event
		require.NoError(t, json.Unmarshal(body, &evt))
		received <- evt
	}))
	defer server.Close()

	n := New(&Config{URL: server.URL})
	n.send("build_shared", map[string]any{"owner_id": "owner1"})

	select {
	case evt := <-received:
		assert.Equal(t, "build_shared", evt.Event)
		assert.Equal(t, "owner1", evt.Payload["owner_id"])
		assert.False(t, evt.SentAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestNotify_DispatchesInBackground(t *testing.T) {
	received := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
	}))
	defer server.Close()

	n := New(&Config{URL: server.URL})
	n.Notify("build_shared", nil)

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("webhook was never called")
	}
}

func TestNotify_NoURLDropsEvent(t *testing.T) {
	n := New(&Config{})
	n.Notify("build_shared", nil)
}

func TestNotify_NilNotifier(t *testing.T) {
	var n *Notifier
	n.Notify("build_shared", nil)
}

func TestSend_SwallowsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := New(&Config{URL: server.URL, Timeout: 100 * time.Millisecond})
	n.send("build_shared", nil)
}

func TestNew_Defaults(t *testing.T) {
	n := New(&Config{URL: "http://example.invalid"})
	assert.NotNil(t, n.client)
	assert.Equal(t, defaultTimeout, n.timeout)
}
