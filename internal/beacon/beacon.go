// Package beacon posts fire-and-forget share notifications to an optional
// webhook. Delivery is best-effort: failures are logged and swallowed, and
// a send never blocks or affects planner results.
package beacon

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

const defaultTimeout = 2 * time.Second

// Notifier sends webhook events. A Notifier with no URL drops every event.
type Notifier struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// Config holds configuration for the notifier
type Config struct {
	URL        string
	HTTPClient *http.Client // optional
	Timeout    time.Duration
}

// New creates a notifier from config.
func New(cfg *Config) *Notifier {
	n := &Notifier{
		url:     cfg.URL,
		client:  cfg.HTTPClient,
		timeout: cfg.Timeout,
	}
	if n.client == nil {
		n.client = &http.Client{}
	}
	if n.timeout <= 0 {
		n.timeout = defaultTimeout
	}
	return n
}

type event struct {
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload,omitempty"`
	SentAt  time.Time      `json:"sent_at"`
}

// Notify dispatches an event in the background and returns immediately.
func (n *Notifier) Notify(name string, payload map[string]any) {
	if n == nil || n.url == "" {
		return
	}
	go n.send(name, payload)
}

func (n *Notifier) send(name string, payload map[string]any) {
	body, err := json.Marshal(event{Event: name, Payload: payload, SentAt: time.Now().UTC()})
	if err != nil {
		log.Printf("beacon: marshal %s: %v", name, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("beacon: build request %s: %v", name, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("beacon: send %s: %v", name, err)
		return
	}
	_ = resp.Body.Close()
}
