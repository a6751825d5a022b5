package driftmail_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	driftmail "github.com/driftmail/driftmail-go"
	"github.com/driftmail/driftmail-go/emails"
	"github.com/driftmail/driftmail-go/subscriptions"
	"github.com/driftmail/driftmail-go/webhooks"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := driftmail.New(""); !errors.Is(err, driftmail.ErrNoAPIKey) {
		t.Errorf("New(\"\") = %v, want ErrNoAPIKey", err)
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	_, err := driftmail.New("dm_key", driftmail.WithBaseURL("not a url"))
	if !errors.Is(err, driftmail.ErrInvalidBaseURL) {
		t.Errorf("New() = %v, want ErrInvalidBaseURL", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := driftmail.DefaultConfig()
	if cfg.BaseURL != driftmail.DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

// End to end: create a subscription, send an email, then verify the webhook
// delivery the service would emit for it, signed with the subscription secret.
func TestClientEndToEnd(t *testing.T) {
	const secret = "whsec_e2e_secret"

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/webhook-subscriptions", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer dm_e2e_key" {
			t.Errorf("Authorization = %q", auth)
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":"sub_1","url":"https://example.com/hooks","eventTypes":["email.bounced"],"enabled":true,"secret":%q}`, secret)
	})
	mux.HandleFunc("POST /v1/emails", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"em_1"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := driftmail.New("dm_e2e_key",
		driftmail.WithBaseURL(srv.URL),
		driftmail.WithTimeout(5*time.Second),
		driftmail.WithRateLimit(0),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	created, err := client.Subscriptions().Create(context.Background(), subscriptions.Input{
		URL:        "https://example.com/hooks",
		EventTypes: []webhooks.EventType{webhooks.EventEmailBounced},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := client.Emails().Send(context.Background(), emails.SendRequest{
		From: "ada@example.com",
		To:   []string{"grace@example.com"},
		Text: "hi",
	}); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	// Simulate the delivery Driftmail would sign for this subscription.
	payload := []byte(`{"id":"evt_1","type":"email.bounced","timestamp":"2026-08-30T12:00:00Z","data":{"emailId":"em_1","bounceReason":"mailbox full"}}`)
	ts := time.Now().Unix()
	header := fmt.Sprintf("t=%d,v1=%s", ts, webhooks.ComputeSignature(ts, payload, created.Secret))

	event, err := webhooks.Verify(payload, header, created.Secret)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	data, ok := event.Data.(*webhooks.EmailBouncedData)
	if !ok {
		t.Fatalf("Data is %T", event.Data)
	}
	if data.EmailID != "em_1" || data.BounceReason != "mailbox full" {
		t.Errorf("unexpected data: %+v", data)
	}
}
