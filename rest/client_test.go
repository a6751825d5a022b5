package rest_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/driftmail/driftmail-go/rest"
)

func newTestClient(serverURL string) *rest.Client {
	return rest.NewClient("dm_test_key", rest.Config{
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
		Headers: map[string]string{"X-Custom": "custom-value"},
	}, nil)
}

func TestGetSendsAuthAndCustomHeaders(t *testing.T) {
	var received http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	if err := newTestClient(srv.URL).Get(context.Background(), "/v1/emails", nil, &out); err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if got := received.Get("Authorization"); got != "Bearer dm_test_key" {
		t.Errorf("Authorization = %q", got)
	}
	if got := received.Get("X-Custom"); got != "custom-value" {
		t.Errorf("X-Custom = %q", got)
	}
	if got := received.Get("User-Agent"); got != "driftmail-go/1.0" {
		t.Errorf("User-Agent = %q", got)
	}
	if !out.OK {
		t.Error("response was not decoded")
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	var contentType, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"em_1"}`))
	}))
	defer srv.Close()

	var out struct {
		ID string `json:"id"`
	}
	in := map[string]string{"subject": "hello"}
	if err := newTestClient(srv.URL).Post(context.Background(), "/v1/emails", in, &out); err != nil {
		t.Fatalf("Post() error: %v", err)
	}

	if contentType != "application/json" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if body != `{"subject":"hello"}` {
		t.Errorf("body = %q", body)
	}
	if out.ID != "em_1" {
		t.Errorf("ID = %q", out.ID)
	}
}

func TestQueryEncoding(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	q := url.Values{}
	q.Set("limit", "25")
	q.Set("cursor", "cur_abc")
	var out struct{}
	if err := newTestClient(srv.URL).Get(context.Background(), "/v1/emails", q, &out); err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	parsed, _ := url.ParseQuery(rawQuery)
	if parsed.Get("limit") != "25" || parsed.Get("cursor") != "cur_abc" {
		t.Errorf("query = %q", rawQuery)
	}
}

func TestAPIErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"code":"invalid_from","message":"from address not verified"}}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Post(context.Background(), "/v1/emails", map[string]string{}, nil)
	apiErr, ok := rest.AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Code != "invalid_from" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "from address not verified" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestAPIErrorRawBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Get(context.Background(), "/v1/emails", nil, nil)
	apiErr, ok := rest.AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Message != "upstream unavailable" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestDeleteNoContent(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).Delete(context.Background(), "/v1/templates/tpl_1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if method != http.MethodDelete {
		t.Errorf("method = %q", method)
	}
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := newTestClient(srv.URL).Get(ctx, "/v1/emails", nil, nil)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got: %v", err)
	}
}

func TestPerRequestHeaders(t *testing.T) {
	var received http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	req := rest.Request{
		Method:  http.MethodPost,
		Path:    "/v1/emails",
		Body:    map[string]string{},
		Headers: map[string]string{"Idempotency-Key": "idem_123"},
	}
	var out struct{}
	if err := newTestClient(srv.URL).Do(context.Background(), req, &out); err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if got := received.Get("Idempotency-Key"); got != "idem_123" {
		t.Errorf("Idempotency-Key = %q", got)
	}
}
