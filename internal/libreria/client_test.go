package libreria

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBase {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBase)
	}

	u, err = parseBaseURL("https://crm.example.com/admin?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_ListUsersEncodesQueryAndHeaders(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "true",
			"user_list": [
				{"user_id": 1, "name": "Ana", "email": "ana@example.com", "status": true},
				{"user_id": 2, "name": "Luis", "email": "luis@example.com", "status": "false"}
			],
			"total_pages": 3,
			"totalUsers": 20
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "sekrit")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	users, info, err := c.ListUsers(ctx, 2, 8, "garcia")
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 2 || users[0].ID != 1 || users[0].Name != "Ana" {
		t.Fatalf("users = %#v, want 2 users starting with Ana", users)
	}
	if users[1].Active {
		t.Fatal(`user 2 should be inactive (wire value "false")`)
	}
	if info.TotalPages != 3 || info.TotalCount != 20 {
		t.Fatalf("page info = %+v, want pages=3 count=20", info)
	}
	if gotQuery.Get("page") != "2" || gotQuery.Get("limit") != "8" || gotQuery.Get("search") != "garcia" {
		t.Fatalf("query = %v, want page=2 limit=8 search=garcia", gotQuery)
	}
	if gotAuth != "Bearer sekrit" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestClient_SentinelBecomesEmptySuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "status_Message": "No se encontraron usuarios"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	users, info, err := c.ListUsers(context.Background(), 1, 8, "zzz")
	if err != nil {
		t.Fatalf("sentinel should not surface as error, got %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("users = %#v, want empty", users)
	}
	if info.TotalPages != 0 || info.TotalCount != 0 {
		t.Fatalf("page info = %+v, want zeroes", info)
	}
}

func TestClient_DomainFailureMapsToDomainError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "status_Message": "El correo ya está registrado"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.CreateUser(context.Background(), User{Name: "Ana", Email: "ana@example.com"})
	var domain *DomainError
	if !errors.As(err, &domain) {
		t.Fatalf("error = %v (%T), want *DomainError", err, err)
	}
	if domain.Message != "El correo ya está registrado" {
		t.Fatalf("message = %q, want backend message", domain.Message)
	}
}

func TestClient_HTTPErrorBodyMessageSurfaces(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"status": false, "status_Message": "El autor ya existe"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.CreateAuthor(context.Background(), Author{Name: "Borges"})
	var domain *DomainError
	if !errors.As(err, &domain) {
		t.Fatalf("error = %v (%T), want *DomainError from HTTP error body", err, err)
	}
	if domain.Message != "El autor ya existe" {
		t.Fatalf("message = %q, want body message", domain.Message)
	}
}

func TestClient_TransportFailures(t *testing.T) {
	t.Parallel()

	// Plain HTTP error without a structured body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListAuthors(context.Background())
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("error = %v (%T), want *TransportError", err, err)
	}

	// Unreachable host.
	dead, err := NewClient("127.0.0.1:1", "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	t.Cleanup(cancel)
	_, err = dead.ListAuthors(ctx)
	if !errors.As(err, &transport) {
		t.Fatalf("error = %v (%T), want *TransportError for dead host", err, err)
	}
}

func TestClient_WritesSendJSONBodies(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": true}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if err := c.SetAuthorActive(context.Background(), 5, false); err != nil {
		t.Fatalf("SetAuthorActive returned error: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/authors/5/status" {
		t.Fatalf("request = %s %s, want PATCH /api/authors/5/status", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q, want application/json", gotContentType)
	}
	if active, ok := gotBody["status"].(bool); !ok || active {
		t.Fatalf("body = %v, want status=false", gotBody)
	}

	if err := c.UpdateOrderStatus(context.Background(), 9, "enviado"); err != nil {
		t.Fatalf("UpdateOrderStatus returned error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/orders/9/status" {
		t.Fatalf("request = %s %s, want PUT /api/orders/9/status", gotMethod, gotPath)
	}
	if gotBody["order_status"] != "enviado" {
		t.Fatalf("body = %v, want order_status=enviado", gotBody)
	}
}
